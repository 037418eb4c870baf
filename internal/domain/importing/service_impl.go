package importing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pricecatalog/internal/domain/catalog"
	"pricecatalog/internal/domain/repositories"
)

// service реализация domain service для importing
type service struct {
	importRepo  repositories.ImportRepository
	catalogRepo repositories.CatalogRepository
	batchSize   int
}

// NewService создает новый domain service для importing
func NewService(
	importRepo repositories.ImportRepository,
	catalogRepo repositories.CatalogRepository,
	batchSize int,
) (Service, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatchSize, batchSize)
	}
	return &service{
		importRepo:  importRepo,
		catalogRepo: catalogRepo,
		batchSize:   batchSize,
	}, nil
}

// Import обрабатывает выгрузку прайс-листа
func (s *service) Import(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	if len(req.Rows) == 0 {
		return nil, ErrEmptyFile
	}

	normalized := catalog.NormalizeRows(req.Rows)

	record := &repositories.ImportRecord{
		OriginalFilename: req.OriginalFilename,
		Note:             req.Note,
		Status:           repositories.ImportStatusProcessing,
		TotalRows:        len(req.Rows),
		NormalizedCount:  len(normalized.Items),
	}
	if err := s.importRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportRecordFailed, err)
	}

	result := &ImportResult{
		ImportID:        record.ID,
		TotalRows:       len(req.Rows),
		CandidateCount:  normalized.Candidates,
		NormalizedCount: len(normalized.Items),
		ParseErrors:     normalized.Errors,
		DetectedColumns: req.DetectedColumns,
	}

	result.InsertedCount, result.InsertErrors = s.insertBatches(ctx, record.ID, normalized.Items)
	result.Status = importStatus(result.InsertedCount, len(result.InsertErrors))

	summary := repositories.ImportSummary{
		Status:        result.Status,
		InsertedCount: result.InsertedCount,
		FailedBatches: len(result.InsertErrors),
	}
	if err := s.importRepo.Finish(context.WithoutCancel(ctx), record.ID, summary); err != nil {
		slog.Error("failed to finalize import",
			"import_id", record.ID,
			"error", err,
		)
		return result, fmt.Errorf("%w %s: %v", ErrFinalizeFailed, record.ID, err)
	}

	slog.Info("import finished",
		"import_id", record.ID,
		"status", result.Status,
		"total_rows", result.TotalRows,
		"normalized_count", result.NormalizedCount,
		"inserted_count", result.InsertedCount,
		"parse_errors", len(result.ParseErrors),
		"failed_batches", len(result.InsertErrors),
	)
	return result, nil
}

// insertBatches вставляет пакеты по порядку; следующий пакет пробуется
// только после результата предыдущего. После отмены контекста оставшиеся
// пакеты помечаются ошибкой без попытки вставки.
func (s *service) insertBatches(ctx context.Context, importID string, items []catalog.NormalizedItem) (int, []BatchError) {
	var inserted int
	var failures []BatchError

	for start, batch := 0, 1; start < len(items); start, batch = start+s.batchSize, batch+1 {
		end := min(start+s.batchSize, len(items))
		chunk := items[start:end]

		if err := ctx.Err(); err != nil {
			failures = append(failures, BatchError{Batch: batch, Message: err.Error()})
			continue
		}

		if err := s.catalogRepo.InsertBatch(ctx, importID, chunk); err != nil {
			slog.Warn("batch insert failed",
				"import_id", importID,
				"batch", batch,
				"rows", len(chunk),
				"error", err,
			)
			failures = append(failures, BatchError{Batch: batch, Message: err.Error()})
			continue
		}
		inserted += len(chunk)
	}
	return inserted, failures
}

func importStatus(inserted, failed int) string {
	switch {
	case failed == 0:
		return repositories.ImportStatusCompleted
	case inserted == 0:
		return repositories.ImportStatusFailed
	default:
		return repositories.ImportStatusPartial
	}
}

// GetImport возвращает запись импорта по ID
func (s *service) GetImport(ctx context.Context, id string) (*repositories.ImportRecord, error) {
	record, err := s.importRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrImportNotFound, id)
		}
		return nil, fmt.Errorf("failed to get import: %w", err)
	}
	return record, nil
}

// ListImports возвращает журнал импортов
func (s *service) ListImports(ctx context.Context, filter repositories.ImportFilter) ([]repositories.ImportRecord, int64, error) {
	records, total, err := s.importRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list imports: %w", err)
	}
	return records, total, nil
}
