package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"pricecatalog/database"
	"pricecatalog/internal/domain/repositories"
)

// importRepository реализация журнала импортов
type importRepository struct {
	db *database.DB
}

// NewImportRepository создает новый репозиторий импортов
func NewImportRepository(db *database.DB) repositories.ImportRepository {
	return &importRepository{
		db: db,
	}
}

// Create сохраняет запись импорта и присваивает ей UUID
func (r *importRepository) Create(ctx context.Context, record *repositories.ImportRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.Status == "" {
		record.Status = repositories.ImportStatusProcessing
	}

	row := &database.Import{
		ID:               record.ID,
		OriginalFilename: record.OriginalFilename,
		Note:             record.Note,
		Status:           record.Status,
		TotalRows:        record.TotalRows,
		NormalizedCount:  record.NormalizedCount,
		CreatedAt:        record.CreatedAt,
	}
	if err := r.db.CreateImport(ctx, row); err != nil {
		return fmt.Errorf("failed to create import: %w", err)
	}

	record.CreatedAt = row.CreatedAt
	return nil
}

// Finish фиксирует итог импорта
func (r *importRepository) Finish(ctx context.Context, id string, summary repositories.ImportSummary) error {
	err := r.db.FinishImport(ctx, id, summary.Status, summary.InsertedCount, summary.FailedBatches)
	if errors.Is(err, database.ErrImportNotFound) {
		return repositories.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to finish import: %w", err)
	}
	return nil
}

// GetByID возвращает запись импорта по ID
func (r *importRepository) GetByID(ctx context.Context, id string) (*repositories.ImportRecord, error) {
	row, err := r.db.GetImport(ctx, id)
	if errors.Is(err, database.ErrImportNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get import: %w", err)
	}
	return toDomainImport(row), nil
}

// List возвращает импорты с фильтрацией по статусу
func (r *importRepository) List(ctx context.Context, filter repositories.ImportFilter) ([]repositories.ImportRecord, int64, error) {
	rows, total, err := r.db.ListImports(ctx, filter.Status, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list imports: %w", err)
	}

	records := make([]repositories.ImportRecord, len(rows))
	for i, row := range rows {
		records[i] = *toDomainImport(row)
	}
	return records, total, nil
}

func toDomainImport(row *database.Import) *repositories.ImportRecord {
	return &repositories.ImportRecord{
		ID:               row.ID,
		OriginalFilename: row.OriginalFilename,
		Note:             row.Note,
		Status:           row.Status,
		TotalRows:        row.TotalRows,
		NormalizedCount:  row.NormalizedCount,
		InsertedCount:    row.InsertedCount,
		FailedBatches:    row.FailedBatches,
		CreatedAt:        row.CreatedAt,
		CompletedAt:      row.CompletedAt,
	}
}
