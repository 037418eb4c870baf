package importing

import (
	"context"

	"pricecatalog/internal/domain/catalog"
	"pricecatalog/internal/domain/repositories"
)

// DefaultBatchSize размер пакета вставки по умолчанию
const DefaultBatchSize = 500

// Service интерфейс бизнес-логики импорта прайс-листа
type Service interface {
	// Import нормализует строки, создает запись импорта и последовательно
	// вставляет позиции пакетами. Ошибка пакета не откатывает предыдущие.
	Import(ctx context.Context, req ImportRequest) (*ImportResult, error)

	// GetImport возвращает запись импорта по ID
	GetImport(ctx context.Context, id string) (*repositories.ImportRecord, error)

	// ListImports возвращает журнал импортов
	ListImports(ctx context.Context, filter repositories.ImportFilter) ([]repositories.ImportRecord, int64, error)
}

// ImportRequest входные данные импорта
type ImportRequest struct {
	OriginalFilename string
	Note             string
	Rows             []catalog.RawRow
	DetectedColumns  []string
}

// BatchError ошибка вставки одного пакета; Batch начинается с 1
type BatchError struct {
	Batch   int    `json:"batch"`
	Message string `json:"message"`
}

// ImportResult итог импорта
type ImportResult struct {
	ImportID        string       `json:"import_id"`
	Status          string       `json:"status"`
	TotalRows       int          `json:"total_rows"`
	CandidateCount  int          `json:"candidate_count"`
	NormalizedCount int          `json:"normalized_count"`
	InsertedCount   int          `json:"inserted_count"`
	ParseErrors     []string     `json:"parse_errors,omitempty"`
	InsertErrors    []BatchError `json:"insert_errors,omitempty"`
	DetectedColumns []string     `json:"detected_columns"`
}

// Partial true, если часть пакетов не записалась
func (r *ImportResult) Partial() bool {
	return len(r.InsertErrors) > 0
}
