package repositories

import (
	"errors"
	"time"
)

// ErrNotFound запись не найдена
var ErrNotFound = errors.New("record not found")

// Статусы импорта
const (
	ImportStatusProcessing = "processing"
	ImportStatusCompleted  = "completed"
	ImportStatusPartial    = "partial"
	ImportStatusFailed     = "failed"
)

// ImportRecord запись журнала импортов
type ImportRecord struct {
	ID               string     `json:"id"`
	OriginalFilename string     `json:"original_filename"`
	Note             string     `json:"note,omitempty"`
	Status           string     `json:"status"`
	TotalRows        int        `json:"total_rows"`
	NormalizedCount  int        `json:"normalized_count"`
	InsertedCount    int        `json:"inserted_count"`
	FailedBatches    int        `json:"failed_batches"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// ImportSummary итог импорта для Finish
type ImportSummary struct {
	Status        string
	InsertedCount int
	FailedBatches int
}

// ImportFilter фильтр для списка импортов
type ImportFilter struct {
	Status []string
	Limit  int
	Offset int
}
