package importing

import "errors"

// Domain-specific errors для importing domain
var (
	ErrEmptyFile          = errors.New("file has no data rows")
	ErrImportRecordFailed = errors.New("failed to create import record")
	ErrFinalizeFailed     = errors.New("failed to finalize import record")
	ErrInvalidBatchSize   = errors.New("batch size must be positive")
	ErrImportNotFound     = errors.New("import not found")
)
