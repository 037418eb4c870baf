package repositories

import (
	"context"

	"pricecatalog/internal/domain/catalog"
)

// CatalogRepository интерфейс хранилища позиций прайс-листа
type CatalogRepository interface {
	// InsertBatch вставляет пакет позиций одной транзакцией.
	// Пакет либо записывается целиком, либо не записывается вовсе.
	InsertBatch(ctx context.Context, importID string, items []catalog.NormalizedItem) error

	// LatestImportID ID импорта, который сейчас показывает каталог:
	// последний со статусом completed или partial. ErrNotFound если его нет.
	LatestImportID(ctx context.Context) (string, error)

	// ListActive возвращает страницу активных записей импорта,
	// отсортированных по brand, model, part_group, id
	ListActive(ctx context.Context, importID string, offset, limit int) ([]catalog.CatalogRecord, error)
}

// ImportRepository интерфейс журнала импортов
type ImportRepository interface {
	// Create сохраняет запись импорта в статусе processing и присваивает ID
	Create(ctx context.Context, record *ImportRecord) error

	// Finish фиксирует итог импорта
	Finish(ctx context.Context, id string, summary ImportSummary) error

	// GetByID возвращает запись импорта, ErrNotFound если ее нет
	GetByID(ctx context.Context, id string) (*ImportRecord, error)

	// List возвращает импорты, новые первыми, и общее количество
	List(ctx context.Context, filter ImportFilter) ([]ImportRecord, int64, error)
}
