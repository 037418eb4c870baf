package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"pricecatalog/database"
	"pricecatalog/internal/domain/catalog"
	"pricecatalog/internal/domain/repositories"
)

// catalogRepository реализация репозитория позиций прайс-листа
// Адаптер между domain интерфейсом и infrastructure (database.DB)
type catalogRepository struct {
	db *database.DB
}

// NewCatalogRepository создает новый репозиторий каталога
func NewCatalogRepository(db *database.DB) repositories.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// InsertBatch вставляет пакет позиций одной транзакцией
func (r *catalogRepository) InsertBatch(ctx context.Context, importID string, items []catalog.NormalizedItem) error {
	rows := make([]database.CatalogItem, len(items))
	for i, item := range items {
		rows[i] = database.CatalogItem{
			Brand:          item.Brand,
			Model:          item.Model,
			PartGroup:      item.PartGroup,
			PartName:       item.PartName,
			PriceYen:       item.PriceYen,
			SourceToken:    item.SourceToken,
			SourceCategory: item.SourceCategory,
		}
	}

	if err := r.db.InsertCatalogItems(ctx, importID, rows); err != nil {
		return fmt.Errorf("failed to insert batch: %w", err)
	}
	return nil
}

// LatestImportID ID импорта, видимого в каталоге
func (r *catalogRepository) LatestImportID(ctx context.Context) (string, error) {
	id, err := r.db.LatestImportID(ctx)
	if errors.Is(err, database.ErrImportNotFound) {
		return "", repositories.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get latest import: %w", err)
	}
	return id, nil
}

// ListActive возвращает страницу активных записей импорта
func (r *catalogRepository) ListActive(ctx context.Context, importID string, offset, limit int) ([]catalog.CatalogRecord, error) {
	rows, err := r.db.ListCatalogItemsByImport(ctx, importID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	records := make([]catalog.CatalogRecord, len(rows))
	for i, row := range rows {
		records[i] = toDomainCatalogRecord(row)
	}
	return records, nil
}

// toDomainCatalogRecord преобразует database.CatalogItem в domain модель
func toDomainCatalogRecord(row database.CatalogItem) catalog.CatalogRecord {
	return catalog.CatalogRecord{
		ID:       strconv.FormatInt(row.ID, 10),
		ImportID: row.ImportID,
		NormalizedItem: catalog.NormalizedItem{
			Brand:          row.Brand,
			Model:          row.Model,
			PartGroup:      row.PartGroup,
			PartName:       row.PartName,
			PriceYen:       row.PriceYen,
			SourceToken:    row.SourceToken,
			SourceCategory: row.SourceCategory,
		},
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}
}
