package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CatalogItem строка таблицы catalog_items
type CatalogItem struct {
	ID             int64
	ImportID       string
	Brand          string
	Model          string
	PartGroup      *string
	PartName       string
	PriceYen       int64
	SourceToken    *string
	SourceCategory *string
	IsActive       bool
	CreatedAt      time.Time
}

const catalogItemColumns = `c.id, c.import_id, c.brand, c.model, c.part_group, c.part_name,
	c.price_yen, c.source_token, c.source_category, c.is_active, c.created_at`

// InsertCatalogItems вставляет позиции одной транзакцией
func (db *DB) InsertCatalogItems(ctx context.Context, importID string, items []CatalogItem) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog_items
			(import_id, brand, model, part_group, part_name, price_yen,
			 source_token, source_category, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, item := range items {
		if _, err := stmt.ExecContext(ctx,
			importID,
			item.Brand,
			item.Model,
			toNullString(item.PartGroup),
			item.PartName,
			item.PriceYen,
			toNullString(item.SourceToken),
			toNullString(item.SourceCategory),
			now,
		); err != nil {
			return fmt.Errorf("failed to insert catalog item %s/%s/%s: %w", item.Brand, item.Model, item.PartName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog items: %w", err)
	}
	return nil
}

// LatestImportID ID последнего импорта со статусом completed или partial,
// того же, что показывает представление catalog_latest.
// ErrImportNotFound если такого импорта еще нет.
func (db *DB) LatestImportID(ctx context.Context) (string, error) {
	var id string
	err := db.conn.QueryRowContext(ctx, `
		SELECT id
		FROM imports
		WHERE status IN ('completed', 'partial')
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrImportNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query latest import: %w", err)
	}
	return id, nil
}

// ListCatalogItemsByImport страница активных позиций импорта,
// упорядоченная по brand, model, part_group, id
func (db *DB) ListCatalogItemsByImport(ctx context.Context, importID string, offset, limit int) ([]CatalogItem, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT `+catalogItemColumns+`
		FROM catalog_items c
		WHERE c.import_id = ? AND c.is_active = 1
		ORDER BY c.brand, c.model, c.part_group, c.id
		LIMIT ? OFFSET ?
	`, importID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	var items []CatalogItem
	for rows.Next() {
		item, err := scanCatalogItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog: %w", err)
	}
	return items, nil
}

func scanCatalogItem(rows *sql.Rows) (CatalogItem, error) {
	var item CatalogItem
	var partGroup, token, category sql.NullString
	if err := rows.Scan(
		&item.ID,
		&item.ImportID,
		&item.Brand,
		&item.Model,
		&partGroup,
		&item.PartName,
		&item.PriceYen,
		&token,
		&category,
		&item.IsActive,
		&item.CreatedAt,
	); err != nil {
		return CatalogItem{}, fmt.Errorf("failed to scan catalog item: %w", err)
	}
	item.PartGroup = nullString(partGroup)
	item.SourceToken = nullString(token)
	item.SourceCategory = nullString(category)
	return item, nil
}
