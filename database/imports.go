package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrImportNotFound запись импорта не найдена
var ErrImportNotFound = errors.New("import not found")

// Import строка таблицы imports
type Import struct {
	ID               string
	OriginalFilename string
	Note             string
	Status           string
	TotalRows        int
	NormalizedCount  int
	InsertedCount    int
	FailedBatches    int
	CreatedAt        time.Time
	CompletedAt      *time.Time
}

const importColumns = `id, original_filename, note, status, total_rows, normalized_count,
	inserted_count, failed_batches, created_at, completed_at`

// CreateImport сохраняет новую запись импорта
func (db *DB) CreateImport(ctx context.Context, imp *Import) error {
	if imp.CreatedAt.IsZero() {
		imp.CreatedAt = time.Now().UTC()
	}
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO imports
			(id, original_filename, note, status, total_rows, normalized_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, imp.ID, imp.OriginalFilename, imp.Note, imp.Status, imp.TotalRows, imp.NormalizedCount, imp.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert import: %w", err)
	}
	return nil
}

// FinishImport фиксирует итог импорта и время завершения
func (db *DB) FinishImport(ctx context.Context, id, status string, inserted, failedBatches int) error {
	res, err := db.conn.ExecContext(ctx, `
		UPDATE imports
		SET status = ?, inserted_count = ?, failed_batches = ?, completed_at = ?
		WHERE id = ?
	`, status, inserted, failedBatches, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update import: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrImportNotFound
	}
	return nil
}

// GetImport возвращает запись импорта по ID
func (db *DB) GetImport(ctx context.Context, id string) (*Import, error) {
	row := db.conn.QueryRowContext(ctx, `SELECT `+importColumns+` FROM imports WHERE id = ?`, id)
	imp, err := scanImport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrImportNotFound
	}
	if err != nil {
		return nil, err
	}
	return imp, nil
}

// ListImports возвращает импорты, новые первыми, и общее количество
func (db *DB) ListImports(ctx context.Context, statuses []string, limit, offset int) ([]*Import, int64, error) {
	where := ""
	var args []interface{}
	if len(statuses) > 0 {
		placeholders := make([]string, len(statuses))
		for i, s := range statuses {
			placeholders[i] = "?"
			args = append(args, s)
		}
		where = "WHERE status IN (" + strings.Join(placeholders, ", ") + ")"
	}

	var total int64
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM imports `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count imports: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + importColumns + ` FROM imports ` + where +
		` ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`
	rows, err := db.conn.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query imports: %w", err)
	}
	defer rows.Close()

	var imports []*Import
	for rows.Next() {
		imp, err := scanImport(rows)
		if err != nil {
			return nil, 0, err
		}
		imports = append(imports, imp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate imports: %w", err)
	}
	return imports, total, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanImport(row rowScanner) (*Import, error) {
	var imp Import
	var completedAt sql.NullTime
	err := row.Scan(
		&imp.ID,
		&imp.OriginalFilename,
		&imp.Note,
		&imp.Status,
		&imp.TotalRows,
		&imp.NormalizedCount,
		&imp.InsertedCount,
		&imp.FailedBatches,
		&imp.CreatedAt,
		&completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan import: %w", err)
	}
	if completedAt.Valid {
		t := completedAt.Time
		imp.CompletedAt = &t
	}
	return &imp, nil
}
