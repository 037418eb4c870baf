package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func strPtr(s string) *string { return &s }

// TestNewDB_AppliesMigrations проверяет, что схема создается при открытии
func TestNewDB_AppliesMigrations(t *testing.T) {
	db := newTestDB(t)

	version, dirty, err := SchemaVersion(db.GetConnection())
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	// Повторное применение миграций не является ошибкой
	require.NoError(t, RunMigrations(db.GetConnection()))
}

// TestNewDB_InMemory проверяет работу in-memory базы с одним соединением
func TestNewDB_InMemory(t *testing.T) {
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 1, db.GetConnection().Stats().MaxOpenConnections)
	require.NoError(t, db.Ping())
}

// TestImports_Lifecycle проверяет создание, завершение и чтение импорта
func TestImports_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	imp := &Import{ID: "imp-1", OriginalFilename: "export.csv", Note: "октябрь", Status: "processing", TotalRows: 10, NormalizedCount: 8}
	require.NoError(t, db.CreateImport(ctx, imp))
	assert.False(t, imp.CreatedAt.IsZero())

	got, err := db.GetImport(ctx, "imp-1")
	require.NoError(t, err)
	assert.Equal(t, "processing", got.Status)
	assert.Nil(t, got.CompletedAt)

	require.NoError(t, db.FinishImport(ctx, "imp-1", "partial", 6, 1))

	got, err = db.GetImport(ctx, "imp-1")
	require.NoError(t, err)
	assert.Equal(t, "partial", got.Status)
	assert.Equal(t, 6, got.InsertedCount)
	assert.Equal(t, 1, got.FailedBatches)
	assert.Equal(t, "export.csv", got.OriginalFilename)
	assert.NotNil(t, got.CompletedAt)

	_, err = db.GetImport(ctx, "missing")
	assert.ErrorIs(t, err, ErrImportNotFound)
	assert.ErrorIs(t, db.FinishImport(ctx, "missing", "failed", 0, 0), ErrImportNotFound)
}

// TestImports_InvalidStatus проверяет ограничение CHECK на статус
func TestImports_InvalidStatus(t *testing.T) {
	db := newTestDB(t)
	err := db.CreateImport(context.Background(), &Import{ID: "imp-x", Status: "unknown"})
	assert.Error(t, err)
}

// TestListImports проверяет фильтр по статусу и порядок "новые первыми"
func TestListImports(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, status := range []string{"completed", "failed", "completed"} {
		require.NoError(t, db.CreateImport(ctx, &Import{
			ID:        []string{"a", "b", "c"}[i],
			Status:    status,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	all, total, err := db.ListImports(ctx, nil, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "a", all[2].ID)

	completed, total, err := db.ListImports(ctx, []string{"completed"}, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, completed, 1)
	assert.Equal(t, "c", completed[0].ID)
}

// TestCatalogItems_LatestImport проверяет, что каталог видит только
// последний завершенный импорт
func TestCatalogItems_LatestImport(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, db.CreateImport(ctx, &Import{ID: "old", Status: "processing", CreatedAt: base}))
	require.NoError(t, db.InsertCatalogItems(ctx, "old", []CatalogItem{
		{Brand: "iPhone", Model: "11", PartGroup: strPtr("パネル"), PartName: "パネル", PriceYen: 9000},
	}))
	require.NoError(t, db.FinishImport(ctx, "old", "completed", 1, 0))

	require.NoError(t, db.CreateImport(ctx, &Import{ID: "new", Status: "processing", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, db.InsertCatalogItems(ctx, "new", []CatalogItem{
		{Brand: "iPhone", Model: "12", PartGroup: strPtr("バッテリー"), PartName: "バッテリー", PriceYen: 7000, SourceToken: strPtr("tok")},
		{Brand: "iPhone", Model: "12", PartGroup: nil, PartName: "その他", PriceYen: 0},
		{Brand: "Galaxy", Model: "S20", PartGroup: strPtr("パネル"), PartName: "パネル", PriceYen: 15000},
	}))

	// Незавершенный импорт еще не виден
	latest, err := db.LatestImportID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old", latest)

	require.NoError(t, db.FinishImport(ctx, "new", "completed", 3, 0))

	latest, err = db.LatestImportID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", latest)

	items, err := db.ListCatalogItemsByImport(ctx, latest, 0, 100)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Galaxy", items[0].Brand)
	// NULL part_group сортируется раньше непустых значений
	assert.Nil(t, items[1].PartGroup)
	assert.Equal(t, "バッテリー", *items[2].PartGroup)
	assert.Equal(t, "tok", *items[2].SourceToken)
	assert.True(t, items[2].IsActive)

	page, err := db.ListCatalogItemsByImport(ctx, latest, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)

	// Представление показывает тот же импорт
	var viewCount int
	require.NoError(t, db.GetConnection().QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_latest`).Scan(&viewCount))
	assert.Equal(t, 3, viewCount)

	// Старый импорт остается читаемым по ID
	old, err := db.ListCatalogItemsByImport(ctx, "old", 0, 100)
	require.NoError(t, err)
	require.Len(t, old, 1)
	assert.Equal(t, "11", old[0].Model)
}

// TestLatestImportID_None проверяет пустую базу и импорт в статусе failed
func TestLatestImportID_None(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.LatestImportID(ctx)
	assert.ErrorIs(t, err, ErrImportNotFound)

	require.NoError(t, db.CreateImport(ctx, &Import{ID: "bad", Status: "processing"}))
	require.NoError(t, db.FinishImport(ctx, "bad", "failed", 0, 1))

	_, err = db.LatestImportID(ctx)
	assert.ErrorIs(t, err, ErrImportNotFound)
}

// TestInsertCatalogItems_Atomic проверяет откат пакета при ошибке в одной строке
func TestInsertCatalogItems_Atomic(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.CreateImport(ctx, &Import{ID: "imp", Status: "processing"}))

	err := db.InsertCatalogItems(ctx, "imp", []CatalogItem{
		{Brand: "iPhone", Model: "12", PartName: "パネル", PriceYen: 8000},
		{Brand: "iPhone", Model: "13", PartName: "パネル", PriceYen: -1},
	})
	require.Error(t, err)

	items, err := db.ListCatalogItemsByImport(ctx, "imp", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Внешний ключ на несуществующий импорт
	err = db.InsertCatalogItems(ctx, "missing", []CatalogItem{{Brand: "iPhone", Model: "12", PartName: "x"}})
	assert.Error(t, err)
}
