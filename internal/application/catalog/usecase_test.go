package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "pricecatalog/internal/domain/catalog"
	"pricecatalog/internal/domain/repositories"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) InsertBatch(ctx context.Context, importID string, items []domain.NormalizedItem) error {
	return m.Called(ctx, importID, items).Error(0)
}

func (m *MockCatalogRepository) LatestImportID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogRepository) ListActive(ctx context.Context, importID string, offset, limit int) ([]domain.CatalogRecord, error) {
	args := m.Called(ctx, importID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogRecord), args.Error(1)
}

const testImportID = "imp-1"

// newMockRepo мок, у которого последним импортом является testImportID
func newMockRepo(ctx context.Context) *MockCatalogRepository {
	repo := &MockCatalogRepository{}
	repo.On("LatestImportID", ctx).Return(testImportID, nil)
	return repo
}

type recordingExporter struct {
	records []domain.CatalogRecord
}

func (e *recordingExporter) WritePriceList(w io.Writer, records []domain.CatalogRecord) error {
	e.records = records
	_, err := w.Write([]byte("ok"))
	return err
}

func record(brand, model, group, part string, price int64) domain.CatalogRecord {
	r := domain.CatalogRecord{NormalizedItem: domain.NormalizedItem{
		Brand: brand, Model: model, PartName: part, PriceYen: price,
	}}
	if group != "" {
		r.PartGroup = &group
	}
	return r
}

// TestNewUseCase_InvalidPageSize проверяет отказ при неположительном размере страницы
func TestNewUseCase_InvalidPageSize(t *testing.T) {
	_, err := NewUseCase(&MockCatalogRepository{}, nil, 0)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

// TestLoadSnapshot_Paging проверяет чтение страниц до короткой страницы
func TestLoadSnapshot_Paging(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo(ctx)
	repo.On("ListActive", ctx, testImportID, 0, 2).Return([]domain.CatalogRecord{
		record("iPhone", "12", "パネル", "パネル", 8000),
		record("iPhone", "13", "パネル", "パネル", 9000),
	}, nil).Once()
	repo.On("ListActive", ctx, testImportID, 2, 2).Return([]domain.CatalogRecord{
		record("Galaxy", "S20", "パネル", "パネル", 15000),
	}, nil).Once()

	uc, err := NewUseCase(repo, nil, 2)
	require.NoError(t, err)

	snapshot, err := uc.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, snapshot.Len())
	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "LatestImportID", 1)
}

// TestLoadSnapshot_NoImport проверяет пустой каталог до первого импорта
func TestLoadSnapshot_NoImport(t *testing.T) {
	repo := &MockCatalogRepository{}
	ctx := context.Background()
	repo.On("LatestImportID", ctx).Return("", repositories.ErrNotFound)

	uc, err := NewUseCase(repo, nil, 10)
	require.NoError(t, err)

	brands, err := uc.Brands(ctx)
	require.NoError(t, err)
	assert.Empty(t, brands)
	repo.AssertNotCalled(t, "ListActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestLoadSnapshot_PinsImport проверяет, что последний импорт определяется
// один раз и все страницы читаются по его ID
func TestLoadSnapshot_PinsImport(t *testing.T) {
	repo := &MockCatalogRepository{}
	ctx := context.Background()
	repo.On("LatestImportID", ctx).Return("old", nil).Once()
	repo.On("ListActive", ctx, "old", 0, 1).Return([]domain.CatalogRecord{
		record("iPhone", "12", "パネル", "パネル", 8000),
	}, nil).Once()
	repo.On("ListActive", ctx, "old", 1, 1).Return([]domain.CatalogRecord{}, nil).Once()

	uc, err := NewUseCase(repo, nil, 1)
	require.NoError(t, err)

	snapshot, err := uc.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Len())
	repo.AssertExpectations(t)
}

// TestLoadSnapshot_ExactMultiple проверяет, что пустая страница завершает чтение
func TestLoadSnapshot_ExactMultiple(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo(ctx)
	repo.On("ListActive", ctx, testImportID, 0, 1).Return([]domain.CatalogRecord{
		record("iPhone", "12", "パネル", "パネル", 8000),
	}, nil).Once()
	repo.On("ListActive", ctx, testImportID, 1, 1).Return([]domain.CatalogRecord{}, nil).Once()

	uc, err := NewUseCase(repo, nil, 1)
	require.NoError(t, err)

	brands, err := uc.Brands(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"iPhone"}, brands)
	repo.AssertExpectations(t)
}

// TestLoadSnapshot_Error проверяет проброс ошибки хранилища
func TestLoadSnapshot_Error(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo(ctx)
	storeErr := errors.New("disk I/O error")
	repo.On("ListActive", ctx, testImportID, 0, 10).Return(nil, storeErr)

	uc, err := NewUseCase(repo, nil, 10)
	require.NoError(t, err)

	_, err = uc.Models(ctx, "iPhone")
	assert.ErrorIs(t, err, storeErr)

	latestErr := errors.New("database is locked")
	broken := &MockCatalogRepository{}
	broken.On("LatestImportID", ctx).Return("", latestErr)
	uc, err = NewUseCase(broken, nil, 10)
	require.NoError(t, err)

	_, err = uc.Brands(ctx)
	assert.ErrorIs(t, err, latestErr)
}

// TestModelParts проверяет объединение моделей одной группы
func TestModelParts(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo(ctx)
	repo.On("ListActive", ctx, testImportID, 0, 100).Return([]domain.CatalogRecord{
		record("iPhone", "12", "バッテリー", "バッテリー", 7000),
		record("iPhone", "12 Pro", "パネル", "パネル", 12000),
		record("iPhone", "12", "", "その他", 0),
		record("iPhone", "13", "パネル", "パネル", 9000),
	}, nil)

	uc, err := NewUseCase(repo, nil, 100)
	require.NoError(t, err)

	groups, err := uc.ModelParts(ctx, "iPhone", "12")
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "パネル", groups[0].Label)
	assert.Equal(t, "12 Pro", groups[0].Items[0].Model)
	assert.Equal(t, "バッテリー", groups[1].Label)
	assert.Equal(t, domain.UnclassifiedLabel, groups[2].Label)
	assert.Nil(t, groups[2].Group)

	items, err := uc.PartGroupItems(ctx, "iPhone", "パネル")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "12 Pro", items[0].Model)
	assert.Equal(t, "13", items[1].Model)
}

// TestPartNameItems проверяет позиции по названию детали в порядке выхода
func TestPartNameItems(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo(ctx)
	repo.On("ListActive", ctx, testImportID, 0, 100).Return([]domain.CatalogRecord{
		record("iPhone", "13", "パネル", "パネル 黒", 9000),
		record("iPhone", "12", "パネル", "パネル 黒", 8000),
		record("iPhone", "12", "パネル", "パネル 白", 8000),
		record("Galaxy", "S20", "パネル", "パネル 黒", 15000),
	}, nil)

	uc, err := NewUseCase(repo, nil, 100)
	require.NoError(t, err)

	groups, err := uc.PartNameItems(ctx, "iPhone", "パネル 黒")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "12", groups[0].Model)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, int64(8000), groups[0].Items[0].PriceYen)
	assert.Equal(t, "13", groups[1].Model)

	none, err := uc.PartNameItems(ctx, "iPhone", "バッテリー")
	require.NoError(t, err)
	assert.Empty(t, none)
}

// TestSearch_UnknownChip проверяет ошибку неизвестного фильтра
func TestSearch_UnknownChip(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo(ctx)
	repo.On("ListActive", ctx, testImportID, 0, 100).Return([]domain.CatalogRecord{}, nil)

	uc, err := NewUseCase(repo, nil, 100)
	require.NoError(t, err)

	_, err = uc.Search(ctx, domain.SearchQuery{Repairs: []string{"画面"}})
	assert.ErrorIs(t, err, domain.ErrUnknownRepairChip)
}

// TestExportPriceList проверяет передачу прайс-листа экспортеру
func TestExportPriceList(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo(ctx)
	repo.On("ListActive", ctx, testImportID, 0, 100).Return([]domain.CatalogRecord{
		record("Galaxy", "S20", "パネル", "パネル", 15000),
		record("iPhone", "13", "パネル", "パネル", 9000),
		record("iPhone", "12", "パネル", "パネル", 8000),
	}, nil)

	exporter := &recordingExporter{}
	uc, err := NewUseCase(repo, exporter, 100)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, uc.ExportPriceList(ctx, &buf))
	assert.Equal(t, "ok", buf.String())
	require.Len(t, exporter.records, 3)
	assert.Equal(t, "12", exporter.records[0].Model)
	assert.Equal(t, "13", exporter.records[1].Model)
	assert.Equal(t, "Galaxy", exporter.records[2].Brand)
}
