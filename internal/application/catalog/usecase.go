package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"

	domain "pricecatalog/internal/domain/catalog"
	"pricecatalog/internal/domain/repositories"
)

// DefaultPageSize размер страницы при загрузке снимка
const DefaultPageSize = 1000

// ErrInvalidPageSize размер страницы должен быть положительным
var ErrInvalidPageSize = errors.New("page size must be positive")

// Exporter записывает прайс-лист в выходной формат
type Exporter interface {
	WritePriceList(w io.Writer, records []domain.CatalogRecord) error
}

// UseCase представляет use case для чтения каталога
// Загружает снимок из хранилища и делегирует запросы domain.Catalog
type UseCase struct {
	catalogRepo repositories.CatalogRepository
	exporter    Exporter
	pageSize    int
}

// NewUseCase создает новый use case для каталога
func NewUseCase(catalogRepo repositories.CatalogRepository, exporter Exporter, pageSize int) (*UseCase, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}
	return &UseCase{
		catalogRepo: catalogRepo,
		exporter:    exporter,
		pageSize:    pageSize,
	}, nil
}

// LoadSnapshot читает все активные записи видимого импорта постранично,
// пока страница не окажется короче pageSize. ID импорта фиксируется до
// первой страницы, поэтому импорт, завершившийся во время чтения, не
// смешивается с текущим.
func (uc *UseCase) LoadSnapshot(ctx context.Context) (*domain.Catalog, error) {
	importID, err := uc.catalogRepo.LatestImportID(ctx)
	if errors.Is(err, repositories.ErrNotFound) {
		return domain.NewCatalog(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve latest import: %w", err)
	}

	var records []domain.CatalogRecord
	for offset := 0; ; offset += uc.pageSize {
		page, err := uc.catalogRepo.ListActive(ctx, importID, offset, uc.pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog page at offset %d: %w", offset, err)
		}
		records = append(records, page...)
		if len(page) < uc.pageSize {
			break
		}
	}
	return domain.NewCatalog(records), nil
}

// Brands бренды в порядке отображения
func (uc *UseCase) Brands(ctx context.Context) ([]string, error) {
	snapshot, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Brands(), nil
}

// PartGroups группы деталей бренда
func (uc *UseCase) PartGroups(ctx context.Context, brand string) ([]string, error) {
	snapshot, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.PartGroupsByBrand(brand), nil
}

// PartNames названия деталей бренда
func (uc *UseCase) PartNames(ctx context.Context, brand string) ([]string, error) {
	snapshot, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.PartNamesByBrand(brand), nil
}

// Models модели бренда в порядке выхода
func (uc *UseCase) Models(ctx context.Context, brand string) ([]string, error) {
	snapshot, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.ModelsByBrand(brand), nil
}

// ModelGroups плитки моделей бренда
func (uc *UseCase) ModelGroups(ctx context.Context, brand string) ([]domain.ModelGroup, error) {
	snapshot, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.ModelGroupsByBrand(brand), nil
}

// PartGroupItems позиции группы деталей, сгруппированные по модели
func (uc *UseCase) PartGroupItems(ctx context.Context, brand, partGroup string) ([]domain.ModelItems, error) {
	snapshot, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	items := snapshot.ItemsByBrandAndPartGroup(brand, partGroup)
	return domain.GroupItemsByModel(items, brand), nil
}

// PartNameItems позиции с названием детали, сгруппированные по модели
func (uc *UseCase) PartNameItems(ctx context.Context, brand, partName string) ([]domain.ModelItems, error) {
	snapshot, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	items := snapshot.ItemsByBrandAndPartName(brand, partName)
	return domain.GroupItemsByModel(items, brand), nil
}

// ModelParts детали всех моделей из группы model, сгруппированные по группе деталей
func (uc *UseCase) ModelParts(ctx context.Context, brand, model string) ([]domain.PartGroupItems, error) {
	snapshot, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	models := snapshot.ModelsInSameGroup(brand, model)
	if len(models) == 0 {
		models = []string{model}
	}
	return domain.GroupPartsByPartGroup(snapshot.PartsByBrandAndModels(brand, models)), nil
}

// Search поиск по модели и видам ремонта
func (uc *UseCase) Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	snapshot, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return domain.SearchResult{}, err
	}
	return snapshot.Search(query)
}

// ExportPriceList записывает прайс-лист в w
func (uc *UseCase) ExportPriceList(ctx context.Context, w io.Writer) error {
	snapshot, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return err
	}
	if err := uc.exporter.WritePriceList(w, snapshot.PriceList()); err != nil {
		return fmt.Errorf("failed to export price list: %w", err)
	}
	return nil
}
