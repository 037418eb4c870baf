package container

import (
	cataloghandler "pricecatalog/internal/api/handlers/catalog"
	"pricecatalog/internal/api/handlers/common"
	catalogapp "pricecatalog/internal/application/catalog"
	"pricecatalog/internal/infrastructure/export"
)

// initCatalogComponents инициализирует чтение каталога и экспорт
func (c *Container) initCatalogComponents() error {
	catalogUseCase, err := catalogapp.NewUseCase(
		c.CatalogRepository,
		export.NewXLSXExporter(),
		c.Config.Catalog.PageSize,
	)
	if err != nil {
		return err
	}

	c.CatalogUseCase = catalogUseCase
	c.CatalogHandler = cataloghandler.NewHandler(common.NewBaseHandlerImpl(), catalogUseCase)
	return nil
}
