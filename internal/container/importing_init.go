package container

import (
	"pricecatalog/internal/api/handlers/common"
	importhandler "pricecatalog/internal/api/handlers/importing"
	importapp "pricecatalog/internal/application/importing"
	importdomain "pricecatalog/internal/domain/importing"
)

// initImportComponents инициализирует компоненты импорта
func (c *Container) initImportComponents() error {
	// 1. Domain service
	importService, err := importdomain.NewService(
		c.ImportRepository,
		c.CatalogRepository,
		c.Config.Import.BatchSize,
	)
	if err != nil {
		return err
	}

	// 2. Application use case
	importUseCase := importapp.NewUseCase(importService, c.Config.Import.DefaultEncoding)

	// 3. HTTP handler
	importHandler := importhandler.NewHandler(
		common.NewBaseHandlerImpl(),
		importUseCase,
		c.Config.Import.MaxUploadBytes,
	)

	c.ImportService = importService
	c.ImportUseCase = importUseCase
	c.ImportHandler = importHandler
	return nil
}
