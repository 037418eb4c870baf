package container

import (
	"pricecatalog/database"
	"pricecatalog/internal/infrastructure/persistence"
)

// initDatabase открывает базу прайс-листа и создает репозитории
func (c *Container) initDatabase() error {
	db, err := database.NewDBWithConfig(c.Config.DatabasePath, database.DBConfig{
		MaxOpenConns:    c.Config.MaxOpenConns,
		MaxIdleConns:    c.Config.MaxIdleConns,
		ConnMaxLifetime: c.Config.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}

	c.DB = db
	c.CatalogRepository = persistence.NewCatalogRepository(db)
	c.ImportRepository = persistence.NewImportRepository(db)
	return nil
}
