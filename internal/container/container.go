package container

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"pricecatalog/database"
	cataloghandler "pricecatalog/internal/api/handlers/catalog"
	importhandler "pricecatalog/internal/api/handlers/importing"
	catalogapp "pricecatalog/internal/application/catalog"
	importapp "pricecatalog/internal/application/importing"
	"pricecatalog/internal/config"
	importdomain "pricecatalog/internal/domain/importing"
	"pricecatalog/internal/domain/repositories"
)

// Container контейнер зависимостей приложения.
// Управляет жизненным циклом базы и всех слоев поверх нее.
type Container struct {
	mu sync.Mutex

	// Конфигурация
	Config *config.Config

	// База данных
	DB *database.DB

	// Репозитории (infrastructure layer)
	CatalogRepository repositories.CatalogRepository
	ImportRepository  repositories.ImportRepository

	// Domain и application слои
	ImportService  importdomain.Service
	ImportUseCase  *importapp.UseCase
	CatalogUseCase *catalogapp.UseCase

	// HTTP handlers
	ImportHandler  *importhandler.Handler
	CatalogHandler *cataloghandler.Handler

	initialized bool
}

// NewContainer создает новый контейнер зависимостей
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &Container{Config: cfg}, nil
}

// Initialize инициализирует все зависимости контейнера.
// Порядок: база, репозитории, сервисы, use cases, handlers.
func (c *Container) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return fmt.Errorf("container already initialized")
	}

	// Шаг 1: база данных и репозитории
	if err := c.initDatabase(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Шаг 2: импорт
	if err := c.initImportComponents(); err != nil {
		c.closeDatabase()
		return fmt.Errorf("failed to initialize import components: %w", err)
	}

	// Шаг 3: каталог
	if err := c.initCatalogComponents(); err != nil {
		c.closeDatabase()
		return fmt.Errorf("failed to initialize catalog components: %w", err)
	}

	c.initialized = true
	return nil
}

// Ping проверяет доступность базы
func (c *Container) Ping(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("database not initialized")
	}
	return c.DB.GetConnection().PingContext(ctx)
}

// Shutdown освобождает ресурсы контейнера
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return nil
	}

	c.closeDatabase()
	c.initialized = false
	return nil
}

func (c *Container) closeDatabase() {
	if c.DB == nil {
		return
	}
	if err := c.DB.Close(); err != nil {
		slog.Error("Error closing catalog database", "error", err, "path", c.DB.Path())
	}
	c.DB = nil
}
