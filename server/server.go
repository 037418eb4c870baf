package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"pricecatalog/internal/api/routes"
	"pricecatalog/internal/config"
	"pricecatalog/internal/container"
)

// Server HTTP сервер каталога
type Server struct {
	config     *config.Config
	container  *container.Container
	handler    http.Handler
	httpServer *http.Server
}

// NewServer создает контейнер зависимостей и роутер
func NewServer(cfg *config.Config) (*Server, error) {
	c, err := container.NewContainer(cfg)
	if err != nil {
		return nil, err
	}
	if err := c.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}

	// Режим Gin можно переопределить через GIN_MODE
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.NewRouter(routes.Handlers{
		Catalog:   c.CatalogHandler,
		Importing: c.ImportHandler,
	}, routes.Options{
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		AdminPassword:   cfg.AdminPassword,
		UploadRateLimit: cfg.Import.RateLimitPerMinute,
		Ping:            c.Ping,
	})

	return &Server{
		config:    cfg,
		container: c,
		handler:   router,
	}, nil
}

// ServeHTTP реализует http.Handler для тестов
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Start запускает HTTP сервер и блокируется до его остановки
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.handler,
		// Загрузка большого файла и экспорт XLSX занимают время
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting HTTP server on %s", addr)
	if !s.config.UploadsEnabled() {
		log.Printf("Admin password is not set, uploads are disabled")
	}

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server on %s: %w", addr, err)
	}
	return nil
}

// Shutdown останавливает HTTP сервер gracefully и закрывает базу
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Initiating graceful shutdown...")

	var errs []error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop HTTP server: %w", err))
		}
	}
	if err := s.container.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	log.Println("Graceful shutdown completed")
	return nil
}
