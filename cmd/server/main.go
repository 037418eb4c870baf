// @title Price Catalog API
// @version 1.0
// @description Импорт прайс-листа ремонта из выгрузки магазина и чтение каталога: бренды, модели в порядке выхода, группы деталей, поиск, экспорт XLSX.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @BasePath /

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pricecatalog/internal/config"
	"pricecatalog/server"
)

func main() {
	configPath := flag.String("config", "", "путь к TOML файлу конфигурации")
	flag.Parse()

	log.Println("Запуск сервера каталога...")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	server.SetupLogging(os.Stderr, cfg.LogLevel)

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Ошибка создания сервера: %v", err)
	}
	log.Printf("Используется база данных: %s", cfg.DatabasePath)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Обработка сигналов для graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Printf("Получен сигнал %v, остановка...", sig)
	case err := <-errCh:
		if err != nil {
			log.Printf("Сервер остановлен с ошибкой: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Ошибка при остановке сервера: %v", err)
	}
}
