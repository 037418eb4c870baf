package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	importapp "pricecatalog/internal/application/importing"
	"pricecatalog/internal/config"
	"pricecatalog/internal/container"
	"pricecatalog/server"
)

// errPartialImport часть пакетов не записалась
var errPartialImport = errors.New("some batches failed to insert")

func main() {
	var (
		filePath   = flag.String("file", "", "путь к CSV или XLSX выгрузке (обязательно)")
		encoding   = flag.String("encoding", "", "кодировка CSV: utf-8, shift_jis, sjis")
		note       = flag.String("note", "", "комментарий к импорту")
		configPath = flag.String("config", "", "путь к TOML файлу конфигурации")
	)
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Использование: import_catalog -file <path> [-encoding shift_jis] [-note text] [-config path]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	server.SetupLogging(os.Stderr, cfg.LogLevel)

	if err := run(context.Background(), os.Stdout, cfg, *filePath, *encoding, *note); err != nil {
		log.Fatalf("Ошибка импорта: %v", err)
	}
}

// run импортирует файл в базу из конфигурации и печатает результат как JSON.
// Частичный импорт печатается и возвращает errPartialImport.
func run(ctx context.Context, out io.Writer, cfg *config.Config, filePath, encoding, note string) error {
	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}
	if err := c.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer c.Shutdown(ctx)

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	result, importErr := c.ImportUseCase.ImportFile(ctx, importapp.ImportFileRequest{
		Filename: filepath.Base(filePath),
		Note:     note,
		Encoding: encoding,
		Content:  f,
	})
	if result != nil {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	if importErr != nil {
		return importErr
	}
	if result.Partial() {
		return errPartialImport
	}
	return nil
}
