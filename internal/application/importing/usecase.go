package importing

import (
	"context"
	"errors"
	"fmt"
	"io"

	"pricecatalog/importer"
	domain "pricecatalog/internal/domain/importing"
	"pricecatalog/internal/domain/repositories"
)

// ErrUnreadableFile файл не удалось прочитать как таблицу
var ErrUnreadableFile = errors.New("failed to read uploaded file")

// ImportFileRequest загруженный файл прайс-листа
type ImportFileRequest struct {
	Filename string
	Note     string
	// Encoding кодировка CSV; пустая строка означает кодировку по умолчанию
	Encoding string
	Content  io.Reader
}

// UseCase представляет use case для импорта прайс-листов
// Координирует чтение файла и domain service
type UseCase struct {
	importService   domain.Service
	defaultEncoding string
}

// NewUseCase создает новый use case для импорта
func NewUseCase(importService domain.Service, defaultEncoding string) *UseCase {
	if defaultEncoding == "" {
		defaultEncoding = importer.EncodingUTF8
	}
	return &UseCase{
		importService:   importService,
		defaultEncoding: defaultEncoding,
	}
}

// ImportFile читает файл и импортирует его строки
func (uc *UseCase) ImportFile(ctx context.Context, req ImportFileRequest) (*domain.ImportResult, error) {
	encoding := req.Encoding
	if encoding == "" {
		encoding = uc.defaultEncoding
	}
	encoding, err := importer.NormalizeEncoding(encoding)
	if err != nil {
		return nil, err
	}

	table, err := importer.Read(req.Content, req.Filename, importer.Options{Encoding: encoding})
	if err != nil {
		if errors.Is(err, importer.ErrUnsupportedFormat) || errors.Is(err, importer.ErrUnsupportedEncoding) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	result, err := uc.importService.Import(ctx, domain.ImportRequest{
		OriginalFilename: req.Filename,
		Note:             req.Note,
		Rows:             table.Rows,
		DetectedColumns:  table.DetectedColumns(),
	})
	if err != nil {
		return result, fmt.Errorf("failed to import file: %w", err)
	}
	return result, nil
}

// GetImport возвращает запись импорта
func (uc *UseCase) GetImport(ctx context.Context, id string) (*repositories.ImportRecord, error) {
	record, err := uc.importService.GetImport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get import: %w", err)
	}
	return record, nil
}

// ListImports возвращает журнал импортов
func (uc *UseCase) ListImports(ctx context.Context, filter repositories.ImportFilter) ([]repositories.ImportRecord, int64, error) {
	records, total, err := uc.importService.ListImports(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list imports: %w", err)
	}
	return records, total, nil
}
