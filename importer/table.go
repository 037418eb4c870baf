package importer

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"pricecatalog/internal/domain/catalog"
)

var (
	// ErrUnsupportedEncoding кодировка не поддерживается
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	// ErrUnsupportedFormat формат файла не поддерживается
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrNoHeader в файле нет строки заголовка
	ErrNoHeader = errors.New("file has no header row")
)

// Table строки выгрузки с заголовками
type Table struct {
	// Columns заголовки в порядке файла
	Columns []string
	// Rows строки данных; отсутствующие ячейки не попадают в RawRow
	Rows []catalog.RawRow
}

// DetectedColumns заголовки, реально присутствующие в первой строке данных,
// в порядке файла. Без строк данных возвращает все заголовки.
func (t *Table) DetectedColumns() []string {
	if len(t.Rows) == 0 {
		return append([]string(nil), t.Columns...)
	}
	first := t.Rows[0]
	seen := make(map[string]struct{}, len(t.Columns))
	out := make([]string, 0, len(first))
	for _, c := range t.Columns {
		if _, ok := first[c]; !ok {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Options параметры чтения файла
type Options struct {
	// Encoding кодировка CSV: utf-8 (по умолчанию) или shift_jis
	Encoding string
}

// Read читает выгрузку: .xlsx через excelize, остальное как CSV
func Read(r io.Reader, filename string, opts Options) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(r)
	case ".xls", ".numbers":
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	return ReadCSV(r, opts.Encoding)
}

// buildTable сопоставляет ячейки с заголовками. Лишние ячейки отбрасываются,
// недостающие отсутствуют в строке. Полностью пустые строки пропускаются.
func buildTable(header []string, records [][]string) *Table {
	table := &Table{Columns: header}
	for _, rec := range records {
		if isBlankRecord(rec) {
			continue
		}
		row := make(catalog.RawRow, len(header))
		for i, cell := range rec {
			if i >= len(header) {
				break
			}
			row[header[i]] = cell
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func isBlankRecord(rec []string) bool {
	return len(rec) == 0 || (len(rec) == 1 && rec[0] == "")
}
