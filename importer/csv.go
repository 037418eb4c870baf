package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Поддерживаемые кодировки
const (
	EncodingUTF8     = "utf-8"
	EncodingShiftJIS = "shift_jis"
)

// NormalizeEncoding приводит название кодировки к каноническому виду
func NormalizeEncoding(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "shift_jis", "shift-jis", "sjis", "cp932":
		return EncodingShiftJIS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
}

// decodingReader оборачивает поток декодером; BOM UTF-8 отрезается,
// некорректные байты заменяются на U+FFFD
func decodingReader(r io.Reader, encoding string) (io.Reader, error) {
	enc, err := NormalizeEncoding(encoding)
	if err != nil {
		return nil, err
	}
	if enc == EncodingShiftJIS {
		return transform.NewReader(r, japanese.ShiftJIS.NewDecoder()), nil
	}
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
}

// ReadCSV читает CSV с заголовком. Кавычки разбираются нестрого,
// количество ячеек в строках может отличаться от заголовка.
func ReadCSV(r io.Reader, encoding string) (*Table, error) {
	decoded, err := decodingReader(r, encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(decoded)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	return buildTable(header, records), nil
}
