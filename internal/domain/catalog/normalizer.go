package catalog

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// NormalizeResult результат нормализации пакета строк
type NormalizeResult struct {
	// Items позиции после дедупликации, в порядке первого появления
	Items []NormalizedItem
	// Candidates количество позиций до дедупликации
	Candidates int
	// Errors ошибки строк в формате "行N: сообщение"
	Errors []string
}

// CellValue читает ячейку по точному названию колонки.
// Значение обрезается, "nan" в любом регистре считается пустым.
func CellValue(row RawRow, key string) string {
	v, ok := row[key]
	if !ok {
		return ""
	}
	s := strings.TrimSpace(v)
	if strings.EqualFold(s, "nan") {
		return ""
	}
	return s
}

// LookupCell читает ячейку по названию колонки с запасным поиском,
// который игнорирует BOM и пробелы вокруг заголовков.
func LookupCell(row RawRow, key string) string {
	if v := CellValue(row, key); v != "" {
		return v
	}

	want := trimLabel(key)
	labels := make([]string, 0, len(row))
	for k := range row {
		labels = append(labels, k)
	}
	sort.Strings(labels)

	for _, k := range labels {
		if trimLabel(k) == want {
			return CellValue(row, k)
		}
	}
	return ""
}

func trimLabel(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// NormalizeRow превращает строку экспорта в одну или несколько позиций.
// Строка с несколькими путями категорий дает по позиции на путь с общей
// ценой и токеном. Недостающие колонки, пустая категория, пустая цена и
// символы замены U+FFFD от декодера строку не отбрасывают.
func NormalizeRow(row RawRow) []NormalizedItem {
	categoryCell := LookupCell(row, ColumnCategory)
	variation := LookupCell(row, ColumnVariation)
	token := LookupCell(row, ColumnToken)

	priceRaw := LookupCell(row, ColumnPrice)
	if priceRaw == "" {
		priceRaw = LookupCell(row, ColumnSalesPrice)
	}
	price := ParsePrice(priceRaw)

	paths := SplitCategoryCell(categoryCell)
	if len(paths) == 0 {
		paths = []string{""}
	}

	items := make([]NormalizedItem, 0, len(paths))
	for _, p := range paths {
		parsed := ParseCategoryPath(p)

		partName := parsed.PartGroup
		if variation != "" {
			partName = parsed.PartGroup + " " + variation
		}

		items = append(items, NormalizedItem{
			Brand:          parsed.Brand,
			Model:          parsed.Model,
			PartGroup:      stringPtr(parsed.PartGroup),
			PartName:       partName,
			PriceYen:       price,
			SourceToken:    optionalString(token),
			SourceCategory: optionalString(categoryCell),
		})
	}

	return items
}

// normalizeRow подменяется в тестах
var normalizeRow = NormalizeRow

// NormalizeRows нормализует все строки выгрузки и убирает дубликаты.
// Строка, на которой нормализация упала с паникой, попадает в Errors с номером
// строки файла (индекс + 2 с учетом заголовка) и пропускается.
func NormalizeRows(rows []RawRow) NormalizeResult {
	var all []NormalizedItem
	var errs []string

	for idx, row := range rows {
		items, err := safeNormalizeRow(row)
		if err != nil {
			errs = append(errs, fmt.Sprintf("行%d: %v", idx+2, err))
			continue
		}
		all = append(all, items...)
	}

	return NormalizeResult{
		Items:      DedupeItems(all),
		Candidates: len(all),
		Errors:     errs,
	}
}

// safeNormalizeRow перехватывает панику при разборе одной строки
func safeNormalizeRow(row RawRow) (items []NormalizedItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			items = nil
			err = fmt.Errorf("%v", r)
		}
	}()
	return normalizeRow(row), nil
}
