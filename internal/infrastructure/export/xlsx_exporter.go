package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"pricecatalog/internal/domain/catalog"
)

// PriceListSheet название листа прайс-листа
const PriceListSheet = "料金表"

// priceListHeaders заголовки колонок прайс-листа
var priceListHeaders = []string{"ブランド", "機種", "パーツグループ", "パーツ名", "価格"}

var priceListWidths = []float64{14, 18, 16, 28, 12}

// XLSXExporter выгружает прайс-лист в книгу Excel
type XLSXExporter struct{}

// NewXLSXExporter создает экспортер
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// WritePriceList записывает записи в порядке переданного среза.
// Цена выводится в отображаемом виде: "¥12,800" или "店頭見積".
func (e *XLSXExporter) WritePriceList(w io.Writer, records []catalog.CatalogRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), PriceListSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	// Стиль заголовков
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range priceListHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(PriceListSheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		f.SetCellStyle(PriceListSheet, cell, cell, headerStyle)
	}

	for idx, r := range records {
		row := []interface{}{
			r.Brand,
			r.Model,
			r.PartGroupLabel(),
			r.PartName,
			catalog.FormatPrice(r.PriceYen),
		}
		cell, _ := excelize.CoordinatesToCellName(1, idx+2)
		if err := f.SetSheetRow(PriceListSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", idx+2, err)
		}
	}

	for i, width := range priceListWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(PriceListSheet, col, col, width)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}
