package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX читает первый лист книги; первая строка листа считается заголовком
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%w: no sheets found in Excel file", ErrNoHeader)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	return buildTable(rows[0], rows[1:]), nil
}
