// =============================================================================
// PDF Report Generator - XLSX Reader
// =============================================================================
//
// This file reads spreadsheet workbooks into a Dataset. Only cell values are
// consumed; formatting, formulas (their computed values are used) and any
// sheets beyond the selected one are ignored.
//
// =============================================================================

package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ministerahmed59-ui/pdf-generator/internal/layout"
)

// ReadXLSX reads one worksheet of a workbook and returns the parsed dataset.
// The first row is the header row; blank rows are skipped and ragged rows
// are padded to the header width.
//
// PARAMETERS:
//   - filePath: The path to the .xlsx file.
//   - sheet: The worksheet name. Empty selects the first sheet.
func ReadXLSX(filePath, sheet string) (*Dataset, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", layout.ErrInvalidInput)
		}
		sheet = sheets[0]
	}

	allRows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", layout.ErrInvalidInput, sheet)
	}

	headers := cleanHeaders(allRows[0])

	rows := make([][]string, 0, len(allRows)-1)
	for _, row := range allRows[1:] {
		if isRowEmpty(row) {
			continue
		}
		rows = append(rows, normalizeRow(row, len(headers)))
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q has no data rows", layout.ErrInvalidInput, sheet)
	}

	return &Dataset{
		Columns:    headers,
		Rows:       rows,
		SourceFile: filePath,
	}, nil
}
