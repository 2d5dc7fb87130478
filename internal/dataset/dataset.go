// =============================================================================
// PDF Report Generator - Dataset Model
// =============================================================================
//
// A Dataset is the rectangular, order-significant view of an input file that
// the layout engine consumes: a sequence of column names and a sequence of
// rows aligned positionally to those columns. It is constructed once by a
// reader (CSV or XLSX), validated, and never mutated afterwards.
//
// =============================================================================

package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ministerahmed59-ui/pdf-generator/internal/config"
	"github.com/ministerahmed59-ui/pdf-generator/internal/layout"
)

// =============================================================================
// DATASET STRUCTURE
// =============================================================================

// Dataset represents one parsed input file.
type Dataset struct {
	// Columns contains the column names in file order. Names are not
	// required to be unique; position is what identifies a column.
	Columns []string

	// Rows contains the data rows. Every row has exactly len(Columns)
	// cells; Validate enforces this.
	Rows [][]string

	// SourceFile is the path of the file the dataset was read from.
	SourceFile string
}

// Validate checks the dataset invariants before layout:
//   - at least one column
//   - at least one data row (an empty input produces no report)
//   - every row has exactly as many cells as there are columns
//
// Violations are reported as layout.ErrInvalidInput so callers can treat
// them uniformly with the engine's own input errors.
func (d *Dataset) Validate() error {
	if len(d.Columns) == 0 {
		return fmt.Errorf("%w: dataset has no columns", layout.ErrInvalidInput)
	}
	if len(d.Rows) == 0 {
		return fmt.Errorf("%w: dataset has no rows", layout.ErrInvalidInput)
	}
	for i, row := range d.Rows {
		if len(row) != len(d.Columns) {
			return fmt.Errorf("%w: row %d has %d cells, expected %d",
				layout.ErrInvalidInput, i+1, len(row), len(d.Columns))
		}
	}
	return nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads a dataset from a file, dispatching on the file extension.
// Supported extensions: .csv (delimited text) and .xlsx (workbook).
func Load(filePath string, settings config.CSVSettings) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		return ReadCSV(filePath, settings)
	case ".xlsx":
		return ReadXLSX(filePath, settings.Sheet)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", filepath.Ext(filePath))
	}
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// cleanHeaders trims header values and fills empty ones with a positional
// placeholder name.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}
	return cleaned
}

// isRowEmpty reports whether a row contains only blank cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// normalizeRow trims each cell and pads or cuts the row to the column count
// so every dataset row is rectangular.
func normalizeRow(row []string, columns int) []string {
	out := make([]string, columns)
	for i := 0; i < columns; i++ {
		if i < len(row) {
			out[i] = strings.TrimSpace(row[i])
		}
	}
	return out
}
