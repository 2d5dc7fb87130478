// =============================================================================
// PDF Report Generator - CSV Reader
// =============================================================================
//
// This file reads delimited data files into a Dataset. It handles:
//   - Different delimiters (comma, pipe, tab, semicolon)
//   - Multi-row headers merged column-wise into single names
//   - Custom data start rows
//   - Quoted fields with lazy quoting
//   - Blank rows (skipped) and ragged rows (padded to the column count)
//
// =============================================================================

package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/ministerahmed59-ui/pdf-generator/internal/config"
	"github.com/ministerahmed59-ui/pdf-generator/internal/layout"
)

// ReadCSV reads a delimited file and returns the parsed dataset.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV parsing settings.
//
// RETURNS:
//   - The parsed dataset, already rectangular (rows padded to the column
//     count, blank rows dropped).
//   - An error if the file cannot be read, has no header, or contains no
//     data rows. An empty input is rejected up front so layout never runs
//     on it.
func ReadCSV(filePath string, settings config.CSVSettings) (*Dataset, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader, settings)

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("%w: CSV file is empty", layout.ErrInvalidInput)
	}

	headers, err := extractHeaders(allRows, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to extract headers: %w", err)
	}

	rows := extractDataRows(allRows, len(headers), settings)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: CSV file has no data rows", layout.ErrInvalidInput)
	}

	return &Dataset{
		Columns:    headers,
		Rows:       rows,
		SourceFile: filePath,
	}, nil
}

// configureReader applies the delimiter and quoting settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Rows may have inconsistent field counts; normalizeRow squares
	// them off afterwards.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
}

// extractHeaders extracts and merges the header rows.
//
// Multi-row headers are merged column-wise: the non-empty values of each
// column are joined with a space, so
//
//	Row 1: "Transaction", "",       "Policy"
//	Row 2: "Number",      "Amount", "Number"
//
// becomes "Transaction Number", "Amount", "Policy Number".
func extractHeaders(allRows [][]string, settings config.CSVSettings) ([]string, error) {
	if settings.HeaderRows <= 0 {
		return nil, fmt.Errorf("header_rows must be at least 1")
	}
	if len(allRows) < settings.HeaderRows {
		return nil, fmt.Errorf("file has fewer rows than header_rows setting")
	}

	if settings.HeaderRows == 1 {
		return cleanHeaders(allRows[0]), nil
	}

	maxCols := 0
	for i := 0; i < settings.HeaderRows; i++ {
		if len(allRows[i]) > maxCols {
			maxCols = len(allRows[i])
		}
	}

	headers := make([]string, maxCols)
	for col := 0; col < maxCols; col++ {
		var parts []string
		for row := 0; row < settings.HeaderRows; row++ {
			if col < len(allRows[row]) {
				if value := strings.TrimSpace(allRows[row][col]); value != "" {
					parts = append(parts, value)
				}
			}
		}
		headers[col] = strings.Join(parts, " ")
	}

	return cleanHeaders(headers), nil
}

// extractDataRows collects the data rows starting at the configured row,
// skipping blank rows and squaring each row to the column count.
func extractDataRows(allRows [][]string, columns int, settings config.CSVSettings) [][]string {
	startIndex := settings.DataStartRow - 1
	if startIndex < 0 {
		startIndex = settings.HeaderRows
	}
	if startIndex >= len(allRows) {
		return nil
	}

	rows := make([][]string, 0, len(allRows)-startIndex)
	for _, row := range allRows[startIndex:] {
		if isRowEmpty(row) {
			continue
		}
		rows = append(rows, normalizeRow(row, columns))
	}
	return rows
}
