// =============================================================================
// PDF Report Generator - Table Layout Model
// =============================================================================
//
// This file defines the data model shared by the table layout engine and the
// PDF writer:
//   - Config:  the page geometry and table layout settings
//   - Band:    one horizontal slice of drawing instructions (header row,
//              data row, page furniture, summary line)
//   - Page:    an ordered list of bands for one physical page
//   - Result:  the complete set of pages produced for one dataset
//
// DESIGN:
//   Bands carry their full style (font, colors, fill, border) explicitly.
//   The writer never relies on a "current font" or "current color" left
//   behind by a previous call, so bands can be drawn in any order and the
//   output stays reproducible.
//
// =============================================================================

package layout

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidInput is returned for inputs the engine rejects outright:
// zero columns, non-positive widths, or rows whose cell count does not
// match the column count. No partial output is ever produced.
var ErrInvalidInput = errors.New("invalid input")

// =============================================================================
// CONFIGURATION
// =============================================================================

// Config holds the layout settings for one table render.
// All values are in page units (millimeters for A4 output).
type Config struct {
	// IndexColumnWidth is the fixed width of the synthetic row-index column.
	IndexColumnWidth float64

	// HeaderRowHeight is the height of the table header band.
	HeaderRowHeight float64

	// DataRowHeight is the height of one data row band.
	DataRowHeight float64

	// MaxHeaderChars is the truncation limit for column names.
	// Truncation is silent; there is no ellipsis marker.
	MaxHeaderChars int

	// MaxCellChars is the truncation limit for cell values.
	MaxCellChars int

	// TotalContentWidth is the usable horizontal space for the table.
	TotalContentWidth float64

	// PageHeight is the full physical page height.
	PageHeight float64

	// TopMargin is the vertical position where table content starts on
	// every page. It already accounts for the title band drawn above it.
	TopMargin float64

	// BottomMargin is the space reserved at the bottom of each page.
	// No table content is placed below PageHeight - BottomMargin.
	BottomMargin float64

	// Title is the text of the page title band, repeated on every page.
	Title string

	// GeneratedAt is the timestamp shown in the page footer. The caller
	// supplies it so repeated runs over the same data can be compared.
	GeneratedAt time.Time
}

// DefaultConfig returns the standard A4 layout settings.
//
// The truncation limits (15 header / 20 cell characters) and the fixed
// index column width of 12 units reproduce the established report format;
// they are defaults, not hard constants, and can be overridden per run.
func DefaultConfig() Config {
	return Config{
		IndexColumnWidth:  12,
		HeaderRowHeight:   10,
		DataRowHeight:     8,
		MaxHeaderChars:    15,
		MaxCellChars:      20,
		TotalContentWidth: 190,
		PageHeight:        297,
		TopMargin:         25,
		BottomMargin:      15,
		Title:             "Product Catalog",
	}
}

// validate checks the configuration before any output is produced.
func (c Config) validate() error {
	if c.TotalContentWidth <= 0 {
		return fmt.Errorf("%w: total content width must be positive, got %g", ErrInvalidInput, c.TotalContentWidth)
	}
	if c.IndexColumnWidth <= 0 || c.IndexColumnWidth >= c.TotalContentWidth {
		return fmt.Errorf("%w: index column width %g out of range (0, %g)", ErrInvalidInput, c.IndexColumnWidth, c.TotalContentWidth)
	}
	if c.HeaderRowHeight <= 0 || c.DataRowHeight <= 0 {
		return fmt.Errorf("%w: row heights must be positive", ErrInvalidInput)
	}
	if c.PageHeight <= c.TopMargin+c.BottomMargin {
		return fmt.Errorf("%w: page height %g leaves no printable area", ErrInvalidInput, c.PageHeight)
	}
	return nil
}

// =============================================================================
// COLUMN WIDTH PLAN
// =============================================================================

// ComputeColumnWidths allocates horizontal space for a table.
//
// The index column keeps its fixed width; the remaining space is divided
// equally between the data columns. Each data column width is floored to
// 0.01 units so the division is deterministic and the sum of all widths
// never exceeds totalContentWidth.
//
// RETURNS:
//   - A slice of columnCount+1 widths; element 0 is the index column.
//   - ErrInvalidInput for a zero column count or non-positive widths.
func ComputeColumnWidths(columnCount int, totalContentWidth, indexColumnWidth float64) ([]float64, error) {
	if columnCount <= 0 {
		return nil, fmt.Errorf("%w: column count must be at least 1, got %d", ErrInvalidInput, columnCount)
	}
	if totalContentWidth <= 0 {
		return nil, fmt.Errorf("%w: total content width must be positive, got %g", ErrInvalidInput, totalContentWidth)
	}
	if indexColumnWidth <= 0 || indexColumnWidth >= totalContentWidth {
		return nil, fmt.Errorf("%w: index column width %g out of range (0, %g)", ErrInvalidInput, indexColumnWidth, totalContentWidth)
	}

	colWidth := math.Floor((totalContentWidth-indexColumnWidth)/float64(columnCount)*100) / 100

	widths := make([]float64, columnCount+1)
	widths[0] = indexColumnWidth
	for i := 1; i <= columnCount; i++ {
		widths[i] = colWidth
	}
	return widths, nil
}

// =============================================================================
// TEXT SHAPING CAPABILITY
// =============================================================================

// Shaper is the text-shaping capability the engine depends on but does not
// implement. Clip must return the text silently cut to at most maxChars
// characters; text already within the limit must come back unchanged.
// Truncation is the sole overflow strategy: no wrapping, no auto-shrink.
type Shaper interface {
	Clip(text string, maxChars int) string
}

// runeClipper is the built-in shaper used when no capability is injected.
// It truncates on rune boundaries so multi-byte text is never cut mid-glyph.
type runeClipper struct{}

func (runeClipper) Clip(text string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}

// =============================================================================
// BAND MODEL
// =============================================================================

// BandKind identifies the role of a band on the page.
type BandKind int

const (
	// BandTitle is the centered page title, drawn on every page.
	BandTitle BandKind = iota

	// BandHeader is the table header row with the column names.
	BandHeader

	// BandRow is one data row of the table.
	BandRow

	// BandSummary is the trailing record-count line after the last row.
	BandSummary

	// BandFooter is the page footer with timestamp and page number.
	BandFooter
)

// Color is an RGB color with 0-255 components.
type Color struct {
	R, G, B int
}

// Style holds the complete drawing style for one band. Every band carries
// its own style; nothing is inherited from previously drawn bands.
type Style struct {
	// FontStyle is "" for regular or "B" for bold.
	FontStyle string

	// FontSize is the font size in points.
	FontSize float64

	// TextColor is the text color.
	TextColor Color

	// FillColor is the background color, used when Fill is true.
	FillColor Color

	// Fill enables the background fill.
	Fill bool

	// Border draws a full cell border.
	Border bool

	// Align is the horizontal alignment: "C" centered, "L" left.
	Align string
}

// Cell is one cell of a header or data band. The text is already truncated;
// the writer draws it as-is.
type Cell struct {
	Text  string
	Width float64
}

// Band is one horizontal slice of drawing instructions. Tabular bands carry
// Cells; furniture and summary bands carry a single Text spanning the page.
type Band struct {
	Kind   BandKind
	Y      float64
	Height float64
	Cells  []Cell
	Text   string
	Style  Style
}

// Page holds the bands of one physical page, in drawing order.
type Page struct {
	// Number is the 1-based page number.
	Number int

	Bands []Band
}

// Result is the complete layout output for one dataset.
type Result struct {
	Pages []Page

	// Widths is the column width plan: index column first, then one width
	// per data column.
	Widths []float64

	// ContentWidth is the total content width the table was laid out for.
	// The writer uses it to center the table on the physical page.
	ContentWidth float64

	// PageHeight is the physical page height the layout was computed for.
	PageHeight float64

	// RecordCount is the number of data rows laid out.
	RecordCount int
}

// =============================================================================
// FIXED PALETTE
// =============================================================================
// The report palette matches the established output format.

var (
	titleColor      = Color{R: 44, G: 62, B: 80}
	headerFillColor = Color{R: 52, G: 73, B: 94}
	headerTextColor = Color{R: 255, G: 255, B: 255}
	bodyTextColor   = Color{R: 0, G: 0, B: 0}
	shadeFillColor  = Color{R: 245, G: 245, B: 245}
	footerTextColor = Color{R: 150, G: 150, B: 150}
)
