// =============================================================================
// PDF Report Generator - Table Layout Engine
// =============================================================================
//
// The engine turns a rectangular dataset into a paginated sequence of band
// drawing instructions. It owns all pagination decisions:
//   - column widths are allocated once per dataset
//   - rows are streamed with a vertical cursor; a row that would cross the
//     printable bottom margin triggers a page break, never a mid-row split
//   - the table header is re-emitted on every page so each page is
//     self-describing
//   - row shading alternates by absolute row index, so a page break never
//     shifts the parity
//   - a trailing summary band states the total record count
//
// Page furniture (centered title at the top, timestamp + page number footer
// at the bottom) is emitted once per physical page. No state other than the
// page counter carries across pages.
//
// The engine is single-use: one dataset, one Layout call, one Result.
//
// =============================================================================

package layout

import (
	"fmt"
	"strconv"
)

// Title band geometry above the table area: the band itself plus the gap
// separating it from the table header.
const (
	titleBandTop    = 10.0
	titleBandHeight = 10.0
)

// Summary band geometry: the gap after the last data row and the band height.
const (
	summaryGap    = 5.0
	summaryHeight = 10.0
)

const footerHeight = 10.0

// =============================================================================
// ENGINE STATE
// =============================================================================

// state tracks the engine through its lifecycle. The only legal order is
// idle -> pageOpen -> headerDrawn -> (rows) -> summaryDrawn -> closed.
type state int

const (
	stateIdle state = iota
	statePageOpen
	stateHeaderDrawn
	stateSummaryDrawn
	stateClosed
)

// Engine lays out one dataset. Create it with NewEngine and call Layout
// exactly once; a closed engine rejects further use.
type Engine struct {
	cfg    Config
	shaper Shaper

	state  state
	pages  []Page
	cur    *Page
	y      float64
	widths []float64
}

// NewEngine validates the configuration and returns an engine ready for a
// single Layout call. A nil shaper selects the built-in rune-boundary
// truncation.
func NewEngine(cfg Config, shaper Shaper) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if shaper == nil {
		shaper = runeClipper{}
	}
	return &Engine{cfg: cfg, shaper: shaper}, nil
}

// =============================================================================
// LAYOUT
// =============================================================================

// Layout paginates the dataset and returns the complete set of pages.
//
// The columns and rows must form a rectangle: every row needs exactly
// len(columns) cells. Violations, like a zero column count, are rejected
// with ErrInvalidInput before any band is produced. The input is never
// mutated.
func (e *Engine) Layout(columns []string, rows [][]string) (*Result, error) {
	if e.state != stateIdle {
		return nil, fmt.Errorf("layout engine is not reusable")
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d",
				ErrInvalidInput, i+1, len(row), len(columns))
		}
	}

	widths, err := ComputeColumnWidths(len(columns), e.cfg.TotalContentWidth, e.cfg.IndexColumnWidth)
	if err != nil {
		return nil, err
	}
	e.widths = widths

	e.openPage()
	e.renderHeaderBand(columns)

	for i, row := range rows {
		if e.y+e.cfg.DataRowHeight > e.printableBottom() {
			e.openPage()
			e.renderHeaderBand(columns)
		}
		e.renderDataRow(i, row)
	}

	e.renderSummary(len(rows))

	e.state = stateClosed
	return &Result{
		Pages:        e.pages,
		Widths:       widths,
		ContentWidth: e.cfg.TotalContentWidth,
		PageHeight:   e.cfg.PageHeight,
		RecordCount:  len(rows),
	}, nil
}

// printableBottom is the lowest cursor position table content may reach.
func (e *Engine) printableBottom() float64 {
	return e.cfg.PageHeight - e.cfg.BottomMargin
}

// =============================================================================
// PAGE FURNITURE
// =============================================================================

// openPage finalizes the current page, starts the next one, emits its
// furniture bands and resets the cursor to the top margin.
func (e *Engine) openPage() {
	e.pages = append(e.pages, Page{Number: len(e.pages) + 1})
	e.cur = &e.pages[len(e.pages)-1]
	e.y = e.cfg.TopMargin
	e.state = statePageOpen

	// Centered title at the top of every page, continuation pages included.
	e.cur.Bands = append(e.cur.Bands, Band{
		Kind:   BandTitle,
		Y:      titleBandTop,
		Height: titleBandHeight,
		Text:   e.cfg.Title,
		Style: Style{
			FontStyle: "B",
			FontSize:  16,
			TextColor: titleColor,
			Align:     "C",
		},
	})

	// Footer with generation timestamp and page number, drawn inside the
	// bottom margin.
	footer := fmt.Sprintf("Generated: %s | Page %d",
		e.cfg.GeneratedAt.Format("02.01.2006 15:04"), e.cur.Number)
	e.cur.Bands = append(e.cur.Bands, Band{
		Kind:   BandFooter,
		Y:      e.cfg.PageHeight - e.cfg.BottomMargin,
		Height: footerHeight,
		Text:   footer,
		Style: Style{
			FontSize:  8,
			TextColor: footerTextColor,
			Align:     "C",
		},
	})
}

// =============================================================================
// TABLE BANDS
// =============================================================================

// renderHeaderBand emits the table header: the row-index marker followed by
// one cell per column, each name silently truncated to MaxHeaderChars.
func (e *Engine) renderHeaderBand(columns []string) {
	cells := make([]Cell, 0, len(columns)+1)
	cells = append(cells, Cell{Text: "#", Width: e.widths[0]})
	for i, col := range columns {
		cells = append(cells, Cell{
			Text:  e.shaper.Clip(col, e.cfg.MaxHeaderChars),
			Width: e.widths[i+1],
		})
	}

	e.cur.Bands = append(e.cur.Bands, Band{
		Kind:   BandHeader,
		Y:      e.y,
		Height: e.cfg.HeaderRowHeight,
		Cells:  cells,
		Style: Style{
			FontStyle: "B",
			FontSize:  8,
			TextColor: headerTextColor,
			FillColor: headerFillColor,
			Fill:      true,
			Border:    true,
			Align:     "C",
		},
	})

	e.y += e.cfg.HeaderRowHeight
	e.state = stateHeaderDrawn
}

// renderDataRow emits one data row. The index cell is 1-based and counts
// across the whole dataset; shading parity follows the absolute row index,
// not the position within the page.
func (e *Engine) renderDataRow(rowIndex int, values []string) {
	cells := make([]Cell, 0, len(values)+1)
	cells = append(cells, Cell{Text: strconv.Itoa(rowIndex + 1), Width: e.widths[0]})
	for i, value := range values {
		cells = append(cells, Cell{
			Text:  e.shaper.Clip(value, e.cfg.MaxCellChars),
			Width: e.widths[i+1],
		})
	}

	e.cur.Bands = append(e.cur.Bands, Band{
		Kind:   BandRow,
		Y:      e.y,
		Height: e.cfg.DataRowHeight,
		Cells:  cells,
		Style: Style{
			FontSize:  7,
			TextColor: bodyTextColor,
			FillColor: shadeFillColor,
			Fill:      rowIndex%2 == 0,
			Border:    true,
			Align:     "L",
		},
	})

	e.y += e.cfg.DataRowHeight
}

// renderSummary emits the trailing record-count band. It obeys the same
// page-break check as a data row so it is never clipped at the bottom, but
// a break here does not re-emit the table header: nothing follows it.
func (e *Engine) renderSummary(recordCount int) {
	e.y += summaryGap
	if e.y+summaryHeight > e.printableBottom() {
		e.openPage()
	}

	e.cur.Bands = append(e.cur.Bands, Band{
		Kind:   BandSummary,
		Y:      e.y,
		Height: summaryHeight,
		Text:   fmt.Sprintf("Total records: %d", recordCount),
		Style: Style{
			FontStyle: "B",
			FontSize:  12,
			TextColor: titleColor,
			Align:     "L",
		},
	})

	e.y += summaryHeight
	e.state = stateSummaryDrawn
}
