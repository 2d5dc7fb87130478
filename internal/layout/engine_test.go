package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// testConfig returns a layout configuration with a page tall enough for
// exactly two data rows between header and bottom margin, with room for
// the summary band after a single row on a continuation page.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.PageHeight = 73
	cfg.GeneratedAt = time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC)
	return cfg
}

// rowsPerPage computes the data-row capacity of a page for a config.
func rowsPerPage(cfg Config) int {
	usable := cfg.PageHeight - cfg.TopMargin - cfg.BottomMargin - cfg.HeaderRowHeight
	return int(math.Floor(usable / cfg.DataRowHeight))
}

// bandsOfKind returns the bands of a given kind on a page, in order.
func bandsOfKind(p Page, kind BandKind) []Band {
	var out []Band
	for _, b := range p.Bands {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

func mustLayout(t *testing.T, cfg Config, columns []string, rows [][]string) *Result {
	t.Helper()
	engine, err := NewEngine(cfg, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	result, err := engine.Layout(columns, rows)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	return result
}

func makeRows(n int) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("item-%d", i+1), fmt.Sprintf("%d.99", i+1)}
	}
	return rows
}

// =============================================================================
// END-TO-END SCENARIO
// =============================================================================

// Two-row page capacity, three rows: page 1 carries the header and rows 1-2,
// page 2 a fresh header, row 3 and the summary.
func TestLayoutThreeRowsAcrossTwoPages(t *testing.T) {
	cfg := testConfig()
	if got := rowsPerPage(cfg); got != 2 {
		t.Fatalf("test setup: expected page capacity 2, got %d", got)
	}

	result := mustLayout(t, cfg,
		[]string{"Name", "Price"},
		[][]string{{"Widget", "9.99"}, {"Gadget", "19.99"}, {"Gizmo", "29.99"}},
	)

	if len(result.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(result.Pages))
	}
	if result.RecordCount != 3 {
		t.Fatalf("expected record count 3, got %d", result.RecordCount)
	}

	page1, page2 := result.Pages[0], result.Pages[1]

	if len(bandsOfKind(page1, BandHeader)) != 1 || len(bandsOfKind(page2, BandHeader)) != 1 {
		t.Fatalf("every page must carry exactly one table header")
	}

	rows1 := bandsOfKind(page1, BandRow)
	rows2 := bandsOfKind(page2, BandRow)
	if len(rows1) != 2 || len(rows2) != 1 {
		t.Fatalf("expected rows split 2/1, got %d/%d", len(rows1), len(rows2))
	}

	wantRow3 := []Cell{
		{Text: "3", Width: result.Widths[0]},
		{Text: "Gizmo", Width: result.Widths[1]},
		{Text: "29.99", Width: result.Widths[2]},
	}
	if diff := cmp.Diff(wantRow3, rows2[0].Cells); diff != "" {
		t.Fatalf("row 3 cells mismatch (-want +got):\n%s", diff)
	}

	summaries := bandsOfKind(page2, BandSummary)
	if len(summaries) != 1 {
		t.Fatalf("expected the summary on page 2, got %d summary bands", len(summaries))
	}
	if summaries[0].Text != "Total records: 3" {
		t.Fatalf("unexpected summary text: %q", summaries[0].Text)
	}
	if len(bandsOfKind(page1, BandSummary)) != 0 {
		t.Fatalf("summary must not appear on page 1")
	}
}

// =============================================================================
// INDEX CONTINUITY
// =============================================================================

// The index column is 1-based and strictly increasing across the whole
// dataset, with no reset at page boundaries.
func TestRowIndexContinuityAcrossPages(t *testing.T) {
	cfg := testConfig()
	result := mustLayout(t, cfg, []string{"Name", "Price"}, makeRows(9))

	next := 1
	for _, page := range result.Pages {
		for _, band := range bandsOfKind(page, BandRow) {
			got, err := strconv.Atoi(band.Cells[0].Text)
			if err != nil {
				t.Fatalf("index cell is not a number: %q", band.Cells[0].Text)
			}
			if got != next {
				t.Fatalf("expected index %d, got %d", next, got)
			}
			next++
		}
	}
	if next != 10 {
		t.Fatalf("expected 9 rows emitted, got %d", next-1)
	}
}

// =============================================================================
// PAGE COUNT AND HEADER REPETITION
// =============================================================================

func TestPageCountMatchesCapacity(t *testing.T) {
	cfg := testConfig()
	perPage := rowsPerPage(cfg)

	for _, n := range []int{1, 2, 3, 5, 8, 20} {
		result := mustLayout(t, cfg, []string{"Name", "Price"}, makeRows(n))

		pagesWithRows := 0
		for _, page := range result.Pages {
			if len(bandsOfKind(page, BandRow)) > 0 {
				pagesWithRows++
			}
		}

		want := int(math.Ceil(float64(n) / float64(perPage)))
		if pagesWithRows != want {
			t.Fatalf("n=%d: expected %d pages with rows, got %d", n, want, pagesWithRows)
		}

		// Every page carries its own furniture and, when it has rows,
		// a freshly rendered header above them.
		for _, page := range result.Pages {
			if len(bandsOfKind(page, BandTitle)) != 1 {
				t.Fatalf("n=%d: page %d missing title band", n, page.Number)
			}
			if len(bandsOfKind(page, BandFooter)) != 1 {
				t.Fatalf("n=%d: page %d missing footer band", n, page.Number)
			}
			rows := bandsOfKind(page, BandRow)
			headers := bandsOfKind(page, BandHeader)
			if len(rows) > 0 {
				if len(headers) != 1 {
					t.Fatalf("n=%d: page %d has %d headers", n, page.Number, len(headers))
				}
				if headers[0].Y >= rows[0].Y {
					t.Fatalf("n=%d: page %d header not above first row", n, page.Number)
				}
			}
		}
	}
}

func TestFooterCarriesPageNumberAndTimestamp(t *testing.T) {
	cfg := testConfig()
	result := mustLayout(t, cfg, []string{"Name", "Price"}, makeRows(5))

	for i, page := range result.Pages {
		footer := bandsOfKind(page, BandFooter)[0]
		want := fmt.Sprintf("Generated: 15.01.2026 14:30 | Page %d", i+1)
		if footer.Text != want {
			t.Fatalf("page %d footer: got %q, want %q", i+1, footer.Text, want)
		}
	}
}

// =============================================================================
// SHADING PARITY
// =============================================================================

// Shading is a pure function of the absolute row index: moving the page
// break never flips a row's fill.
func TestShadingParityInvariantUnderPageBreaks(t *testing.T) {
	rows := makeRows(11)

	collectFills := func(cfg Config) []bool {
		result := mustLayout(t, cfg, []string{"Name", "Price"}, rows)
		var fills []bool
		for _, page := range result.Pages {
			for _, band := range bandsOfKind(page, BandRow) {
				fills = append(fills, band.Style.Fill)
			}
		}
		return fills
	}

	small := testConfig() // 2 rows per page
	large := testConfig()
	large.PageHeight = 297 // everything on one page

	smallFills := collectFills(small)
	largeFills := collectFills(large)

	if diff := cmp.Diff(largeFills, smallFills); diff != "" {
		t.Fatalf("shading parity shifted with page size (-one page +paginated):\n%s", diff)
	}

	for i, fill := range largeFills {
		if want := i%2 == 0; fill != want {
			t.Fatalf("row %d: expected fill=%v from absolute index parity", i, want)
		}
	}
}

// =============================================================================
// TRUNCATION
// =============================================================================

func TestHeaderAndCellTruncation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GeneratedAt = time.Unix(0, 0)

	longHeader := "An Extremely Long Column Name"
	longValue := "a value that definitely exceeds twenty characters"
	result := mustLayout(t, cfg, []string{longHeader}, [][]string{{longValue}})

	header := bandsOfKind(result.Pages[0], BandHeader)[0]
	if got := header.Cells[1].Text; got != "An Extremely Lo" {
		t.Fatalf("header truncation: got %q", got)
	}

	row := bandsOfKind(result.Pages[0], BandRow)[0]
	if got := row.Cells[1].Text; got != "a value that definit" {
		t.Fatalf("cell truncation: got %q", got)
	}
}

// =============================================================================
// BOUNDARIES AND ERROR CASES
// =============================================================================

// One column, one row: a valid width plan and a single page.
func TestSingleCellDataset(t *testing.T) {
	cfg := DefaultConfig()
	result := mustLayout(t, cfg, []string{"Name"}, [][]string{{"Widget"}})

	if len(result.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(result.Pages))
	}
	if len(result.Widths) != 2 || result.Widths[1] <= 0 {
		t.Fatalf("invalid width plan: %v", result.Widths)
	}
	if result.Widths[0]+result.Widths[1] > cfg.TotalContentWidth {
		t.Fatalf("width sum exceeds content width")
	}
}

func TestLayoutRejectsRaggedRows(t *testing.T) {
	engine, err := NewEngine(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	_, err = engine.Layout([]string{"Name", "Price"}, [][]string{{"Widget"}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for ragged row, got %v", err)
	}
}

func TestLayoutRejectsZeroColumns(t *testing.T) {
	engine, err := NewEngine(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	_, err = engine.Layout(nil, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero columns, got %v", err)
	}
}

func TestEngineIsSingleUse(t *testing.T) {
	engine, err := NewEngine(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if _, err := engine.Layout([]string{"Name"}, [][]string{{"a"}}); err != nil {
		t.Fatalf("first layout failed: %v", err)
	}
	if _, err := engine.Layout([]string{"Name"}, [][]string{{"a"}}); err == nil {
		t.Fatalf("expected an error on engine reuse")
	}
}
