// =============================================================================
// PDF Report Generator - Generation Pipeline
// =============================================================================
//
// This module orchestrates the generation pipeline for a single input file:
//
//   1. Read the input file into a dataset (CSV or XLSX)
//   2. Validate the dataset (rectangular, non-empty)
//   3. Resolve the report title (HTML template, then configured fallback)
//   4. Probe for a font face with the needed glyph coverage
//   5. Lay out the table (pagination, widths, truncation, furniture)
//   6. Serialize the pages to a PDF in the output directory
//   7. Archive the input file
//
// CONCURRENCY:
//   Each Generator owns exactly one file and has no shared mutable state,
//   so multiple files can be processed in parallel with one Generator each.
//   The layout engine inside a run is strictly single-threaded.
//
// =============================================================================

package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ministerahmed59-ui/pdf-generator/internal/config"
	"github.com/ministerahmed59-ui/pdf-generator/internal/dataset"
	"github.com/ministerahmed59-ui/pdf-generator/internal/fonts"
	"github.com/ministerahmed59-ui/pdf-generator/internal/layout"
	"github.com/ministerahmed59-ui/pdf-generator/internal/pdfwriter"
	"github.com/ministerahmed59-ui/pdf-generator/internal/template"
	"github.com/ministerahmed59-ui/pdf-generator/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single file.
type Result struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// OutputFile is the path to the generated PDF.
	// This is empty if processing failed.
	OutputFile string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed, nil otherwise.
	Error error

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about one generation run.
type Stats struct {
	// RowsProcessed is the number of data rows laid out.
	RowsProcessed int

	// PagesEmitted is the number of PDF pages produced.
	PagesEmitted int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// LOGGER
// =============================================================================

// Logger is the logging interface used by the pipeline.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
}

// StdoutLogger prints log lines to stdout. Debug output is gated behind
// the Verbose flag.
type StdoutLogger struct {
	Verbose bool
}

func (l *StdoutLogger) Debug(msg string, args ...interface{}) {
	if l.Verbose {
		fmt.Printf("[DEBUG] "+msg+"\n", args...)
	}
}

func (l *StdoutLogger) Info(msg string, args ...interface{}) {
	fmt.Printf("[INFO] "+msg+"\n", args...)
}

func (l *StdoutLogger) Warn(msg string, args ...interface{}) {
	fmt.Printf("[WARN] "+msg+"\n", args...)
}

// =============================================================================
// GENERATOR
// =============================================================================

// Options adjusts a single generation run.
type Options struct {
	// TemplateFile overrides the configured HTML template path.
	TemplateFile string

	// OutputPath pins the output file path, bypassing name generation.
	OutputPath string

	// DryRun runs the pipeline without writing the PDF or archiving.
	DryRun bool
}

// Generator handles the generation of one PDF from one input file.
type Generator struct {
	inputPath string
	cfg       *config.MainConfig
	opts      Options
	logger    Logger
}

// New creates a Generator for a single input file.
func New(inputPath string, cfg *config.MainConfig, opts Options, logger Logger) *Generator {
	if logger == nil {
		logger = &StdoutLogger{}
	}
	return &Generator{
		inputPath: inputPath,
		cfg:       cfg,
		opts:      opts,
		logger:    logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the generation pipeline for the file.
func (g *Generator) Run() Result {
	startTime := time.Now()
	result := Result{FilePath: g.inputPath}

	g.logger.Info("Processing file: %s", g.inputPath)

	// =========================================================================
	// STEP 1-2: READ AND VALIDATE THE DATASET
	// =========================================================================

	ds, err := dataset.Load(g.inputPath, g.cfg.CSVSettings)
	if err != nil {
		result.Error = fmt.Errorf("failed to read input: %w", err)
		return result
	}
	if err := ds.Validate(); err != nil {
		result.Error = err
		return result
	}

	result.Stats.RowsProcessed = len(ds.Rows)
	g.logger.Debug("Read %d rows, %d columns: %s",
		len(ds.Rows), len(ds.Columns), strings.Join(ds.Columns, ", "))

	// =========================================================================
	// STEP 3: RESOLVE THE REPORT TITLE
	// =========================================================================

	title := g.resolveTitle()
	g.logger.Debug("Report title: %s", title)

	// =========================================================================
	// STEP 4: PROBE FOR A FONT FACE
	// =========================================================================

	face := fonts.Probe(g.cfg.FontsDir)
	if face.Core() {
		g.logger.Warn("No TTF font found; falling back to %s (non-Latin text may not render)", face.Family)
	} else {
		g.logger.Debug("Using font: %s (%s)", face.Family, face.RegularPath)
	}

	// =========================================================================
	// STEP 5: LAY OUT THE TABLE
	// =========================================================================

	engine, err := layout.NewEngine(g.layoutConfig(title), face)
	if err != nil {
		result.Error = fmt.Errorf("failed to configure layout: %w", err)
		return result
	}

	laid, err := engine.Layout(ds.Columns, ds.Rows)
	if err != nil {
		result.Error = fmt.Errorf("layout failed: %w", err)
		return result
	}

	result.Stats.PagesEmitted = len(laid.Pages)
	g.logger.Debug("Laid out %d pages", len(laid.Pages))

	// =========================================================================
	// STEP 6: WRITE THE PDF
	// =========================================================================

	outputPath := g.opts.OutputPath
	if outputPath == "" {
		original := strings.TrimSuffix(filepath.Base(g.inputPath), filepath.Ext(g.inputPath))
		fileName := utils.GenerateOutputFileName(g.cfg.OutputNameFormat, map[string]string{
			"original": original,
		})
		outputPath = filepath.Join(g.cfg.OutputDir, fileName)
	}

	if g.opts.DryRun {
		g.logger.Info("Dry run: would write %s", outputPath)
		result.OutputFile = outputPath
		result.Success = true
		result.Stats.ProcessingTime = time.Since(startTime)
		return result
	}

	if err := pdfwriter.WriteFile(laid, face, outputPath); err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		return result
	}

	result.OutputFile = outputPath
	g.logger.Info("Wrote output to: %s", outputPath)

	// =========================================================================
	// STEP 7: ARCHIVE THE INPUT FILE
	// =========================================================================

	fm := utils.NewFileManager(g.cfg.InputDir, g.cfg.OutputDir, g.cfg.InputArchiveDir)
	if _, err := fm.ArchiveInputFile(g.inputPath); err != nil {
		// Archival problems do not fail the run; the PDF is already written.
		g.logger.Warn("Failed to archive input file: %v", err)
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)
	return result
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// resolveTitle returns the report title: the HTML template's title when one
// is available, the configured fallback otherwise.
func (g *Generator) resolveTitle() string {
	templatePath := g.opts.TemplateFile
	if templatePath == "" {
		templatePath = g.cfg.TemplateFile
	}

	if utils.FileExists(templatePath) {
		title, err := template.ExtractTitle(templatePath)
		if err != nil {
			g.logger.Warn("Failed to read template %s: %v", templatePath, err)
		} else if title != "" {
			return title
		}
	} else {
		g.logger.Debug("Template not found, using built-in title")
	}

	return g.cfg.Report.Title
}

// layoutConfig assembles the engine configuration from the report settings.
func (g *Generator) layoutConfig(title string) layout.Config {
	r := g.cfg.Report
	cfg := layout.DefaultConfig()
	cfg.IndexColumnWidth = r.IndexColumnWidth
	cfg.HeaderRowHeight = r.HeaderRowHeight
	cfg.DataRowHeight = r.DataRowHeight
	cfg.MaxHeaderChars = r.MaxHeaderChars
	cfg.MaxCellChars = r.MaxCellChars
	cfg.TotalContentWidth = r.TotalContentWidth
	cfg.TopMargin = r.TopMargin
	cfg.BottomMargin = r.BottomMargin
	cfg.Title = title
	cfg.GeneratedAt = time.Now()
	return cfg
}
