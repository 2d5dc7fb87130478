// =============================================================================
// PDF Report Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, the main command for turning
// data files into PDF reports.
//
// COMMAND USAGE:
//   pdfgen generate [flags]
//
// FLAGS:
//   --file      : Process a single file instead of the input directory
//   --template  : Path to an HTML template (title source)
//   --output    : Output file path (single-file mode only)
//   --no-open   : Do not open the PDF in the viewer afterwards
//   --dry-run   : Run the pipeline without writing output files
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Discover input files (or take the one from --file)
//   3. For each file (concurrently): read, validate, lay out, write PDF
//   4. Print a summary and, in single-file mode, open the viewer
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/ministerahmed59-ui/pdf-generator/internal/config"
	"github.com/ministerahmed59-ui/pdf-generator/internal/report"
	"github.com/ministerahmed59-ui/pdf-generator/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputFile is a single file to process instead of scanning the input dir.
var inputFile string

// templateFile overrides the configured HTML template path.
var templateFile string

// outputFile pins the output path; only valid together with --file.
var outputFile string

// noOpen suppresses opening the generated PDF in the platform viewer.
var noOpen bool

// dryRun runs the pipeline without writing output files.
var dryRun bool

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate PDF reports from CSV/XLSX data files",
	Long: `The generate command reads delimited data files, lays each one out as a
bordered, paginated table and writes a PDF report per input file.

With --file a single input is processed and the resulting PDF is opened in
the platform viewer (suppress with --no-open). Without --file every CSV and
XLSX file in the configured input directory is processed concurrently.

On successful processing:
  - The generated PDF is placed in the output directory
  - The input file is moved to the input archive (when configured)

On error:
  - The input file remains in place
  - Processing continues for the other files`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the generate command and its local flags.
func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&inputFile, "file", "f", "",
		"Path to a single data file to process")
	generateCmd.Flags().StringVarP(&templateFile, "template", "t", "",
		"Path to an HTML template supplying the report title")
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "",
		"Output PDF path (only with --file)")
	generateCmd.Flags().BoolVar(&noOpen, "no-open", false,
		"Do not open the generated PDF in the viewer")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Run the pipeline without writing output files")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runGenerate orchestrates the generation run.
func runGenerate() error {
	startTime := time.Now()

	fmt.Println("=== PDF Report Generator ===")
	fmt.Println("Loading configuration...")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.InputArchiveDir)
	if err := fm.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to prepare directories: %w", err)
	}

	// =========================================================================
	// DISCOVER INPUT FILES
	// =========================================================================

	var inputFiles []string
	if inputFile != "" {
		if !utils.FileExists(inputFile) {
			return fmt.Errorf("input file not found: %s", inputFile)
		}
		inputFiles = []string{inputFile}
	} else {
		if outputFile != "" {
			return fmt.Errorf("--output requires --file")
		}
		inputFiles, err = fm.DiscoverInputFiles()
		if err != nil {
			return fmt.Errorf("failed to discover input files: %w", err)
		}
	}

	if len(inputFiles) == 0 {
		fmt.Println("No data files found in the input directory.")
		return nil
	}

	fmt.Printf("Found %d file(s) to process\n", len(inputFiles))

	// =========================================================================
	// PROCESS FILES CONCURRENTLY
	// =========================================================================
	// One goroutine per file, bounded by max_concurrency. Each file gets
	// its own Generator; the layout engine inside a run stays sequential.

	logger := &report.StdoutLogger{Verbose: verbose}
	results := make(chan report.Result, len(inputFiles))
	sem := make(chan struct{}, cfg.MaxConcurrency)

	var wg sync.WaitGroup
	for _, file := range inputFiles {
		wg.Add(1)
		go func(filePath string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			gen := report.New(filePath, cfg, report.Options{
				TemplateFile: templateFile,
				OutputPath:   outputFile,
				DryRun:       dryRun,
			}, logger)
			results <- gen.Run()
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// COLLECT RESULTS
	// =========================================================================

	summary := utils.ProcessingSummary{
		StartTime:  startTime,
		TotalFiles: len(inputFiles),
	}
	var lastOutput string

	for result := range results {
		if result.Success {
			summary.SuccessfulFiles++
			summary.TotalRows += result.Stats.RowsProcessed
			summary.TotalPages += result.Stats.PagesEmitted
			lastOutput = result.OutputFile
			fmt.Printf("  + %s -> %s (%d rows, %d pages)\n",
				filepath.Base(result.FilePath), result.OutputFile,
				result.Stats.RowsProcessed, result.Stats.PagesEmitted)
		} else {
			summary.FailedFiles++
			summary.FailedFilesList = append(summary.FailedFilesList, utils.FailedFileInfo{
				InputFile:    result.FilePath,
				ErrorMessage: result.Error.Error(),
			})
			fmt.Printf("  x %s: %v\n", filepath.Base(result.FilePath), result.Error)
		}
	}
	summary.EndTime = time.Now()

	// =========================================================================
	// PRINT SUMMARY
	// =========================================================================

	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:  %d\n", summary.TotalFiles)
	fmt.Printf("Successful:   %d\n", summary.SuccessfulFiles)
	fmt.Printf("Errors:       %d\n", summary.FailedFiles)
	fmt.Printf("Time elapsed: %s\n", summary.EndTime.Sub(summary.StartTime))

	if summary.FailedFiles > 0 && !dryRun {
		if logPath, err := utils.WriteSummaryLog(summary, cfg.OutputDir); err == nil {
			fmt.Printf("\nRun summary written to %s\n", logPath)
		}
	}

	// Open the viewer only for a deliberate single-file run; popping open a
	// window per file in batch mode would be hostile.
	if inputFile != "" && summary.SuccessfulFiles == 1 && !dryRun &&
		cfg.OpenViewer && !noOpen && lastOutput != "" {
		fmt.Println("\nOpening file...")
		if err := utils.OpenInViewer(lastOutput); err != nil {
			fmt.Printf("Could not open file automatically: %v\n", err)
			fmt.Printf("Path: %s\n", lastOutput)
		}
	}

	if summary.FailedFiles > 0 && !cfg.ContinueOnError {
		return fmt.Errorf("%d file(s) failed", summary.FailedFiles)
	}
	return nil
}
