// =============================================================================
// PDF Report Generator - Configuration Module
// =============================================================================
//
// This module loads and manages the application configuration. A single YAML
// file covers:
//   1. Directory settings (input, output, archive)
//   2. Input parsing settings (delimiter, header rows)
//   3. Report layout settings (page geometry, column widths, truncation)
//   4. Output settings (file naming, viewer behavior)
//
// All settings have working defaults; an absent or partial config file still
// yields a usable configuration.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is the directory scanned for input data files.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where generated PDF files are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir is the directory where input files are moved after
	// successful processing. Leave empty to disable archival.
	InputArchiveDir string `yaml:"input_archive_dir"`

	// FontsDir is an extra directory probed for TTF fonts before the
	// platform font directories. Leave empty to use only system fonts.
	FontsDir string `yaml:"fonts_dir"`

	// =========================================================================
	// TEMPLATE SETTINGS
	// =========================================================================

	// TemplateFile is the HTML template consulted for the report title.
	// Only the <title> element is used; all other markup is ignored.
	// Default: "./template.html"
	TemplateFile string `yaml:"template_file"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputNameFormat defines the output file name.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {date}      - Current date (YYYYMMDD)
	//   {time}      - Current time (HHMMSS)
	//   {original}  - Input file name without extension
	// Default: "output_{timestamp}.pdf"
	OutputNameFormat string `yaml:"output_name_format"`

	// OpenViewer opens the generated PDF in the platform viewer after a
	// successful single-file run. Default: true.
	OpenViewer bool `yaml:"open_viewer"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// MaxConcurrency is the maximum number of files processed at once.
	// Set to 1 for sequential processing. Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError keeps processing the remaining files when one fails.
	// Default: true
	ContinueOnError bool `yaml:"continue_on_error"`

	// =========================================================================
	// SUB-CONFIGURATIONS
	// =========================================================================

	// CSVSettings contains settings for parsing delimited input files.
	CSVSettings CSVSettings `yaml:"csv_settings"`

	// Report contains the table layout and page geometry settings.
	Report ReportSettings `yaml:"report"`
}

// =============================================================================
// CSV SETTINGS STRUCTURE
// =============================================================================

// CSVSettings contains settings for parsing delimited data files.
type CSVSettings struct {
	// Delimiter is the field separator.
	// Common values: "," (comma), "|" (pipe), "\t" (tab), ";" (semicolon)
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// HeaderRows is the number of header rows in the file. Multi-row
	// headers are merged column-wise into single column names.
	// Default: 1
	HeaderRows int `yaml:"header_rows"`

	// DataStartRow is the 1-based row number where data begins.
	// Default: HeaderRows + 1
	DataStartRow int `yaml:"data_start_row"`

	// Sheet is the worksheet name for XLSX inputs. Empty selects the
	// first sheet in the workbook.
	Sheet string `yaml:"sheet"`
}

// =============================================================================
// REPORT SETTINGS STRUCTURE
// =============================================================================

// ReportSettings contains the table layout and page geometry settings.
// All lengths are in millimeters (A4 output). The defaults reproduce the
// established report format; override them only when layout compatibility
// with previously generated files does not matter.
type ReportSettings struct {
	// Title is the fallback page title, used when the HTML template does
	// not provide one. Default: "Product Catalog"
	Title string `yaml:"title"`

	// IndexColumnWidth is the width of the leading row-number column.
	// Default: 12
	IndexColumnWidth float64 `yaml:"index_column_width"`

	// HeaderRowHeight is the height of the table header band. Default: 10
	HeaderRowHeight float64 `yaml:"header_row_height"`

	// DataRowHeight is the height of one data row. Default: 8
	DataRowHeight float64 `yaml:"data_row_height"`

	// MaxHeaderChars truncates column names to this many characters.
	// Default: 15
	MaxHeaderChars int `yaml:"max_header_chars"`

	// MaxCellChars truncates cell values to this many characters.
	// Default: 20
	MaxCellChars int `yaml:"max_cell_chars"`

	// TotalContentWidth is the usable table width. Default: 190
	TotalContentWidth float64 `yaml:"total_content_width"`

	// TopMargin is where table content starts on each page. Default: 25
	TopMargin float64 `yaml:"top_margin"`

	// BottomMargin is the reserved space at the page bottom. Default: 15
	BottomMargin float64 `yaml:"bottom_margin"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the configuration from a YAML file and applies defaults.
// A missing file is not an error: the defaults are returned so the tool
// works out of the box.
func Load(configPath string) (*MainConfig, error) {
	cfg := &MainConfig{OpenViewer: true, ContinueOnError: true}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *MainConfig) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./input"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.TemplateFile == "" {
		cfg.TemplateFile = "./template.html"
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = "output_{timestamp}.pdf"
	}
	if cfg.MaxConcurrency == 0 {
		cfg.MaxConcurrency = 4
	}

	// CSV settings defaults.
	if cfg.CSVSettings.Delimiter == "" {
		cfg.CSVSettings.Delimiter = ","
	}
	if cfg.CSVSettings.HeaderRows == 0 {
		cfg.CSVSettings.HeaderRows = 1
	}
	if cfg.CSVSettings.DataStartRow == 0 {
		cfg.CSVSettings.DataStartRow = cfg.CSVSettings.HeaderRows + 1
	}

	// Report settings defaults.
	r := &cfg.Report
	if r.Title == "" {
		r.Title = "Product Catalog"
	}
	if r.IndexColumnWidth == 0 {
		r.IndexColumnWidth = 12
	}
	if r.HeaderRowHeight == 0 {
		r.HeaderRowHeight = 10
	}
	if r.DataRowHeight == 0 {
		r.DataRowHeight = 8
	}
	if r.MaxHeaderChars == 0 {
		r.MaxHeaderChars = 15
	}
	if r.MaxCellChars == 0 {
		r.MaxCellChars = 20
	}
	if r.TotalContentWidth == 0 {
		r.TotalContentWidth = 190
	}
	if r.TopMargin == 0 {
		r.TopMargin = 25
	}
	if r.BottomMargin == 0 {
		r.BottomMargin = 15
	}
}

// validate rejects configurations that cannot produce output.
func validate(cfg *MainConfig) error {
	if cfg.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1, got %d", cfg.MaxConcurrency)
	}
	if cfg.Report.TotalContentWidth <= 0 {
		return fmt.Errorf("total_content_width must be positive, got %g", cfg.Report.TotalContentWidth)
	}
	if cfg.Report.IndexColumnWidth <= 0 || cfg.Report.IndexColumnWidth >= cfg.Report.TotalContentWidth {
		return fmt.Errorf("index_column_width %g must be between 0 and total_content_width", cfg.Report.IndexColumnWidth)
	}
	if cfg.CSVSettings.HeaderRows < 1 {
		return fmt.Errorf("header_rows must be at least 1, got %d", cfg.CSVSettings.HeaderRows)
	}
	return nil
}
