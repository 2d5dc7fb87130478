// =============================================================================
// PDF Report Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that the other commands ('generate', 'version') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (pdfgen)
//   ├── generateCmd (pdfgen generate)
//   └── versionCmd (pdfgen version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pdfgen",
	Short: "PDF Report Generator - Turn CSV/XLSX data into paginated PDF reports",

	Long: `PDF Report Generator is a CLI tool that converts spreadsheet-like data
files into printable, paginated PDF reports without a reporting server.

Key Features:
  - CSV and XLSX input with configurable delimiters and headers
  - Automatic table pagination with repeated headers on every page
  - Alternating row shading and a trailing record-count summary
  - Report title taken from an HTML template's <title> element
  - System font probing for non-Latin (e.g. Cyrillic) data

Example Usage:
  pdfgen generate                       # Process all files in the input directory
  pdfgen generate --file products.csv   # Process a single file
  pdfgen generate --config ./my.yaml    # Use a custom configuration file`,

	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand given; show the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the persistent flags shared by all subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
