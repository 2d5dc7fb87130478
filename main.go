// =============================================================================
// PDF Report Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the PDF Report Generator CLI. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   pdfgen generate        - Convert data files to PDF reports
//   pdfgen version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ministerahmed59-ui/pdf-generator/cmd"
)

// main is the entry point of the application. It calls the Execute function
// from the cmd package, which initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
