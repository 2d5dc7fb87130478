package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ministerahmed59-ui/pdf-generator/internal/config"
	"github.com/ministerahmed59-ui/pdf-generator/internal/layout"
)

// nopLogger keeps pipeline output out of the test log.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}

// testSetup writes a small CSV input and returns it together with a config
// whose directories all live under the test's temp dir.
func testSetup(t *testing.T) (string, *config.MainConfig) {
	t.Helper()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "products.csv")
	csv := "SKU,Product,Price\nA-100,Widget,9.99\nA-101,Gadget,14.50\n"
	if err := os.WriteFile(inputPath, []byte(csv), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	cfg, err := config.Load(filepath.Join(dir, "missing-config.yaml"))
	if err != nil {
		t.Fatalf("failed to load default config: %v", err)
	}
	cfg.InputDir = dir
	cfg.OutputDir = dir
	cfg.InputArchiveDir = "" // keep the input in place
	cfg.TemplateFile = filepath.Join(dir, "no-template.html")

	return inputPath, cfg
}

func TestRunGeneratesPDF(t *testing.T) {
	inputPath, cfg := testSetup(t)

	result := New(inputPath, cfg, Options{}, nopLogger{}).Run()
	if !result.Success {
		t.Fatalf("run failed: %v", result.Error)
	}

	if result.Stats.RowsProcessed != 2 {
		t.Errorf("expected 2 rows processed, got %d", result.Stats.RowsProcessed)
	}
	if result.Stats.PagesEmitted != 1 {
		t.Errorf("expected 1 page, got %d", result.Stats.PagesEmitted)
	}

	info, err := os.Stat(result.OutputFile)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("output file is empty")
	}
	if filepath.Ext(result.OutputFile) != ".pdf" {
		t.Errorf("unexpected output extension: %s", result.OutputFile)
	}
}

func TestRunDryRunWritesNothing(t *testing.T) {
	inputPath, cfg := testSetup(t)

	result := New(inputPath, cfg, Options{DryRun: true}, nopLogger{}).Run()
	if !result.Success {
		t.Fatalf("dry run failed: %v", result.Error)
	}
	if result.OutputFile == "" {
		t.Fatal("dry run should still report the would-be output path")
	}
	if _, err := os.Stat(result.OutputFile); !os.IsNotExist(err) {
		t.Fatalf("dry run must not create the output file, stat: %v", err)
	}
}

func TestRunHonorsOutputPathOverride(t *testing.T) {
	inputPath, cfg := testSetup(t)
	outPath := filepath.Join(t.TempDir(), "pinned.pdf")

	result := New(inputPath, cfg, Options{OutputPath: outPath}, nopLogger{}).Run()
	if !result.Success {
		t.Fatalf("run failed: %v", result.Error)
	}
	if result.OutputFile != outPath {
		t.Fatalf("expected output at %s, got %s", outPath, result.OutputFile)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("pinned output missing: %v", err)
	}
}

func TestRunArchivesInput(t *testing.T) {
	inputPath, cfg := testSetup(t)
	cfg.InputArchiveDir = filepath.Join(t.TempDir(), "archive")
	if err := os.MkdirAll(cfg.InputArchiveDir, 0755); err != nil {
		t.Fatalf("failed to create archive dir: %v", err)
	}

	result := New(inputPath, cfg, Options{}, nopLogger{}).Run()
	if !result.Success {
		t.Fatalf("run failed: %v", result.Error)
	}

	if _, err := os.Stat(inputPath); !os.IsNotExist(err) {
		t.Fatalf("input should have been moved away, stat: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.InputArchiveDir, filepath.Base(inputPath))); err != nil {
		t.Fatalf("archived input missing: %v", err)
	}
}

func TestRunUsesTemplateTitle(t *testing.T) {
	inputPath, cfg := testSetup(t)
	cfg.TemplateFile = filepath.Join(t.TempDir(), "template.html")
	html := "<html><head><title>Quarterly Inventory</title></head><body></body></html>"
	if err := os.WriteFile(cfg.TemplateFile, []byte(html), 0644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}

	g := New(inputPath, cfg, Options{}, nopLogger{})
	if title := g.resolveTitle(); title != "Quarterly Inventory" {
		t.Fatalf("expected template title, got %q", title)
	}
}

func TestRunFailsOnMissingInput(t *testing.T) {
	_, cfg := testSetup(t)

	result := New(filepath.Join(t.TempDir(), "absent.csv"), cfg, Options{}, nopLogger{}).Run()
	if result.Success {
		t.Fatal("expected failure for a missing input file")
	}
	if result.Error == nil || !strings.Contains(result.Error.Error(), "failed to read input") {
		t.Fatalf("unexpected error: %v", result.Error)
	}
}

func TestRunFailsOnHeaderOnlyInput(t *testing.T) {
	inputPath, cfg := testSetup(t)
	if err := os.WriteFile(inputPath, []byte("SKU,Product,Price\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite input: %v", err)
	}

	result := New(inputPath, cfg, Options{}, nopLogger{}).Run()
	if result.Success {
		t.Fatal("expected failure for a header-only file")
	}
	if !errors.Is(result.Error, layout.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", result.Error)
	}
}
