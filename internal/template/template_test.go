package template

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.html")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return path
}

func TestExtractTitle(t *testing.T) {
	path := writeTemplate(t, `<!DOCTYPE html>
<html>
<head><title>  Product Catalog 2026  </title></head>
<body><h1>Ignored heading</h1><table><tr><td>ignored</td></tr></table></body>
</html>`)

	title, err := ExtractTitle(path)
	if err != nil {
		t.Fatalf("ExtractTitle: %v", err)
	}
	if title != "Product Catalog 2026" {
		t.Fatalf("got %q", title)
	}
}

func TestExtractTitleFallsBackToH1(t *testing.T) {
	path := writeTemplate(t, `<html><body><h1>Inventory <em>Report</em></h1></body></html>`)

	title, err := ExtractTitle(path)
	if err != nil {
		t.Fatalf("ExtractTitle: %v", err)
	}
	if title != "Inventory Report" {
		t.Fatalf("got %q", title)
	}
}

func TestExtractTitleNoTitle(t *testing.T) {
	path := writeTemplate(t, `<html><body><p>nothing here</p></body></html>`)

	title, err := ExtractTitle(path)
	if err != nil {
		t.Fatalf("ExtractTitle: %v", err)
	}
	if title != "" {
		t.Fatalf("expected empty title, got %q", title)
	}
}

func TestExtractTitleMissingFile(t *testing.T) {
	if _, err := ExtractTitle(filepath.Join(t.TempDir(), "absent.html")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
