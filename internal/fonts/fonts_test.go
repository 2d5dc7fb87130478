package fonts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProbePrefersExtraDir(t *testing.T) {
	dir := t.TempDir()
	// Probe only checks for existence; content does not matter here.
	regular := filepath.Join(dir, "DejaVuSans.ttf")
	bold := filepath.Join(dir, "DejaVuSans-Bold.ttf")
	for _, p := range []string{regular, bold} {
		if err := os.WriteFile(p, []byte("stub"), 0644); err != nil {
			t.Fatalf("write stub font: %v", err)
		}
	}

	face := Probe(dir)
	if face.Core() {
		t.Fatalf("expected a TTF face from the extra dir")
	}
	if face.Family != "DejaVuSans" || face.RegularPath != regular || face.BoldPath != bold {
		t.Fatalf("unexpected face: %+v", face)
	}
}

func TestProbeBoldIsOptional(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "DejaVuSans.ttf"), []byte("stub"), 0644); err != nil {
		t.Fatalf("write stub font: %v", err)
	}

	face := Probe(dir)
	if face.Core() {
		t.Fatalf("expected a TTF face")
	}
	if face.BoldPath != "" {
		t.Fatalf("expected empty bold path, got %q", face.BoldPath)
	}
}

func TestProbeFallsBackToCoreFont(t *testing.T) {
	// An empty extra dir plus (most likely) no system fonts in the test
	// environment; if system fonts do exist the face is still usable, so
	// only the empty-dir path is asserted strictly.
	face := Probe(t.TempDir())
	if face.Family == "" {
		t.Fatalf("probe returned an unusable face: %+v", face)
	}
	if face.Core() && face.Family != "Helvetica" {
		t.Fatalf("core fallback must be Helvetica, got %q", face.Family)
	}
}

func TestFaceClipRuneSafe(t *testing.T) {
	face := Face{Family: "Helvetica"}

	if got := face.Clip("Смартфон Galaxy A54", 8); got != "Смартфон" {
		t.Fatalf("expected %q, got %q", "Смартфон", got)
	}
	if got := face.Clip("short", 15); got != "short" {
		t.Fatalf("short text altered: %q", got)
	}
	if got := face.Clip("anything", 0); got != "" {
		t.Fatalf("non-positive limit must clip to empty, got %q", got)
	}
}
