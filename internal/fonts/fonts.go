// =============================================================================
// PDF Report Generator - Font Discovery
// =============================================================================
//
// Input data is frequently non-Latin (Cyrillic product catalogs in
// particular), and the PDF core fonts only cover cp1252. This module probes
// the platform font directories for a TTF face with wider glyph coverage and
// falls back to the built-in Helvetica when nothing is found.
//
// The probe order mirrors what each platform is likely to have:
//   1. Arial        (Windows)
//   2. DejaVu Sans  (Linux)
//   3. Calibri      (Windows)
//
// The resulting Face also implements the layout engine's text-shaping
// capability: rune-boundary truncation, so multi-byte glyphs are never cut
// in half.
//
// =============================================================================

package fonts

import (
	"os"
	"path/filepath"
	"runtime"
)

// =============================================================================
// FACE
// =============================================================================

// Face describes the font the PDF writer should register and use.
type Face struct {
	// Family is the font family name used for registration. For the core
	// fallback this is "Helvetica".
	Family string

	// RegularPath is the path to the regular-weight TTF file. Empty for
	// the core fallback.
	RegularPath string

	// BoldPath is the path to the bold TTF file. May be empty even when
	// RegularPath is set; bold text then renders in the regular weight.
	BoldPath string
}

// Core reports whether this is the built-in core font fallback rather than
// a TTF file discovered on disk.
func (f Face) Core() bool {
	return f.RegularPath == ""
}

// Clip truncates text to at most maxChars characters on rune boundaries.
// Text already within the limit is returned unchanged; truncation is
// silent, with no ellipsis marker, so repeated runs stay byte-identical.
func (f Face) Clip(text string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}

// =============================================================================
// PROBING
// =============================================================================

// candidate is one font family to try, by file name.
type candidate struct {
	family  string
	regular string
	bold    string
}

var candidates = []candidate{
	{"Arial", "arial.ttf", "arialbd.ttf"},
	{"DejaVuSans", "DejaVuSans.ttf", "DejaVuSans-Bold.ttf"},
	{"Calibri", "calibri.ttf", "calibrib.ttf"},
}

// Probe searches for a usable TTF face. extraDir, when non-empty, is
// checked before the platform font directories. The first candidate whose
// regular weight exists wins; the bold weight is optional. When no file is
// found the core Helvetica fallback is returned.
func Probe(extraDir string) Face {
	dirs := fontDirs(extraDir)

	for _, c := range candidates {
		for _, dir := range dirs {
			regular := filepath.Join(dir, c.regular)
			if !fileExists(regular) {
				continue
			}
			face := Face{Family: c.family, RegularPath: regular}
			if bold := filepath.Join(dir, c.bold); fileExists(bold) {
				face.BoldPath = bold
			}
			return face
		}
	}

	return Face{Family: "Helvetica"}
}

// fontDirs returns the directories to probe, most specific first.
func fontDirs(extraDir string) []string {
	var dirs []string
	if extraDir != "" {
		dirs = append(dirs, extraDir)
	}

	switch runtime.GOOS {
	case "windows":
		winDir := os.Getenv("WINDIR")
		if winDir == "" {
			winDir = `C:\Windows`
		}
		dirs = append(dirs, filepath.Join(winDir, "Fonts"))
	case "darwin":
		dirs = append(dirs, "/System/Library/Fonts/Supplemental", "/Library/Fonts")
	default:
		dirs = append(dirs,
			"/usr/share/fonts/truetype/dejavu",
			"/usr/share/fonts/truetype/msttcorefonts",
		)
	}

	return dirs
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
