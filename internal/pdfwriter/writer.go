// =============================================================================
// PDF Report Generator - PDF Writer
// =============================================================================
//
// This module serializes the layout engine's band instructions into a PDF
// document. It is deliberately dumb: every positioning and pagination
// decision was already made by the engine, so the writer only
//   1. registers the probed font face (UTF-8 TTF or core fallback)
//   2. opens one physical page per layout page
//   3. draws each band at its precomputed position with its own style
//
// Automatic page breaking is disabled; the engine owns pagination, and a
// surprise break inserted by the PDF library would desynchronize the two.
// Fonts and colors are set per band from the band's explicit style, never
// carried over from a previous call.
//
// =============================================================================

package pdfwriter

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/ministerahmed59-ui/pdf-generator/internal/fonts"
	"github.com/ministerahmed59-ui/pdf-generator/internal/layout"
)

// Write serializes a layout result into PDF bytes on w.
//
// PARAMETERS:
//   - result: The paginated band instructions from the layout engine.
//   - face: The font face to register and draw with.
//   - w: The destination for the PDF bytes.
func Write(result *layout.Result, face fonts.Face, w io.Writer) error {
	pdf, err := build(result, face)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to serialize PDF: %w", err)
	}
	return nil
}

// WriteFile serializes a layout result into a PDF file.
func WriteFile(result *layout.Result, face fonts.Face, filePath string) error {
	pdf, err := build(result, face)
	if err != nil {
		return err
	}
	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return fmt.Errorf("failed to write PDF file: %w", err)
	}
	return nil
}

// build assembles the in-memory document.
func build(result *layout.Result, face fonts.Face) (*fpdf.Fpdf, error) {
	if result == nil || len(result.Pages) == 0 {
		return nil, fmt.Errorf("nothing to write: empty layout result")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	if !face.Core() {
		pdf.AddUTF8Font(face.Family, "", face.RegularPath)
		if face.BoldPath != "" {
			pdf.AddUTF8Font(face.Family, "B", face.BoldPath)
		}
	}

	pageWidth, _ := pdf.GetPageSize()
	left := (pageWidth - result.ContentWidth) / 2
	if left < 0 {
		left = 0
	}
	pdf.SetMargins(left, 0, left)

	for _, page := range result.Pages {
		pdf.AddPage()
		for _, band := range page.Bands {
			drawBand(pdf, face, left, band)
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("PDF assembly failed: %w", pdf.Error())
	}
	return pdf, nil
}

// drawBand draws one band. The band's style is applied in full before any
// drawing call; nothing depends on state left by a previous band.
func drawBand(pdf *fpdf.Fpdf, face fonts.Face, left float64, band layout.Band) {
	style := band.Style

	fontStyle := style.FontStyle
	if fontStyle == "B" && !face.Core() && face.BoldPath == "" {
		// No bold weight was found on disk; regular is the best we have.
		fontStyle = ""
	}
	pdf.SetFont(face.Family, fontStyle, style.FontSize)
	pdf.SetTextColor(style.TextColor.R, style.TextColor.G, style.TextColor.B)
	if style.Fill {
		pdf.SetFillColor(style.FillColor.R, style.FillColor.G, style.FillColor.B)
	}

	border := ""
	if style.Border {
		border = "1"
	}

	pdf.SetXY(left, band.Y)

	if band.Cells == nil {
		// Furniture or summary band: one cell spanning the content width.
		pdf.CellFormat(0, band.Height, band.Text, "", 0, style.Align, false, 0, "")
		return
	}

	for i, cell := range band.Cells {
		align := style.Align
		if i == 0 {
			// The row-index cell is always centered.
			align = "C"
		}
		pdf.CellFormat(cell.Width, band.Height, cell.Text, border, 0, align, style.Fill, 0, "")
	}
}
