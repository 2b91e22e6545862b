package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Cell text colors, from the original dashboard palette.
var (
	colorPositive = RGB{0, 97, 0}
	colorNegative = RGB{156, 0, 6}
	colorGray     = RGB{128, 128, 128}
	colorBody     = RGB{0, 0, 0}
)

func toneColor(t Tone) RGB {
	switch t {
	case TonePositive:
		return colorPositive
	case ToneNegative:
		return colorNegative
	default:
		return colorGray
	}
}

// Render serializes the document to a PDF file: A4 portrait, 15mm margins,
// optional benchmark chart under the title block, bordered striped tables
// with color-coded cells. chartPNG may be nil.
func Render(doc *Document, chartPNG []byte, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	usable := pageW - 30

	// Title block
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(colorHeadline.R, colorHeadline.G, colorHeadline.B)
	pdf.CellFormat(0, 9, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(colorGray.R, colorGray.G, colorGray.B)
	pdf.CellFormat(0, 5, tr(doc.DateLine+"  |  "+doc.TimeLine), "", 1, "C", false, 0, "")
	pdf.SetDrawColor(colorHeadline.R, colorHeadline.G, colorHeadline.B)
	pdf.SetLineWidth(0.5)
	pdf.Line(15, pdf.GetY()+1, pageW-15, pdf.GetY()+1)
	pdf.Ln(4)

	if len(chartPNG) > 0 {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("benchmark", opts, bytes.NewReader(chartPNG))
		pdf.ImageOptions("benchmark", 15, pdf.GetY(), usable, 0, true, opts, 0, "")
		pdf.Ln(2)
	}

	for _, table := range doc.Tables {
		renderTable(pdf, tr, &table)
	}

	// Footer
	pdf.Ln(2)
	pdf.SetDrawColor(colorGrid.R, colorGrid.G, colorGrid.B)
	pdf.SetLineWidth(0.2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(1.5)
	pdf.SetFont("Helvetica", "", 7.5)
	pdf.SetTextColor(colorGray.R, colorGray.G, colorGray.B)
	pdf.MultiCell(usable, 3.5, tr(doc.Footer), "", "L", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func renderTable(pdf *fpdf.Fpdf, tr func(string) string, t *Table) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(colorHeadline.R, colorHeadline.G, colorHeadline.B)
	pdf.CellFormat(0, 6, tr(t.Title), "", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetDrawColor(colorGrid.R, colorGrid.G, colorGrid.B)
	pdf.SetLineWidth(0.2)

	// Header band
	pdf.SetFont("Helvetica", "B", 7.5)
	pdf.SetFillColor(t.HeaderFill.R, t.HeaderFill.G, t.HeaderFill.B)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range t.Headers {
		pdf.CellFormat(t.Widths[i], 5.5, tr(h), "1", cellLn(i, len(t.Headers)), cellAlign(i), true, 0, "")
	}

	// Body rows, striped
	pdf.SetFont("Helvetica", "", 7.5)
	for rowIdx, row := range t.Rows {
		striped := rowIdx%2 == 1
		if striped {
			pdf.SetFillColor(t.StripeFill.R, t.StripeFill.G, t.StripeFill.B)
		}
		for i, c := range row {
			color := colorBody
			if c.Tone != ToneNeutral || c.Text == Placeholder {
				color = toneColor(c.Tone)
			}
			pdf.SetTextColor(color.R, color.G, color.B)
			pdf.CellFormat(t.Widths[i], 5, tr(c.Text), "1", cellLn(i, len(row)), cellAlign(i), striped, 0, "")
		}
	}

	if t.Note != "" {
		pdf.Ln(1)
		pdf.SetFont("Helvetica", "", 7.5)
		pdf.SetTextColor(colorGray.R, colorGray.G, colorGray.B)
		pdf.MultiCell(0, 3.5, tr(t.Note), "", "L", false)
	}
	pdf.Ln(1)
}

// First two columns read left-aligned, numeric columns centered.
func cellAlign(col int) string {
	if col < 2 {
		return "L"
	}
	return "C"
}

func cellLn(col, total int) int {
	if col == total-1 {
		return 1
	}
	return 0
}
