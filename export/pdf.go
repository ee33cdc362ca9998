// Package export writes a rendered report as a PDF snapshot.
package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/aerissecure/scorechart/chart"
	"github.com/aerissecure/scorechart/report"
	"github.com/aerissecure/scorechart/series"
)

// DefaultName is the file name used when the caller does not pick one.
const DefaultName = "downloaded.pdf"

const (
	columns    = 3
	gutter     = 12.0
	cardPad    = 8.0
	lineHeight = 14.0
	fontFamily = "Helvetica"
)

// PDF writes p to w as a single A4 document: header, title, metadata, the
// chart as a PNG image and the summary cards in a three column grid.
func PDF(w io.Writer, p report.Page) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(36, 36, 36)
	pdf.SetAutoPageBreak(true, 36)
	pdf.SetTitle(p.Heading(), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	writeHeader(pdf, tr, contentW, p.Institution)

	pdf.Ln(18)
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(contentW, 20, tr(p.Heading()), "", 1, "C", false, 0, "")

	pdf.Ln(12)
	pdf.SetFont(fontFamily, "B", 11)
	half := contentW / 2
	pdf.CellFormat(half, lineHeight, tr("Name Of Faculty: "+p.Metadata.Faculty), "", 0, "L", false, 0, "")
	pdf.CellFormat(half, lineHeight, tr("Academic Year: "+p.Metadata.AcademicYear), "", 1, "R", false, 0, "")
	pdf.CellFormat(half, lineHeight, tr("Department: "+p.Metadata.Department), "", 1, "L", false, 0, "")

	if len(p.Result.Points) > 0 {
		var img bytes.Buffer
		if err := chart.RenderImage(&img, p.Result.Points, p.Chart, chart.FormatPNG); err != nil {
			return err
		}
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("chart", opts, &img)
		pdf.Ln(12)
		pdf.ImageOptions("chart", left, pdf.GetY(), contentW, 0, true, opts, 0, "")
	}

	pdf.Ln(12)
	writeCards(pdf, tr, left, contentW, p.Result.Summary)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("export: build pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}

func writeHeader(pdf *fpdf.Fpdf, tr func(string) string, width float64, inst report.Institution) {
	pdf.SetFont(fontFamily, "B", 11)
	for _, line := range inst.Society {
		pdf.CellFormat(width, lineHeight, tr(line), "", 1, "C", false, 0, "")
	}
	if inst.Name != "" {
		pdf.SetFont(fontFamily, "B", 18)
		pdf.CellFormat(width, 24, tr(inst.Name), "", 1, "C", false, 0, "")
	}
	pdf.SetFont(fontFamily, "B", 11)
	for _, line := range inst.Address {
		pdf.CellFormat(width, lineHeight, tr(line), "", 1, "C", false, 0, "")
	}
}

// writeCards lays out one bordered card per pair, row by row. Cards in a row
// share the height of the tallest one.
func writeCards(pdf *fpdf.Fpdf, tr func(string) string, left, width float64, pairs []series.SummaryPair) {
	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	cardW := (width - gutter*(columns-1)) / columns

	pdf.SetFont(fontFamily, "B", 10)
	for start := 0; start < len(pairs); start += columns {
		end := min(start+columns, len(pairs))

		cells := make([][]string, 0, end-start)
		tallest := 0
		for _, pair := range pairs[start:end] {
			lines := cardLines(pdf, tr, cardW-2*cardPad, pair)
			tallest = max(tallest, len(lines))
			cells = append(cells, lines)
		}
		cardH := float64(tallest)*lineHeight + 2*cardPad

		y := pdf.GetY()
		if y+cardH > pageH-bottom {
			pdf.AddPage()
			y = pdf.GetY()
		}
		for i, lines := range cells {
			x := left + float64(i)*(cardW+gutter)
			pdf.SetDrawColor(222, 226, 230)
			pdf.Rect(x, y, cardW, cardH, "D")
			for j, line := range lines {
				if j == len(lines)-1 {
					pdf.SetTextColor(0, 128, 0)
				}
				pdf.SetXY(x+cardPad, y+cardPad+float64(j)*lineHeight)
				pdf.CellFormat(cardW-2*cardPad, lineHeight, line, "", 0, "L", false, 0, "")
				pdf.SetTextColor(0, 0, 0)
			}
		}
		pdf.SetXY(left, y+cardH+gutter)
	}
}

// cardLines splits the label to fit the card, followed by the value line.
func cardLines(pdf *fpdf.Fpdf, tr func(string) string, width float64, pair series.SummaryPair) []string {
	var lines []string
	if pair.Label != "" {
		lines = pdf.SplitText(tr(pair.Label), width)
	}
	return append(lines, tr(series.Text(pair.Value)))
}
