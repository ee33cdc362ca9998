package scorechart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/aerissecure/scorechart/report"
)

func workbook(t *testing.T) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	cells := map[string]any{
		"A1": "Question", "B1": "Average",
		"A2": "Punctuality", "B2": 4.5,
		"A3": "Quality of teaching materials provided", "B3": 3.9,
	}
	for cell, v := range cells {
		if err := f.SetCellValue("Sheet1", cell, v); err != nil {
			t.Fatalf("SetCellValue %s: %v", cell, err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to write workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

var meta = report.Metadata{Faculty: "Dr. A. Rao", Department: "Physics", AcademicYear: "2023-2024"}

func TestXlsxToHTML(t *testing.T) {
	r := workbook(t)
	html, err := XlsxToHTML(r, r.Size(), meta)
	if err != nil {
		t.Fatalf("XlsxToHTML failed: %v", err)
	}
	for _, want := range []string{"Feedback Form", "Punctuality", "Quality of teaching materials provided", "Department: Physics"} {
		if !strings.Contains(html, want) {
			t.Errorf("XlsxToHTML output is missing %q", want)
		}
	}
}

func TestXlsxToPDF(t *testing.T) {
	r := workbook(t)
	pdf, err := XlsxToPDF(r, r.Size(), meta)
	if err != nil {
		t.Fatalf("XlsxToPDF failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Error("XlsxToPDF did not return a PDF")
	}
}

func TestNewPage(t *testing.T) {
	r := workbook(t)
	page, err := NewPage(r, r.Size(), meta)
	if err != nil {
		t.Fatalf("NewPage failed: %v", err)
	}
	if got := page.Result.Len(); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}
	if got := page.Result.Points[1].Label.Lines; len(got) != 2 {
		t.Errorf("expected wrapped label, got %q", got)
	}
}

func TestNewPageInvalid(t *testing.T) {
	r := bytes.NewReader([]byte("not a workbook"))
	if _, err := NewPage(r, r.Size(), meta); err == nil {
		t.Error("expected error for invalid workbook")
	}
}
