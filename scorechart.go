// Package scorechart converts feedback score sheets into reports. The
// functions here cover the common case of one workbook rendered with the
// default institution header; see the report, export and chart packages for
// finer control.
package scorechart

import (
	"bytes"
	"io"
	"strings"

	"github.com/aerissecure/scorechart/chart"
	"github.com/aerissecure/scorechart/export"
	"github.com/aerissecure/scorechart/report"
	"github.com/aerissecure/scorechart/series"
	"github.com/aerissecure/scorechart/xlsx"
)

// NewPage reads the first worksheet of the workbook and builds the report
// page for it using the default header and chart options.
func NewPage(r io.ReaderAt, size int64, meta report.Metadata) (report.Page, error) {
	table, err := xlsx.Excelize{}.Read(r, size)
	if err != nil {
		return report.Page{}, err
	}
	return report.Page{
		Institution: report.DefaultInstitution(),
		Metadata:    meta,
		Result:      series.Build(series.FromCells(table.Rows)),
		Chart:       chart.DefaultOptions(),
	}, nil
}

// XlsxToHTML renders the workbook as an HTML report.
func XlsxToHTML(r io.ReaderAt, size int64, meta report.Metadata) (string, error) {
	page, err := NewPage(r, size, meta)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := report.RenderHTML(&sb, page); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// XlsxToPDF renders the workbook as a PDF report.
func XlsxToPDF(r io.ReaderAt, size int64, meta report.Metadata) ([]byte, error) {
	page, err := NewPage(r, size, meta)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := export.PDF(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
