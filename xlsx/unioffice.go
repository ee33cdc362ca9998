package xlsx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// Unioffice reads workbooks with github.com/unidoc/unioffice.
type Unioffice struct{}

// Read implements Reader.
func (Unioffice) Read(r io.ReaderAt, size int64) (Table, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return Table{}, fmt.Errorf("xlsx: read workbook: %w", err)
	}

	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return Table{}, ErrNoSheets
	}
	sheet := sheets[0]

	strs := &sharedStrings{wb: wb, r: r, size: size}
	var grid [][]any
	for _, row := range sheet.Rows() {
		var cells []any
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			v, err := uniofficeValue(cell, strs)
			if err != nil {
				return Table{}, err
			}
			colIdx := int(reference.ColumnToIndex(colName))
			cells = place(cells, colIdx, v)
		}
		idx := int(row.RowNumber()) - 1
		if idx < 0 {
			idx = len(grid)
		}
		grid = placeRow(grid, idx, cells)
	}

	return newTable(sheet.Name(), grid), nil
}

func uniofficeValue(cell spreadsheet.Cell, strs *sharedStrings) (any, error) {
	x := cell.X()
	if x.TAttr == sml.ST_CellTypeS {
		if x.V == nil {
			return nil, nil
		}
		s, err := strs.get(cell, *x.V)
		if err != nil {
			return nil, err
		}
		if s == "" {
			return nil, nil
		}
		return s, nil
	}

	switch {
	case cell.IsEmpty():
		return nil, nil
	case cell.IsBool():
		if b, err := cell.GetValueAsBool(); err == nil {
			return b, nil
		}
	case cell.IsNumber():
		if f, err := cell.GetValueAsNumber(); err == nil {
			return f, nil
		}
	}
	s := cell.GetString()
	if s == "" {
		return nil, nil
	}
	return s, nil
}

// sharedStrings resolves t="s" cells. unioffice drops the shared string
// table when the workbook relationship uses an absolute target
// (/xl/sharedStrings.xml, as excelize writes it); the table is then read
// from the package directly.
type sharedStrings struct {
	wb   *spreadsheet.Workbook
	r    io.ReaderAt
	size int64

	loaded bool
	table  *sml.Sst
	err    error
}

func (s *sharedStrings) get(cell spreadsheet.Cell, v string) (string, error) {
	id, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || id < 0 {
		return "", fmt.Errorf("%w: %s: index %q", ErrSharedString, cell.Reference(), v)
	}
	if sst := s.wb.SharedStrings.X(); sst != nil && id < len(sst.Si) {
		return rstText(sst.Si[id]), nil
	}

	if !s.loaded {
		s.table, s.err = loadSharedStrings(s.r, s.size)
		s.loaded = true
	}
	if s.err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrSharedString, cell.Reference(), s.err)
	}
	if s.table == nil || id >= len(s.table.Si) {
		return "", fmt.Errorf("%w: %s: index %d not in table", ErrSharedString, cell.Reference(), id)
	}
	return rstText(s.table.Si[id]), nil
}

func rstText(si *sml.CT_Rst) string {
	if si == nil {
		return ""
	}
	if si.T != nil {
		return *si.T
	}
	var b strings.Builder
	for _, run := range si.R {
		b.WriteString(run.T)
	}
	return b.String()
}

// loadSharedStrings reads the shared string part of the package. A package
// without one yields a nil table.
func loadSharedStrings(r io.ReaderAt, size int64) (*sml.Sst, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	var part *zip.File
	for _, f := range zr.File {
		name := strings.TrimPrefix(f.Name, "/")
		if strings.EqualFold(path.Base(name), "sharedStrings.xml") && strings.HasPrefix(name, "xl/") {
			part = f
			break
		}
	}
	if part == nil {
		return nil, nil
	}
	rc, err := part.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	sst := sml.NewSst()
	if err := xml.NewDecoder(rc).Decode(sst); err != nil {
		return nil, fmt.Errorf("decode %s: %w", part.Name, err)
	}
	return sst, nil
}
