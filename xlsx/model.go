package xlsx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Only the first worksheet of a workbook is read. Row one of that sheet is the
// header; everything below it is the data body.

var (
	// ErrNoSheets is returned for workbooks without any worksheet.
	ErrNoSheets = errors.New("xlsx: workbook has no worksheets")
	// ErrUnknownReader is returned by NewReader for an unsupported backend name.
	ErrUnknownReader = errors.New("xlsx: unknown reader")
	// ErrSharedString is returned when a shared string cell points outside the
	// workbook's string table.
	ErrSharedString = errors.New("xlsx: unresolved shared string")
)

// Table is the first worksheet of a workbook split into header and body.
// Cells are float64 for numbers, bool for booleans, string for anything else
// and nil for blanks.
type Table struct {
	Sheet  string
	Header []any
	Rows   [][]any
}

func (t Table) String() string {
	return fmt.Sprintf("Sheet: %s, Header: %v, Rows: %d", t.Sheet, t.Header, len(t.Rows))
}

// Reader reads the first worksheet of an XLSX workbook.
type Reader interface {
	Read(r io.ReaderAt, size int64) (Table, error)
}

// Reader backend names accepted by NewReader.
const (
	BackendUnioffice = "unioffice"
	BackendExcelize  = "excelize"
)

// NewReader returns the reader backend registered under name. The empty name
// selects excelize.
func NewReader(name string) (Reader, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendExcelize:
		return Excelize{}, nil
	case BackendUnioffice:
		return Unioffice{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReader, name)
	}
}

// Open reads the workbook at path with rd.
func Open(path string, rd Reader) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return Table{}, err
	}
	return rd.Read(f, info.Size())
}

// newTable splits grid into header and body. grid[i] is sheet row i+1, so
// the header is always row one even when it is blank. Blank body rows are
// dropped and trailing blank cells trimmed.
func newTable(sheet string, grid [][]any) Table {
	t := Table{Sheet: sheet, Rows: [][]any{}}
	if len(grid) == 0 {
		return t
	}
	if header := trimRow(grid[0]); len(header) > 0 {
		t.Header = header
	}
	for _, row := range grid[1:] {
		row = trimRow(row)
		if len(row) == 0 {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func trimRow(row []any) []any {
	end := len(row)
	for end > 0 && isBlank(row[end-1]) {
		end--
	}
	return row[:end]
}

func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	}
	return false
}

// place stores v at column idx of row, growing it with blanks as needed.
func place(row []any, idx int, v any) []any {
	for len(row) <= idx {
		row = append(row, nil)
	}
	row[idx] = v
	return row
}

// placeRow stores row at index idx of grid, growing it with empty rows.
func placeRow(grid [][]any, idx int, row []any) [][]any {
	for len(grid) <= idx {
		grid = append(grid, nil)
	}
	grid[idx] = row
	return grid
}
