package xlsx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Excelize reads workbooks with github.com/xuri/excelize/v2.
type Excelize struct{}

// Read implements Reader.
func (Excelize) Read(r io.ReaderAt, size int64) (Table, error) {
	f, err := excelize.OpenReader(io.NewSectionReader(r, 0, size))
	if err != nil {
		return Table{}, fmt.Errorf("xlsx: read workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, ErrNoSheets
	}
	name := sheets[0]

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return Table{}, fmt.Errorf("xlsx: read sheet %s: %w", name, err)
	}

	grid := make([][]any, 0, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, raw := range row {
			if raw == "" {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return Table{}, fmt.Errorf("xlsx: cell reference: %w", err)
			}
			typ, err := f.GetCellType(name, ref)
			if err != nil {
				return Table{}, fmt.Errorf("xlsx: cell type %s: %w", ref, err)
			}
			cells[j] = excelizeValue(typ, raw)
		}
		grid = append(grid, cells)
	}

	return newTable(name, grid), nil
}

func excelizeValue(typ excelize.CellType, raw string) any {
	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeNumber, excelize.CellTypeUnset, excelize.CellTypeFormula:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}
	return raw
}
