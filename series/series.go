// Package series turns the body rows of an uploaded score sheet into the two
// projections the report needs: summary pairs for the card grid and chart
// points with axis-ready labels.
package series

// Row is one (label, value) data row from the sheet body. Both cells are kept
// untyped; the reader decides how cells are typed.
type Row struct {
	Label any
	Value any
}

// SummaryPair is a row as shown on a card: the full label and the value as-is.
type SummaryPair struct {
	Label string
	Value any
}

// ChartPoint is a row as shown on the chart axis.
type ChartPoint struct {
	Label Label
	Value any
}

// Result holds both projections of one build. Summary and Points always have
// the same length and the same order as the input rows.
type Result struct {
	Summary []SummaryPair
	Points  []ChartPoint
}

// Len returns the number of rows in the result.
func (r Result) Len() int { return len(r.Summary) }

// FromCells projects raw spreadsheet rows onto Rows: column 0 is the label and
// column 1 the value. Missing cells become nil, extra cells are ignored.
func FromCells(cells [][]any) []Row {
	rows := make([]Row, 0, len(cells))
	for _, c := range cells {
		var r Row
		if len(c) > 0 {
			r.Label = c[0]
		}
		if len(c) > 1 {
			r.Value = c[1]
		}
		rows = append(rows, r)
	}
	return rows
}

// Build derives the summary pairs and chart points for rows. It never fails:
// labels that are not text use their default text representation and values
// are passed through unchanged.
func Build(rows []Row) Result {
	res := Result{
		Summary: make([]SummaryPair, len(rows)),
		Points:  make([]ChartPoint, len(rows)),
	}
	for i, r := range rows {
		label := Text(r.Label)
		res.Summary[i] = SummaryPair{Label: label, Value: r.Value}
		res.Points[i] = ChartPoint{Label: WrapLabel(label), Value: r.Value}
	}
	return res
}
