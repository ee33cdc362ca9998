package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterPlain(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, false)

	p.Success("wrote %s", "a.pdf")
	p.Warning("skipped %s", "png")
	p.Error("failed")

	assert.Equal(t, "[OK] wrote a.pdf\n", out.String())
	assert.Equal(t, "[WARN] skipped png\n[ERROR] failed\n", errOut.String())
	assert.Equal(t, &out, p.Out())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, Column{Title: "Label"}, Column{Title: "Value", Right: true})
	tbl.AddRow("Punctuality", "4.5")
	tbl.AddRow("Quality of teaching materials provided", "13.25")
	tbl.AddRow("Comments")
	require.NoError(t, tbl.Render())

	out := buf.String()
	assert.Contains(t, strings.ToLower(out), "label")
	assert.Contains(t, out, "Quality of teaching materials provided")

	// Right aligned: the shorter value is padded on the left so both end in
	// the same column.
	var short, long string
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "Punctuality"):
			short = strings.TrimRight(line, " ")
		case strings.Contains(line, "materials provided"):
			long = strings.TrimRight(line, " ")
		}
	}
	require.NotEmpty(t, short)
	require.NotEmpty(t, long)
	assert.True(t, strings.HasSuffix(short, " 4.5"), short)
	assert.True(t, strings.HasSuffix(long, "13.25"), long)
	assert.Equal(t, len(long), len(short))
}
