package series

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stringer struct{}

func (stringer) String() string { return "from stringer" }

func TestText(t *testing.T) {
	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "Punctuality", Text("Punctuality"))
	assert.Equal(t, "4.5", Text(4.5))
	assert.Equal(t, "3", Text(3.0))
	assert.Equal(t, "0.1", Text(float32(0.1)))
	assert.Equal(t, "false", Text(false))
	assert.Equal(t, "42", Text(42))
	assert.Equal(t, "from stringer", Text(stringer{}))
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{4.5, 4.5, true},
		{float32(2), 2, true},
		{7, 7, true},
		{int64(-3), -3, true},
		{uint8(9), 9, true},
		{json.Number("1.25"), 1.25, true},
		{" 3.75 ", 3.75, true},
		{"n/a", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{true, 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		got, ok := Number(tt.in)
		assert.Equal(t, tt.ok, ok, "%#v", tt.in)
		assert.Equal(t, tt.want, got, "%#v", tt.in)
	}

	got, ok := Number(math.Inf(1))
	assert.True(t, ok)
	assert.True(t, math.IsInf(got, 1))
}
