package series

import (
	"strings"
	"unicode/utf8"
)

// Axis label limits. Changing either alters the rendered chart layout.
const (
	MaxLineChars = 20
	MaxLineWords = 4
)

// Label is a chart axis label. When Wrapped is false the raw label was short
// enough and Lines holds it unchanged as the only element.
type Label struct {
	Lines   []string
	Wrapped bool
}

// Join flattens the label lines with sep.
func (l Label) Join(sep string) string {
	return strings.Join(l.Lines, sep)
}

// String returns the label as a single line.
func (l Label) String() string {
	return l.Join(" ")
}

// WrapLabel reflows labels longer than MaxLineChars into lines of at most
// MaxLineWords words and MaxLineChars characters. Words are packed greedily in
// order; a word that is too long on its own still gets its own line.
func WrapLabel(label string) Label {
	if utf8.RuneCountInString(label) <= MaxLineChars {
		return Label{Lines: []string{label}}
	}

	lines := []string{}
	var (
		current []string
		width   int
	)
	for _, word := range strings.Fields(label) {
		n := utf8.RuneCountInString(word)
		if len(current) > 0 && (len(current) >= MaxLineWords || width+1+n > MaxLineChars) {
			lines = append(lines, strings.Join(current, " "))
			current, width = nil, 0
		}
		if len(current) > 0 {
			width++
		}
		current = append(current, word)
		width += n
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return Label{Lines: lines, Wrapped: true}
}
