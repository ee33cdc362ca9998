package docx

import (
	"fmt"
	"strings"
)

// Letterhead is the institutional header text found in a DOCX letterhead.
//
// The title is the first heading-styled paragraph (or, failing that, the first
// paragraph). Paragraphs before it are kept as Above, paragraphs after it as
// Below; in a typical letterhead that is the parent body and the postal
// address.
type Letterhead struct {
	Above []string
	Title string
	Below []string
}

func (l Letterhead) String() string {
	return fmt.Sprintf("Above: %q, Title: %q, Below: %q", l.Above, l.Title, l.Below)
}

// Empty reports whether the letterhead carried no text at all.
func (l Letterhead) Empty() bool {
	return l.Title == "" && len(l.Above) == 0 && len(l.Below) == 0
}

// paragraph is the slice of a DOCX paragraph the letterhead needs.
type paragraph struct {
	Text  string
	Style string // style id, e.g. "Heading1"
}

func (p paragraph) heading() bool {
	return strings.HasPrefix(p.Style, "Heading") || p.Style == "Title"
}
