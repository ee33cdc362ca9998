package docx

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/schema/soo/wml"
)

// ReadLetterhead reads a DOCX letterhead from r/size. Paragraphs are taken in
// body order, including paragraphs inside tables, and blank ones are skipped.
func ReadLetterhead(r io.ReaderAt, size int64) (Letterhead, error) {
	doc, err := document.Read(r, size)
	if err != nil {
		return Letterhead{}, fmt.Errorf("docx: read letterhead: %w", err)
	}
	return classify(bodyParagraphs(doc)), nil
}

// OpenLetterhead reads the letterhead at path.
func OpenLetterhead(path string) (Letterhead, error) {
	f, err := os.Open(path)
	if err != nil {
		return Letterhead{}, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return Letterhead{}, err
	}
	return ReadLetterhead(f, info.Size())
}

func bodyParagraphs(doc *document.Document) []paragraph {
	// ---- Build lookup maps from underlying XML ptr -> high-level wrapper ----
	pMap := make(map[*wml.CT_P]document.Paragraph)
	for _, p := range doc.Paragraphs() {
		pMap[p.X()] = p
	}
	tMap := make(map[*wml.CT_Tbl]document.Table)
	for _, tbl := range doc.Tables() {
		tMap[tbl.X()] = tbl
	}

	body := doc.X().Body
	if body == nil {
		return nil
	}

	var out []paragraph
	add := func(p document.Paragraph) {
		var b strings.Builder
		for _, run := range p.Runs() {
			b.WriteString(run.Text())
		}
		text := strings.Join(strings.Fields(b.String()), " ")
		if text == "" {
			return
		}
		out = append(out, paragraph{Text: text, Style: p.Style()})
	}

	for _, bl := range body.EG_BlockLevelElts {
		for _, c := range bl.EG_ContentBlockContent {
			for _, cp := range c.P {
				if par, ok := pMap[cp]; ok {
					add(par)
				}
			}
			for _, ct := range c.Tbl {
				tbl, ok := tMap[ct]
				if !ok {
					continue
				}
				for _, row := range tbl.Rows() {
					for _, cell := range row.Cells() {
						for _, par := range cell.Paragraphs() {
							add(par)
						}
					}
				}
			}
		}
	}
	return out
}

func classify(paras []paragraph) Letterhead {
	if len(paras) == 0 {
		return Letterhead{}
	}
	title := 0
	for i, p := range paras {
		if p.heading() {
			title = i
			break
		}
	}

	var lh Letterhead
	for _, p := range paras[:title] {
		lh.Above = append(lh.Above, p.Text)
	}
	lh.Title = paras[title].Text
	for _, p := range paras[title+1:] {
		lh.Below = append(lh.Below, p.Text)
	}
	return lh
}
