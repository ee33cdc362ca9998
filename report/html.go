package report

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/aerissecure/scorechart/chart"
	"github.com/aerissecure/scorechart/series"
)

// DebugHTML controls whether extra data attributes with the raw cell values
// are included in the rendered HTML output.
var DebugHTML bool

// RenderHTML writes p as a single HTML document: header, title, metadata,
// chart and one card per summary pair.
func RenderHTML(w io.Writer, p Page) error {
	var builder strings.Builder

	opts := p.Chart
	if opts.AssetsHost == "" {
		opts.AssetsHost = chart.DefaultAssetsHost
	}

	builder.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	builder.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(p.Heading())))
	builder.WriteString(fmt.Sprintf("<script src=\"%secharts.min.js\"></script>\n", html.EscapeString(opts.AssetsHost)))
	builder.WriteString(`<style>
`)
	builder.WriteString(`body { font-family: sans-serif; margin: 2rem; }
`)
	builder.WriteString(`.report { margin: 5rem; }
`)
	builder.WriteString(`.letterhead { display: grid; grid-template-columns: 1fr 2fr 1fr; align-items: center; border: 1px solid #ced4da; padding: 20px; }
`)
	builder.WriteString(`.letterhead .text { text-align: center; }
`)
	builder.WriteString(`.letterhead img { max-width: 12rem; height: auto; }
`)
	builder.WriteString(`.title { text-align: center; margin-top: 3rem; }
`)
	builder.WriteString(`.meta { display: flex; justify-content: space-between; margin: 3rem 0; font-weight: bold; }
`)
	builder.WriteString(`.cards { display: grid; grid-template-columns: repeat(3, 1fr); gap: 20px; }
`)
	builder.WriteString(`.card { border: 1px solid #dee2e6; border-radius: 4px; padding: 1rem; font-weight: bold; }
`)
	builder.WriteString(`.card .value { color: green; }
`)
	builder.WriteString(`</style>
`)
	builder.WriteString("</head>\n<body>\n<div class=\"report\">\n")

	writeLetterhead(&builder, p.Institution)

	builder.WriteString(fmt.Sprintf("<h2 class=\"title\">%s</h2>\n", escape(p.Heading())))

	builder.WriteString("<div class=\"meta\">\n  <div>\n")
	builder.WriteString(fmt.Sprintf("    <p>Name Of Faculty: %s</p>\n", escape(p.Metadata.Faculty)))
	builder.WriteString(fmt.Sprintf("    <p>Department: %s</p>\n", escape(p.Metadata.Department)))
	builder.WriteString("  </div>\n  <div>\n")
	builder.WriteString(fmt.Sprintf("    <p>Academic Year: %s</p>\n", escape(p.Metadata.AcademicYear)))
	builder.WriteString("  </div>\n</div>\n")

	if len(p.Result.Points) > 0 {
		bar, err := chart.NewBar(p.Result.Points, opts)
		if err != nil {
			return err
		}
		snippet := bar.RenderSnippet()
		builder.WriteString("<div class=\"chart\">\n")
		builder.WriteString(snippet.Element)
		builder.WriteString("\n")
		builder.WriteString(snippet.Script)
		builder.WriteString("\n</div>\n")
	}

	writeCards(&builder, p.Result.Summary)

	builder.WriteString("</div>\n</body>\n</html>\n")

	_, err := io.WriteString(w, builder.String())
	return err
}

func writeLetterhead(builder *strings.Builder, inst Institution) {
	builder.WriteString("<div class=\"letterhead\">\n")
	writeLogo(builder, inst.LogoLeft)
	builder.WriteString("  <div class=\"text\">\n")
	for _, line := range inst.Society {
		builder.WriteString(fmt.Sprintf("    <p><b>%s</b></p>\n", escape(line)))
	}
	if inst.Name != "" {
		builder.WriteString(fmt.Sprintf("    <h2>%s</h2>\n", escape(inst.Name)))
	}
	for _, line := range inst.Address {
		builder.WriteString(fmt.Sprintf("    <p><b>%s</b></p>\n", escape(line)))
	}
	builder.WriteString("  </div>\n")
	writeLogo(builder, inst.LogoRight)
	builder.WriteString("</div>\n")
}

func writeLogo(builder *strings.Builder, src string) {
	if src == "" {
		builder.WriteString("  <div></div>\n")
		return
	}
	builder.WriteString(fmt.Sprintf("  <div><img src=\"%s\" alt=\"\"></div>\n", html.EscapeString(src)))
}

func writeCards(builder *strings.Builder, pairs []series.SummaryPair) {
	builder.WriteString("<div class=\"cards\">\n")
	for i, pair := range pairs {
		debugAttr := ""
		if DebugHTML {
			debugAttr = fmt.Sprintf(" data-row=\"%d\" data-value-type=\"%s\"", i, html.EscapeString(fmt.Sprintf("%T", pair.Value)))
		}
		builder.WriteString(fmt.Sprintf("  <div class=\"card\"%s>\n", debugAttr))
		builder.WriteString(fmt.Sprintf("    <p class=\"label\">%s</p>\n", escape(pair.Label)))
		builder.WriteString(fmt.Sprintf("    <p class=\"value\">%s</p>\n", escape(series.Text(pair.Value))))
		builder.WriteString("  </div>\n")
	}
	builder.WriteString("</div>\n")
}

// escape HTML-escapes s; explicit line breaks are kept as <br>.
func escape(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}
