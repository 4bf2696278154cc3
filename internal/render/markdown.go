// Package render turns resolved project records into markup fragments:
// cards, artifact tiles, and detail-page region content. It holds no state;
// every function is a pure input-to-markup mapping.
package render

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// md renders the long-form writeup fields. Project writeups routinely carry
// tables and fenced SQL/Python snippets, hence GFM and highlighting.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// Markdown converts a markdown writeup to HTML. On a conversion failure the
// raw text is returned escaped, so a bad writeup never blocks the page.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
