// Package content turns note markdown into terminal output.
package content

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// DefaultStyle is the glamour style used when none is configured.
const DefaultStyle = "dracula"

// Styles are the glamour standard styles a theme may name.
var Styles = []string{"dracula", "dark", "light", "tokyo-night", "pink", "ascii", "notty"}

func ValidStyle(style string) bool {
	for _, s := range Styles {
		if s == style {
			return true
		}
	}
	return false
}

var parser = goldmark.New().Parser()

// FirstLine returns the plain text of the first block of md that has any,
// with markdown syntax removed.
func FirstLine(md string) string {
	source := []byte(md)
	doc := parser.Parse(text.NewReader(source))

	var line string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || line != "" {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindParagraph, ast.KindHeading, ast.KindTextBlock:
			line = strings.TrimSpace(plainText(n, source))
			if line != "" {
				return ast.WalkStop, nil
			}
			return ast.WalkSkipChildren, nil
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			line = strings.TrimSpace(string(n.Lines().Value(source)))
			line, _, _ = strings.Cut(line, "\n")
			if line != "" {
				return ast.WalkStop, nil
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	if line == "" {
		line = strings.TrimSpace(md)
	}
	line, _, _ = strings.Cut(line, "\n")
	return strings.TrimSpace(line)
}

func plainText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.CodeSpan:
			for child := t.FirstChild(); child != nil; child = child.NextSibling() {
				if txt, ok := child.(*ast.Text); ok {
					buf.Write(txt.Segment.Value(source))
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			buf.Write(t.Label(source))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// Title is FirstLine cut to width cells with a trailing ellipsis.
func Title(md string, width int) string {
	line := FirstLine(md)
	if width <= 0 {
		return line
	}
	return truncate.StringWithTail(line, uint(width), "…")
}

// Render renders md for a terminal width wide using the named glamour
// style.
func Render(md string, width int, style string) (string, error) {
	if style == "" {
		style = DefaultStyle
	}
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
