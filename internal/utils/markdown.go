package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// StripMarkdown reduces a provider summary to plain text. Some sources ship
// descriptions with markdown or embedded HTML; cached items keep only the
// readable content, collapsed to a single line.
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	extractText(doc, &buf)

	return strings.Join(strings.Fields(buf.String()), " ")
}

// extractText walks the AST collecting text content, skipping raw HTML.
func extractText(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		buf.WriteString(" ")
		return
	case *ast.Code:
		buf.Write(n.Literal)
		buf.WriteString(" ")
		return
	case *ast.CodeBlock:
		buf.Write(n.Literal)
		buf.WriteString(" ")
		return
	case *ast.HTMLBlock, *ast.HTMLSpan:
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}
	for _, child := range container.Children {
		extractText(child, buf)
	}
}
