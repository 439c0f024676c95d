package parse

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yegekucuk/git2mind/repo"
)

var markdownParser = goldmark.New()

// extractMarkdown parses the content into a goldmark AST and collects the
// inline text of every heading, in document order.
func extractMarkdown(content string) repo.Metadata {
	source := []byte(content)
	document := markdownParser.Parser().Parse(text.NewReader(source))

	var headers []string
	_ = ast.Walk(document, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok {
			headers = append(headers, nodeText(heading, source))
			// Heading text is collected in one pass, no need to descend
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return repo.Metadata{Headers: headers}
}

// nodeText concatenates the text content of a node's subtree.
func nodeText(n ast.Node, source []byte) string {
	var builder strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := node.(type) {
		case *ast.Text:
			builder.Write(v.Segment.Value(source))
		case *ast.String:
			builder.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(builder.String())
}
