package assist

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractCode returns the body of the first fenced code block in a model
// response. Responses without a fence are returned trimmed.
func ExtractCode(response string) string {
	src := []byte(response)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var code string
	found := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var sb strings.Builder
		lines := block.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			sb.Write(seg.Value(src))
		}
		code = sb.String()
		found = true
		return ast.WalkStop, nil
	})

	if !found {
		return strings.TrimSpace(response)
	}
	return strings.TrimRight(code, "\n")
}
