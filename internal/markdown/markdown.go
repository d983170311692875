package markdown

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// scriptLanguages are the fenced code block languages whose content is stripped.
var scriptLanguages = map[string]struct{}{
	"js":         {},
	"javascript": {},
	"jsx":        {},
	"mjs":        {},
	"cjs":        {},
	"ts":         {},
	"typescript": {},
	"tsx":        {},
}

// Transformer rewrites the text of a single code block.
type Transformer interface {
	Strip(content string) string
}

// IsMarkdown reports whether path names a Markdown document.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// span is a byte range of the source holding one code block body.
type span struct {
	start, stop int
}

// Strip applies t to the body of every JavaScript-family fenced code block
// in source. Everything outside those blocks is returned unchanged.
func Strip(source []byte, t Transformer) ([]byte, error) {
	spans, err := scriptBlocks(source)
	if err != nil {
		return nil, err
	}
	if len(spans) == 0 {
		return source, nil
	}

	var out bytes.Buffer
	out.Grow(len(source))
	prev := 0
	for _, s := range spans {
		out.Write(source[prev:s.start])
		out.WriteString(t.Strip(string(source[s.start:s.stop])))
		prev = s.stop
	}
	out.Write(source[prev:])
	return out.Bytes(), nil
}

// scriptBlocks walks the markdown AST and returns the body spans of fenced
// code blocks tagged with a script language, in document order.
func scriptBlocks(source []byte) ([]span, error) {
	var spans []span
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		block, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		lang := strings.ToLower(string(block.Language(source)))
		if _, ok := scriptLanguages[lang]; !ok {
			return ast.WalkSkipChildren, nil
		}

		lines := block.Lines()
		if lines.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}
		spans = append(spans, span{
			start: lines.At(0).Start,
			stop:  lines.At(lines.Len() - 1).Stop,
		})
		return ast.WalkSkipChildren, nil
	}

	if err := ast.Walk(root, walker); err != nil {
		return nil, err
	}
	return spans, nil
}
