// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"strings"

	"github.com/yuin/goldmark/ast"
)

// A CodeBlock is a fenced or indented code block.
type CodeBlock struct {
	ID string

	// Syntax is the language named after the opening fence, if any.
	// It is stored as written and never printed by the base renderer.
	// No syntax is the empty string, stored as null; a stored ""
	// means the same and is written back as null.
	Syntax string

	Text string // escaped source, including the final newline
}

func (b *CodeBlock) BlockID() string { return b.ID }
func (*CodeBlock) Type() string      { return "code" }

func (b *CodeBlock) printHTML(p *printer) {
	if p.hl != nil && b.Syntax != "" {
		if code, ok := p.hl.Highlight(b.Syntax, b.Text); ok {
			p.html(`<code><pre class="chroma">`, code, "</pre></code>")
			return
		}
	}
	p.html("<code><pre>", b.Text, "</pre></code>")
}

func (p *Parser) lowerFencedCode(n *ast.FencedCodeBlock, source []byte) Block {
	b := &CodeBlock{ID: p.NewBlockID(), Text: escapeHTML(codeLines(n, source))}
	if lang := n.Language(source); lang != nil {
		b.Syntax = string(lang)
	}
	return b
}

func (p *Parser) lowerIndentedCode(n *ast.CodeBlock, source []byte) Block {
	return &CodeBlock{ID: p.NewBlockID(), Text: escapeHTML(codeLines(n, source))}
}

// codeLines returns the raw lines of a code block.
func codeLines(n ast.Node, source []byte) string {
	var buf strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}

// lowerCodeSpan prints an inline code span.
// Its text is taken verbatim: no escapes or references are resolved.
func lowerCodeSpan(n *ast.CodeSpan, source []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		var value []byte
		switch c := c.(type) {
		case *ast.Text:
			value = c.Value(source)
		case *ast.String:
			value = c.Value
		}
		// Line endings inside a span print as spaces.
		if n := len(value); n > 0 && value[n-1] == '\n' {
			buf.Write(value[:n-1])
			buf.WriteByte(' ')
			continue
		}
		buf.Write(value)
	}
	return "<code>" + escapeHTML(buf.String()) + "</code>"
}
