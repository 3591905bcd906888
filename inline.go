// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"context"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// Inlines lowers the inline children of parent through the inline
// filter chain and returns their concatenated HTML.
func (p *Parser) Inlines(ctx context.Context, parent ast.Node, source []byte) string {
	p.init()
	var buf strings.Builder
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		buf.WriteString(p.inline(ctx, c, source))
	}
	return buf.String()
}

// lowerInline is the built-in inline lowering step.
func (p *Parser) lowerInline(ctx context.Context, n ast.Node, source []byte) string {
	switch n := n.(type) {
	case *ast.Text:
		return escapeHTML(textValue(n, source)) + lineBreak(n)
	case *ast.String:
		if n.IsRaw() || n.IsCode() {
			return escapeHTML(string(n.Value))
		}
		return escapeHTML(unescape(n.Value))
	case *ast.RawHTML:
		return lowerRawHTML(n, source)
	case *ast.Link:
		return p.lowerLink(ctx, n, source)
	case *ast.AutoLink:
		return lowerAutoLink(n, source)
	case *ast.Emphasis:
		return p.lowerEmphasis(ctx, n, source)
	case *ast.CodeSpan:
		return lowerCodeSpan(n, source)
	}
	p.drop(ctx, n)
	return ""
}

func textValue(n *ast.Text, source []byte) string {
	if n.IsRaw() {
		return string(n.Value(source))
	}
	return unescape(n.Value(source))
}

// lowerEmphasis prints *emphasis* as <em> and **strong emphasis** as <strong>.
func (p *Parser) lowerEmphasis(ctx context.Context, n *ast.Emphasis, source []byte) string {
	tag := "em"
	if n.Level >= 2 {
		tag = "strong"
	}
	return "<" + tag + ">" + p.Inlines(ctx, n, source) + "</" + tag + ">"
}
