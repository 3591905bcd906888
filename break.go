// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import "github.com/yuin/goldmark/ast"

// A Rule is a thematic break (horizontal rule).
type Rule struct {
	ID string
}

func (b *Rule) BlockID() string { return b.ID }
func (*Rule) Type() string      { return "hr" }

func (b *Rule) printHTML(p *printer) {
	p.html("<hr/>")
}

func (p *Parser) lowerThematicBreak(*ast.ThematicBreak) Block {
	return &Rule{ID: p.NewBlockID()}
}

// lineBreak returns the text that follows t in its paragraph.
// Both soft and hard breaks are kept as plain newlines.
// A break ending the block's last line is dropped.
func lineBreak(t *ast.Text) string {
	if !t.SoftLineBreak() && !t.HardLineBreak() {
		return ""
	}
	for n := ast.Node(t); n != nil && n.Type() == ast.TypeInline; n = n.Parent() {
		if n.NextSibling() != nil {
			return "\n"
		}
	}
	return ""
}
