// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"context"

	"github.com/yuin/goldmark/ast"
)

// A Paragraph is a block of inline text wrapped in <p>.
type Paragraph struct {
	ID   string
	Text string // inline HTML
}

func (b *Paragraph) BlockID() string { return b.ID }
func (*Paragraph) Type() string      { return "p" }

func (b *Paragraph) printHTML(p *printer) {
	p.html("<p>", b.Text, "</p>")
}

// A Fragment is inline text printed without a wrapping element.
// It holds the text of a tight list item.
type Fragment struct {
	ID   string
	Text string // inline HTML
}

func (b *Fragment) BlockID() string { return b.ID }
func (*Fragment) Type() string      { return "f" }

func (b *Fragment) printHTML(p *printer) {
	p.html(b.Text)
}

func (p *Parser) lowerParagraph(ctx context.Context, n *ast.Paragraph, source []byte) Block {
	return &Paragraph{ID: p.NewBlockID(), Text: p.Inlines(ctx, n, source)}
}

// lowerTextBlock lowers tight list item text. goldmark also leaves an
// empty text block where a paragraph held only link reference
// definitions; that is dropped.
func (p *Parser) lowerTextBlock(ctx context.Context, n *ast.TextBlock, source []byte) Block {
	if n.Lines().Len() == 0 && !n.HasChildren() {
		return nil
	}
	return &Fragment{ID: p.NewBlockID(), Text: p.Inlines(ctx, n, source)}
}
