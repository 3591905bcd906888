// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"context"

	"github.com/yuin/goldmark/ast"
)

// A Quote is a block quote.
type Quote struct {
	ID     string
	Blocks []Block // content of quote
}

func (b *Quote) BlockID() string { return b.ID }
func (*Quote) Type() string      { return "quote" }

func (b *Quote) printHTML(p *printer) {
	p.html("<blockquote>")
	for _, c := range b.Blocks {
		p.block(c)
	}
	p.html("</blockquote>")
}

func (p *Parser) lowerBlockquote(ctx context.Context, n *ast.Blockquote, source []byte) Block {
	return &Quote{ID: p.NewBlockID(), Blocks: p.Blocks(ctx, n, source)}
}
