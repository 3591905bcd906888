// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"context"

	"github.com/yuin/goldmark/ast"
)

// A List is an ordered or bullet list.
type List struct {
	ID      string
	Ordered bool
	Items   []*Item
}

func (b *List) BlockID() string { return b.ID }
func (*List) Type() string      { return "list" }

func (b *List) printHTML(p *printer) {
	tag := "ul"
	if b.Ordered {
		tag = "ol"
	}
	p.html("<", tag, ">")
	for _, c := range b.Items {
		p.block(c)
	}
	p.html("</", tag, ">")
}

// An Item is a list item. A tight item starts with a Fragment;
// nested lists and further paragraphs follow in document order.
type Item struct {
	ID     string
	Blocks []Block
}

func (b *Item) BlockID() string { return b.ID }
func (*Item) Type() string      { return "li" }

func (b *Item) printHTML(p *printer) {
	p.html("<li>")
	for _, c := range b.Blocks {
		p.block(c)
	}
	p.html("</li>")
}

func (p *Parser) lowerList(ctx context.Context, n *ast.List, source []byte) Block {
	list := &List{ID: p.NewBlockID(), Ordered: n.IsOrdered(), Items: []*Item{}}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch b := p.block(ctx, c, source).(type) {
		case nil:
			// omitted by a filter
		case *Item:
			list.Items = append(list.Items, b)
		default:
			// A filter replaced the item; keep the block inside a new item
			// so the list stays well formed.
			list.Items = append(list.Items, &Item{ID: p.NewBlockID(), Blocks: []Block{b}})
		}
	}
	return list
}

func (p *Parser) lowerListItem(ctx context.Context, n *ast.ListItem, source []byte) Block {
	return &Item{ID: p.NewBlockID(), Blocks: p.Blocks(ctx, n, source)}
}
