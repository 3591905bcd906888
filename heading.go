// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"context"
	"fmt"
	"strconv"

	"github.com/yuin/goldmark/ast"
)

// A Heading is an ATX or setext heading.
type Heading struct {
	ID string

	// Level is the heading level, 1 through 6.
	Level int

	Text string // inline HTML
}

func (b *Heading) BlockID() string { return b.ID }

func (b *Heading) Type() string { return "h" + strconv.Itoa(b.Level) }

func (b *Heading) printHTML(p *printer) {
	if b.Level < 1 || b.Level > 6 {
		panic(fmt.Sprintf("richtext: cannot render heading block type %q", b.Type()))
	}
	tag := b.Type()
	p.html("<", tag, ">", b.Text, "</", tag, ">")
}

// headingLevel returns the level of a heading type tag "h1".."h6".
func headingLevel(typ string) (int, bool) {
	if len(typ) != 2 || typ[0] != 'h' || typ[1] < '1' || typ[1] > '6' {
		return 0, false
	}
	return int(typ[1] - '0'), true
}

func (p *Parser) lowerHeading(ctx context.Context, n *ast.Heading, source []byte) Block {
	return &Heading{ID: p.NewBlockID(), Level: n.Level, Text: p.Inlines(ctx, n, source)}
}
