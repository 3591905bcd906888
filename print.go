// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"context"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// A Renderer converts rich text into HTML.
//
// The zero Renderer prints the base HTML for every block.
// Its fields must not be changed after the first call to Render.
// A Renderer is safe for concurrent use.
type Renderer struct {
	// Filters wrap the rendering of each block, nested blocks included.
	Filters []RenderFilter

	// Highlighter, if non-nil, highlights code blocks
	// that name a syntax it knows.
	Highlighter *Highlighter

	// Policy, if non-nil, sanitizes the final HTML.
	// See SanitizePolicy.
	Policy *bluemonday.Policy

	once   sync.Once
	render RenderFunc
}

func (r *Renderer) init() {
	r.once.Do(func() {
		r.render = compose(RenderFunc(r.renderBlock), r.Filters)
	})
}

var defaultRenderer Renderer

// ToHTML renders rich text using a zero Renderer.
func ToHTML(rt RichText) string {
	return defaultRenderer.Render(context.Background(), rt)
}

// Render returns the HTML for rt. Top-level blocks are separated
// by a newline; blocks inside lists and quotes are not separated.
// Block text is printed as is: it was escaped when parsed.
//
// Render panics if rt holds a nil block (or nil block pointer) or a Heading whose level
// is not 1 through 6. Neither can come from Parse or from decoding;
// both mean the program built invalid rich text.
func (r *Renderer) Render(ctx context.Context, rt RichText) string {
	r.init()
	p := r.printer(ctx)
	rt.printHTML(p)
	out := p.buf.String()
	if r.Policy != nil {
		out = r.Policy.Sanitize(out)
	}
	return out
}

// RenderBlock returns the HTML for a single block,
// passing it through the filters.
func (r *Renderer) RenderBlock(ctx context.Context, b Block) string {
	r.init()
	return r.render(ctx, b)
}

// renderBlock is the built-in rendering step.
func (r *Renderer) renderBlock(ctx context.Context, b Block) string {
	if isNil(b) {
		panic("richtext: cannot render nil block")
	}
	p := r.printer(ctx)
	b.printHTML(p)
	return p.buf.String()
}

func (r *Renderer) printer(ctx context.Context) *printer {
	return &printer{ctx: ctx, render: r.render, hl: r.Highlighter}
}

type printer struct {
	buf    strings.Builder
	ctx    context.Context
	render RenderFunc
	hl     *Highlighter
}

// block prints b through the renderer's filter chain.
func (p *printer) block(b Block) {
	p.buf.WriteString(p.render(p.ctx, b))
}

func (p *printer) html(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}
