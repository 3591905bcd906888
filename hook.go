// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"context"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
)

// Every extension point is a built-in action plus an ordered list of filters.
// A filter is called with the next action in the chain and the action's own
// arguments. It may call next, replace it, or wrap its result, and must
// return what the action would. Filters listed later run first: each one
// wraps the chain built from the filters before it.

// A MarkdownFunc builds the goldmark instance used to parse markup.
type MarkdownFunc func(ctx context.Context, extensions []goldmark.Extender, options []parser.Option) goldmark.Markdown

// A MarkdownFilter wraps a MarkdownFunc.
type MarkdownFilter func(next MarkdownFunc, ctx context.Context, extensions []goldmark.Extender, options []parser.Option) goldmark.Markdown

// A BlockFunc lowers one block node of the markup AST.
// A nil result omits the node.
type BlockFunc func(ctx context.Context, n ast.Node, source []byte) Block

// A BlockFilter wraps a BlockFunc.
type BlockFilter func(next BlockFunc, ctx context.Context, n ast.Node, source []byte) Block

// An InlineFunc lowers one inline node of the markup AST to escaped HTML.
type InlineFunc func(ctx context.Context, n ast.Node, source []byte) string

// An InlineFilter wraps an InlineFunc.
type InlineFilter func(next InlineFunc, ctx context.Context, n ast.Node, source []byte) string

// A RenderFunc renders one block to HTML.
type RenderFunc func(ctx context.Context, b Block) string

// A RenderFilter wraps a RenderFunc.
type RenderFilter func(next RenderFunc, ctx context.Context, b Block) string

func (f MarkdownFilter) wrap(next MarkdownFunc) MarkdownFunc {
	return func(ctx context.Context, extensions []goldmark.Extender, options []parser.Option) goldmark.Markdown {
		return f(next, ctx, extensions, options)
	}
}

func (f BlockFilter) wrap(next BlockFunc) BlockFunc {
	return func(ctx context.Context, n ast.Node, source []byte) Block {
		return f(next, ctx, n, source)
	}
}

func (f InlineFilter) wrap(next InlineFunc) InlineFunc {
	return func(ctx context.Context, n ast.Node, source []byte) string {
		return f(next, ctx, n, source)
	}
}

func (f RenderFilter) wrap(next RenderFunc) RenderFunc {
	return func(ctx context.Context, b Block) string {
		return f(next, ctx, b)
	}
}

type filter[A any] interface {
	wrap(next A) A
}

// compose returns action wrapped by each of filters in turn.
func compose[A any, F filter[A]](action A, filters []F) A {
	for _, f := range filters {
		action = f.wrap(action)
	}
	return action
}
