// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/unicode/norm"
)

// A Parser converts markup into rich text.
//
// The zero Parser is ready to use. Its fields configure it and must
// not be changed after the first call to Parse; the filter chains are
// composed once, on first use. A Parser is safe for concurrent use.
type Parser struct {
	// Extensions and Options configure the goldmark instance
	// that builds the markup AST. Extension nodes that no filter
	// lowers are dropped.
	Extensions []goldmark.Extender
	Options    []parser.Option

	// Filters wrapping the three lowering steps.
	MarkdownFilters []MarkdownFilter
	BlockFilters    []BlockFilter
	InlineFilters   []InlineFilter

	// NewID returns the identifier of a new block.
	// If nil, blocks get six random letters and digits.
	NewID func() string

	// Logger, if non-nil, receives a debug record for every
	// AST node dropped because nothing could lower it.
	Logger *slog.Logger

	once     sync.Once
	markdown MarkdownFunc
	block    BlockFunc
	inline   InlineFunc
}

func (p *Parser) init() {
	p.once.Do(func() {
		p.markdown = compose(MarkdownFunc(newMarkdown), p.MarkdownFilters)
		p.block = compose(BlockFunc(p.lowerBlock), p.BlockFilters)
		p.inline = compose(InlineFunc(p.lowerInline), p.InlineFilters)
	})
}

var defaultParser Parser

// Parse converts markup into rich text using a zero Parser.
func Parse(ctx context.Context, markup string) RichText {
	return defaultParser.Parse(ctx, markup)
}

// Parse converts markup into rich text.
// It never fails: constructs that cannot be represented are dropped
// and anything else degrades to plain paragraphs.
// The result is never nil.
//
// The context is not used by Parse itself; it is handed to every filter.
//
// Parse time can grow quadratically with the length of pathological
// markup (long runs of unmatched emphasis or link delimiters).
// Callers taking untrusted input must bound its size.
func (p *Parser) Parse(ctx context.Context, markup string) RichText {
	p.init()
	source := []byte(normalize(markup))
	md := p.markdown(ctx, slices.Clip(p.Extensions), slices.Clip(p.Options))
	doc := md.Parser().Parse(text.NewReader(source))
	return RichText(p.Blocks(ctx, doc, source))
}

// normalize prepares markup for parsing.
// NUL bytes and invalid UTF-8 become U+FFFD;
// text is put in Unicode normalization form C so equal text is stored equally.
func normalize(markup string) string {
	markup = strings.ToValidUTF8(markup, "\uFFFD")
	markup = strings.ReplaceAll(markup, "\x00", "\uFFFD")
	return norm.NFC.String(markup)
}

func newMarkdown(ctx context.Context, extensions []goldmark.Extender, options []parser.Option) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(options...),
	)
}

// Blocks lowers the block children of parent, in order,
// through the block filter chain. The result is never nil.
func (p *Parser) Blocks(ctx context.Context, parent ast.Node, source []byte) []Block {
	p.init()
	blocks := []Block{}
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if b := p.block(ctx, c, source); b != nil {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// NewBlockID returns the identifier for a new block.
func (p *Parser) NewBlockID() string {
	if p.NewID != nil {
		return p.NewID()
	}
	return newBlockID()
}

// lowerBlock is the built-in block lowering step.
func (p *Parser) lowerBlock(ctx context.Context, n ast.Node, source []byte) Block {
	switch n := n.(type) {
	case *ast.Paragraph:
		return p.lowerParagraph(ctx, n, source)
	case *ast.TextBlock:
		return p.lowerTextBlock(ctx, n, source)
	case *ast.Heading:
		return p.lowerHeading(ctx, n, source)
	case *ast.Blockquote:
		return p.lowerBlockquote(ctx, n, source)
	case *ast.List:
		return p.lowerList(ctx, n, source)
	case *ast.ListItem:
		return p.lowerListItem(ctx, n, source)
	case *ast.FencedCodeBlock:
		return p.lowerFencedCode(n, source)
	case *ast.CodeBlock:
		return p.lowerIndentedCode(n, source)
	case *ast.ThematicBreak:
		return p.lowerThematicBreak(n)
	}
	p.drop(ctx, n)
	return nil
}

// drop records that n was left out of the rich text.
func (p *Parser) drop(ctx context.Context, n ast.Node) {
	if p.Logger == nil {
		return
	}
	kind := "block"
	if n.Type() == ast.TypeInline {
		kind = "inline"
	}
	p.Logger.DebugContext(ctx, "richtext: dropped markup node",
		slog.String("kind", kind),
		slog.String("node", n.Kind().String()),
	)
}
