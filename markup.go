// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"bytes"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// previewMarkdown renders markup directly to HTML.
// Raw HTML in the markup is omitted.
var previewMarkdown = goldmark.New(
	goldmark.WithExtensions(
		highlighting.NewHighlighting(
			highlighting.WithStyle(DefaultStyle),
		),
	),
	goldmark.WithParserOptions(
		parser.WithASTTransformers(util.Prioritized(nofollow{}, 1000)),
	),
)

// nofollow marks every link rel="nofollow", as rich text links are.
type nofollow struct{}

var relNofollow = []byte("nofollow")

func (nofollow) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Link, *ast.AutoLink:
			n.SetAttributeString("rel", relNofollow)
		}
		return ast.WalkContinue, nil
	})
}

// MarkupToHTML converts markup straight to HTML without building rich text.
// It is meant for previews; the output is CommonMark HTML with highlighted
// fenced code and links marked rel="nofollow", not the rich text rendering.
func MarkupToHTML(markup string) (string, error) {
	var buf bytes.Buffer
	if err := previewMarkdown.Convert([]byte(normalize(markup)), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
