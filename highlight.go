// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"html"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used when a Highlighter names none.
const DefaultStyle = "monokai"

// A Highlighter colors code blocks by the syntax stored with them.
// Output uses CSS classes; WriteCSS writes the matching stylesheet.
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter returns a Highlighter using the named chroma style.
// Unknown names fall back to chroma's default style.
func NewHighlighter(style string) *Highlighter {
	if style == "" {
		style = DefaultStyle
	}
	return &Highlighter{style: styles.Get(style)}
}

func (h *Highlighter) formatter() *chromahtml.Formatter {
	return chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.PreventSurroundingPre(true),
	)
}

// Highlight returns the highlighted HTML for a code block's escaped text.
// It reports false if syntax names no known language.
func (h *Highlighter) Highlight(syntax, text string) (string, bool) {
	lexer := lexers.Get(syntax)
	if lexer == nil {
		return "", false
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, html.UnescapeString(text))
	if err != nil {
		return "", false
	}
	var buf strings.Builder
	if err := h.formatter().Format(&buf, h.style, it); err != nil {
		return "", false
	}
	return buf.String(), true
}

// WriteCSS writes the stylesheet for highlighted code blocks.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	return h.formatter().WriteCSS(w, h.style)
}
