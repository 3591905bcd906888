// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package richtext converts forum markup into rich text and rich text into HTML.
//
// Rich text is the stored form of a post: an ordered list of typed blocks
// (paragraphs, headings, code, lists, quotes, rules) whose text fields already
// hold escaped inline HTML. It is produced once per submission by [Parse]
// and rendered for display by [ToHTML]:
//
//	rt := richtext.Parse(ctx, "# Hello\n\nSome *markup*.")
//	data, err := json.Marshal(rt) // store data
//	...
//	var rt richtext.RichText
//	err := json.Unmarshal(data, &rt)
//	html := richtext.ToHTML(rt)
//
// Parsing never fails: markup it does not understand is dropped or degraded
// to plain text. Rendering never escapes: text was escaped when parsed.
//
// Both stages can be extended with filters that wrap the built-in lowering
// and rendering steps; see [Parser] and [Renderer].
package richtext

// A Block is one node of rich text.
// The set of blocks is closed: Paragraph, Fragment, Heading, Rule,
// CodeBlock, List, Item, and Quote.
type Block interface {
	// BlockID returns the random identifier assigned when the block was created.
	BlockID() string

	// Type returns the wire type tag of the block ("p", "h2", "list", ...).
	Type() string

	printHTML(p *printer)
}

// RichText is an ordered sequence of top-level blocks.
type RichText []Block

// printHTML prints the top-level blocks separated by single newlines.
func (rt RichText) printHTML(p *printer) {
	for i, b := range rt {
		if i > 0 {
			p.html("\n")
		}
		p.block(b)
	}
}
