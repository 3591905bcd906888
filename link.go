// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"bytes"
	"context"

	"github.com/yuin/goldmark/ast"
)

// Outbound links are always marked rel="nofollow".
const linkRel = `" rel="nofollow">`

func (p *Parser) lowerLink(ctx context.Context, n *ast.Link, source []byte) string {
	return `<a href="` + escapeHTML(unescape(n.Destination)) + linkRel + p.Inlines(ctx, n, source) + "</a>"
}

func lowerAutoLink(n *ast.AutoLink, source []byte) string {
	url := n.URL(source)
	if n.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(bytes.ToLower(url), []byte("mailto:")) {
		url = append([]byte("mailto:"), url...)
	}
	return `<a href="` + escapeHTML(string(url)) + linkRel + escapeHTML(string(n.Label(source))) + "</a>"
}
