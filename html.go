// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

// htmlEscaper escapes text for use in HTML content and attribute values.
// The single quote is written as &#x27; to match content already stored.
var htmlEscaper = strings.NewReplacer(
	`&`, `&amp;`,
	`<`, `&lt;`,
	`>`, `&gt;`,
	`"`, `&quot;`,
	`'`, `&#x27;`,
)

// escapeHTML returns the HTML escaping of s.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// unescape returns the text of a Markdown source fragment with
// backslash escapes and character references resolved.
// Both are handled in one pass, so an escaped "\&amp;" stays "&amp;".
func unescape(s []byte) string {
	if bytes.IndexByte(s, '\\') < 0 && bytes.IndexByte(s, '&') < 0 {
		return string(s)
	}
	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && util.IsPunct(s[i+1]) {
			buf.WriteByte(s[i+1])
			i++
			continue
		}
		if c == '&' {
			if text, n := charRef(s[i:]); n > 0 {
				buf.WriteString(text)
				i += n - 1
				continue
			}
		}
		buf.WriteByte(c)
	}
	return buf.String()
}

// maxRef is longer than any named or numeric character reference.
const maxRef = 40

// charRef decodes the character reference at the start of s.
// It returns the decoded text and the length of the reference,
// or n == 0 if s does not start with a valid reference.
func charRef(s []byte) (text string, n int) {
	end := bytes.IndexByte(s, ';')
	if end < 2 || end > maxRef {
		return "", 0
	}
	ref := s[:end+1]
	if bytes.ContainsAny(ref[1:], "&\\ \t\n") {
		return "", 0
	}
	out := util.ResolveEntityNames(util.ResolveNumericReferences(ref))
	if bytes.Equal(out, ref) {
		return "", 0
	}
	return string(out), len(ref)
}

// lowerRawHTML prints inline HTML as escaped text.
func lowerRawHTML(n *ast.RawHTML, source []byte) string {
	return escapeHTML(string(n.Segments.Value(source)))
}
