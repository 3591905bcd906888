// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// entity matches an escape the renderer may print.
var entity = regexp.MustCompile(`^&(amp|lt|gt|quot|#x27);`)

// structural matches a tag the renderer itself prints.
var structural = regexp.MustCompile(`^</?(p|h[1-6]|hr/|code|pre|ul|ol|li|blockquote|em|strong)>|^</a>|^<a href="[^"<>]*" rel="nofollow">`)

func Fuzz(f *testing.F) {
	files, err := filepath.Glob("testdata/parse.txt")
	if err != nil {
		f.Fatal(err)
	}
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			f.Fatal(err)
		}
		for _, file := range a.Files {
			if strings.HasSuffix(file.Name, ".md") {
				f.Add(decode(string(file.Data)))
			}
		}
	}
	f.Add("<script>alert(1)</script>\n\n*<script>*")
	f.Add("[x](javascript:alert(&quot;1&quot;))")
	f.Fuzz(func(t *testing.T, s string) {
		rt := Parse(context.Background(), s)
		if rt == nil {
			t.Fatalf("Parse(%q) = nil", s)
		}
		if err := Validate(rt); err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		out := ToHTML(rt)
		checkEscaped(t, s, out)
		if again := ToHTML(rt); again != out {
			t.Fatalf("ToHTML not deterministic for %q", s)
		}

		data, err := json.Marshal(rt)
		if err != nil {
			t.Fatal(err)
		}
		var rt2 RichText
		if err := json.Unmarshal(data, &rt2); err != nil {
			t.Fatalf("decoding %s: %v", data, err)
		}
		if out2 := ToHTML(rt2); out2 != out {
			t.Fatalf("input %q\nrendered %q\nafter storing %q", s, out, out2)
		}
	})
}

// checkEscaped checks that every & and < in html starts
// an escape or a tag the renderer prints.
func checkEscaped(t *testing.T, s, html string) {
	t.Helper()
	if err := escaped(html); err != nil {
		t.Fatalf("input %q\noutput %q\n%v", s, html, err)
	}
}

func escaped(html string) error {
	for i := 0; i < len(html); i++ {
		switch html[i] {
		case '&':
			if entity.FindStringIndex(html[i:]) == nil {
				return fmt.Errorf("raw & at offset %d", i)
			}
		case '<':
			m := structural.FindStringIndex(html[i:])
			if m == nil {
				return fmt.Errorf("raw < at offset %d", i)
			}
			i += m[1] - 1
		}
	}
	return nil
}

var escapedTests = []struct {
	html string
	ok   bool
}{
	{"<p>a &amp; b</p>", true},
	{`<p>See <a href="https://example.com" rel="nofollow">docs</a>.</p>`, true},
	{`<ul><li><a href="mailto:bob@example.com" rel="nofollow">bob</a></li></ul>`, true},
	{"<hr/>\n<code><pre>a &lt; b\n</pre></code>", true},
	{"<p><em>a</em> <strong>b</strong></p>", true},
	{"<p>a & b</p>", false},
	{"<p><script>x</script></p>", false},
	{`<a href="x">y</a>`, false},
	{"<p><a>x</a></p>", false},
	{"<b>x</b>", false},
}

func TestEscaped(t *testing.T) {
	for _, tt := range escapedTests {
		if err := escaped(tt.html); (err == nil) != tt.ok {
			t.Errorf("escaped(%q) = %v, want ok=%v", tt.html, err, tt.ok)
		}
	}
	for _, md := range []string{
		"Visit [Misago](https://misago-project.org) today",
		"See <https://example.com>.",
		"Mail <bob@example.com>",
		"[x](javascript:alert(&quot;1&quot;))",
		"- [a](b)\n- *[c](d)*",
	} {
		if err := escaped(ToHTML(Parse(ctx, md))); err != nil {
			t.Errorf("ToHTML(Parse(%q)): %v", md, err)
		}
	}
}
