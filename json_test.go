// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// store encodes v the way stored rich text is written.
func store(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func TestMarshalEmpty(t *testing.T) {
	for _, rt := range []RichText{nil, {}} {
		data, err := json.Marshal(rt)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "[]" {
			t.Errorf("json.Marshal(%#v) = %s, want []", rt, data)
		}
	}
}

var marshalTests = []struct {
	block Block
	json  string
}{
	{&Paragraph{ID: "aaaaaa", Text: "a <b>b</b> &amp; c"}, `{"id":"aaaaaa","type":"p","text":"a <b>b</b> &amp; c"}`},
	{&Fragment{ID: "aaaaaa", Text: "x"}, `{"id":"aaaaaa","type":"f","text":"x"}`},
	{&Heading{ID: "aaaaaa", Level: 4, Text: "x"}, `{"id":"aaaaaa","type":"h4","text":"x"}`},
	{&Rule{ID: "aaaaaa"}, `{"id":"aaaaaa","type":"hr"}`},
	{&CodeBlock{ID: "aaaaaa", Text: "x\n"}, `{"id":"aaaaaa","type":"code","syntax":null,"text":"x\n"}`},
	{&CodeBlock{ID: "aaaaaa", Syntax: "go", Text: "x\n"}, `{"id":"aaaaaa","type":"code","syntax":"go","text":"x\n"}`},
	{&Quote{ID: "aaaaaa"}, `{"id":"aaaaaa","type":"quote","children":[]}`},
	{
		&List{ID: "aaaaaa", Ordered: true, Items: []*Item{{ID: "bbbbbb", Blocks: []Block{&Fragment{ID: "cccccc", Text: "x"}}}}},
		`{"id":"aaaaaa","type":"list","ordered":true,"children":[{"id":"bbbbbb","type":"li","children":[{"id":"cccccc","type":"f","text":"x"}]}]}`,
	},
}

func TestMarshal(t *testing.T) {
	for _, tt := range marshalTests {
		data, err := store(tt.block)
		if err != nil {
			t.Fatal(err)
		}
		if data != tt.json {
			t.Errorf("json.Marshal(%T):\nhave %s\nwant %s", tt.block, data, tt.json)
		}

		var rt RichText
		if err := json.Unmarshal([]byte("["+tt.json+"]"), &rt); err != nil {
			t.Fatalf("json.Unmarshal(%s): %v", tt.json, err)
		}
		if len(rt) != 1 || rt[0].Type() != tt.block.Type() || rt[0].BlockID() != tt.block.BlockID() {
			t.Errorf("json.Unmarshal(%s) = %#v", tt.json, rt)
		}
	}
}

func TestUnmarshal(t *testing.T) {
	data := `[
		{"id": "aaaaaa", "type": "h2", "text": "Title"},
		{"id": "bbbbbb", "type": "code", "text": "x\n"},
		{"id": "cccccc", "type": "quote", "children": [
			{"id": "dddddd", "type": "list", "ordered": false, "children": [
				{"id": "eeeeee", "type": "li", "children": [{"id": "ffffff", "type": "f", "text": "one"}]}
			]}
		]}
	]`
	var rt RichText
	if err := json.Unmarshal([]byte(data), &rt); err != nil {
		t.Fatal(err)
	}
	want := RichText{
		&Heading{ID: "aaaaaa", Level: 2, Text: "Title"},
		&CodeBlock{ID: "bbbbbb", Text: "x\n"},
		&Quote{ID: "cccccc", Blocks: []Block{
			&List{ID: "dddddd", Items: []*Item{
				{ID: "eeeeee", Blocks: []Block{&Fragment{ID: "ffffff", Text: "one"}}},
			}},
		}},
	}
	if !reflect.DeepEqual(rt, want) {
		have, _ := json.Marshal(rt)
		t.Errorf("json.Unmarshal:\nhave %s", have)
	}
}

func TestUnmarshalEmptySyntax(t *testing.T) {
	for _, data := range []string{
		`[{"id": "aaaaaa", "type": "code", "syntax": "", "text": "x\n"}]`,
		`[{"id": "aaaaaa", "type": "code", "syntax": null, "text": "x\n"}]`,
		`[{"id": "aaaaaa", "type": "code", "text": "x\n"}]`,
	} {
		var rt RichText
		if err := json.Unmarshal([]byte(data), &rt); err != nil {
			t.Fatal(err)
		}
		if b := rt[0].(*CodeBlock); b.Syntax != "" {
			t.Errorf("json.Unmarshal(%s): Syntax = %q, want empty", data, b.Syntax)
		}
		out, err := store(rt)
		if err != nil {
			t.Fatal(err)
		}
		if want := `[{"id":"aaaaaa","type":"code","syntax":null,"text":"x\n"}]`; out != want {
			t.Errorf("stored %s as %s, want %s", data, out, want)
		}
	}
}

func TestUnmarshalUnknown(t *testing.T) {
	var tests = []struct {
		json string
		typ  string
		path string
	}{
		{`[{"id": "aaaaaa", "type": "table"}]`, "table", "[0]"},
		{`[{"id": "aaaaaa", "type": "h7", "text": "x"}]`, "h7", "[0]"},
		{`[{"id": "aaaaaa", "type": "h0", "text": "x"}]`, "h0", "[0]"},
		{`[{"id": "aaaaaa", "type": "p", "text": "x"}, {"id": "bbbbbb"}]`, "", "[1]"},
		{`[{"id": "aaaaaa", "type": "quote", "children": [{"id": "b", "type": "p"}, {"id": "c", "type": "img"}]}]`, "img", "[0].children[1]"},
		{`[{"id": "aaaaaa", "type": "list", "children": [{"id": "b", "type": "p", "text": "x"}]}]`, "p", "[0].children[0]"},
	}
	for _, tt := range tests {
		var rt RichText
		err := json.Unmarshal([]byte(tt.json), &rt)
		if !errors.Is(err, ErrUnknownBlock) {
			t.Errorf("json.Unmarshal(%s): err = %v, want ErrUnknownBlock", tt.json, err)
			continue
		}
		var ue *UnknownBlockError
		if !errors.As(err, &ue) {
			t.Fatalf("json.Unmarshal(%s): err = %T, want *UnknownBlockError", tt.json, err)
		}
		if ue.Type != tt.typ || ue.Path != tt.path {
			t.Errorf("json.Unmarshal(%s): type %q at %q, want %q at %q", tt.json, ue.Type, ue.Path, tt.typ, tt.path)
		}
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	for _, data := range []string{`{}`, `[1]`, `[{"type": "quote", "children": {}}]`, `[`} {
		var rt RichText
		err := json.Unmarshal([]byte(data), &rt)
		if err == nil {
			t.Errorf("json.Unmarshal(%s) succeeded", data)
			continue
		}
		if errors.Is(err, ErrUnknownBlock) {
			t.Errorf("json.Unmarshal(%s) = %v, want decoding error", data, err)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	var r Renderer
	if _, err := r.RenderJSON(ctx, []byte(`[{"id": "aaaaaa", "type": "video"}]`)); !errors.Is(err, ErrUnknownBlock) {
		t.Errorf("RenderJSON(video): err = %v, want ErrUnknownBlock", err)
	}
	html, err := r.RenderJSON(ctx, []byte(`[{"id": "aaaaaa", "type": "p", "text": "Hello <b>world</b>!"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if want := "<p>Hello <b>world</b>!</p>"; html != want {
		t.Errorf("RenderJSON = %q, want %q", html, want)
	}
}

func TestParseStore(t *testing.T) {
	const md = "# Title\n\nSome *text* & <b>tags</b>.\n\n```go\nx := `a`\n```\n\n1. one\n   - two\n\n> quoted\n\n---\n"
	rt := Parse(ctx, md)
	data, err := json.Marshal(rt)
	if err != nil {
		t.Fatal(err)
	}
	var rt2 RichText
	if err := json.Unmarshal(data, &rt2); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rt, rt2) {
		data2, _ := json.Marshal(rt2)
		t.Errorf("stored rich text changed:\nhave %s\nwant %s", data2, data)
	}
}
