// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Rich text is stored as JSON: an array of objects with the keys
// "id" and "type" plus "text", "syntax", "ordered", or "children"
// depending on the type. Blocks encode their text without HTML escaping;
// an Encoder with SetEscapeHTML(false) keeps stored text reading
// the same as the HTML it holds.

// ErrUnknownBlock is the error wrapped by every *UnknownBlockError.
var ErrUnknownBlock = errors.New("unknown rich text block type")

// An UnknownBlockError reports stored rich text with a block type
// this version of the package does not know.
type UnknownBlockError struct {
	Type string
	Path string // JSON path of the block, such as "[2].children[0]"
}

func (e *UnknownBlockError) Error() string {
	return fmt.Sprintf("richtext: %s: unknown block type %q", e.Path, e.Type)
}

func (e *UnknownBlockError) Unwrap() error { return ErrUnknownBlock }

type textJSON struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

type ruleJSON struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type codeJSON struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	Syntax *string `json:"syntax"`
	Text   string  `json:"text"`
}

type listJSON struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Ordered  bool    `json:"ordered"`
	Children []Block `json:"children"`
}

type containerJSON struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Children []Block `json:"children"`
}

// marshal encodes v as compact JSON without HTML escaping.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (rt RichText) MarshalJSON() ([]byte, error) {
	if rt == nil {
		return []byte("[]"), nil
	}
	return marshal([]Block(rt))
}

func (b *Paragraph) MarshalJSON() ([]byte, error) {
	return marshal(textJSON{b.ID, b.Type(), b.Text})
}

func (b *Fragment) MarshalJSON() ([]byte, error) {
	return marshal(textJSON{b.ID, b.Type(), b.Text})
}

func (b *Heading) MarshalJSON() ([]byte, error) {
	return marshal(textJSON{b.ID, b.Type(), b.Text})
}

func (b *Rule) MarshalJSON() ([]byte, error) {
	return marshal(ruleJSON{b.ID, b.Type()})
}

func (b *CodeBlock) MarshalJSON() ([]byte, error) {
	var syntax *string
	if b.Syntax != "" {
		syntax = &b.Syntax
	}
	return marshal(codeJSON{b.ID, b.Type(), syntax, b.Text})
}

func (b *List) MarshalJSON() ([]byte, error) {
	children := make([]Block, len(b.Items))
	for i, it := range b.Items {
		children[i] = it
	}
	return marshal(listJSON{b.ID, b.Type(), b.Ordered, children})
}

func (b *Item) MarshalJSON() ([]byte, error) {
	return marshal(containerJSON{b.ID, b.Type(), nonNil(b.Blocks)})
}

func (b *Quote) MarshalJSON() ([]byte, error) {
	return marshal(containerJSON{b.ID, b.Type(), nonNil(b.Blocks)})
}

func nonNil(blocks []Block) []Block {
	if blocks == nil {
		return []Block{}
	}
	return blocks
}

// UnmarshalJSON decodes stored rich text.
// A block with an unknown type is an error (*UnknownBlockError),
// never skipped: it means the data was written by a newer or
// incompatible version.
func (rt *RichText) UnmarshalJSON(data []byte) error {
	blocks, err := decodeBlocks(data, "")
	if err != nil {
		return err
	}
	*rt = blocks
	return nil
}

// header is the part of every block object needed to pick its type.
type header struct {
	ID       string            `json:"id"`
	Type     string            `json:"type"`
	Text     string            `json:"text"`
	Syntax   *string           `json:"syntax"`
	Ordered  bool              `json:"ordered"`
	Children []json.RawMessage `json:"children"`
}

func decodeBlocks(data []byte, path string) ([]Block, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("richtext: decoding %s: %w", pathOrRoot(path), err)
	}
	blocks := make([]Block, 0, len(list))
	for i, raw := range list {
		b, err := decodeBlock(raw, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func decodeChildren(raws []json.RawMessage, path string) ([]Block, error) {
	blocks := make([]Block, 0, len(raws))
	for i, raw := range raws {
		b, err := decodeBlock(raw, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func decodeBlock(data []byte, path string) (Block, error) {
	var h header
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("richtext: decoding %s: %w", path, err)
	}
	switch h.Type {
	case "p":
		return &Paragraph{ID: h.ID, Text: h.Text}, nil
	case "f":
		return &Fragment{ID: h.ID, Text: h.Text}, nil
	case "hr":
		return &Rule{ID: h.ID}, nil
	case "code":
		b := &CodeBlock{ID: h.ID, Text: h.Text}
		// null and "" both mean no syntax.
		if h.Syntax != nil {
			b.Syntax = *h.Syntax
		}
		return b, nil
	case "list":
		children, err := decodeChildren(h.Children, path)
		if err != nil {
			return nil, err
		}
		list := &List{ID: h.ID, Ordered: h.Ordered, Items: make([]*Item, 0, len(children))}
		for i, c := range children {
			it, ok := c.(*Item)
			if !ok {
				return nil, &UnknownBlockError{Type: c.Type(), Path: fmt.Sprintf("%s.children[%d]", path, i)}
			}
			list.Items = append(list.Items, it)
		}
		return list, nil
	case "li":
		children, err := decodeChildren(h.Children, path)
		if err != nil {
			return nil, err
		}
		return &Item{ID: h.ID, Blocks: children}, nil
	case "quote":
		children, err := decodeChildren(h.Children, path)
		if err != nil {
			return nil, err
		}
		return &Quote{ID: h.ID, Blocks: children}, nil
	}
	if level, ok := headingLevel(h.Type); ok {
		return &Heading{ID: h.ID, Level: level, Text: h.Text}, nil
	}
	return nil, &UnknownBlockError{Type: h.Type, Path: path}
}

func pathOrRoot(path string) string {
	if path == "" {
		return "rich text"
	}
	return path
}

// RenderJSON decodes stored rich text and renders it.
func (r *Renderer) RenderJSON(ctx context.Context, data []byte) (string, error) {
	var rt RichText
	if err := json.Unmarshal(data, &rt); err != nil {
		return "", err
	}
	return r.Render(ctx, rt), nil
}
