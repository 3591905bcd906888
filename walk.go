// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"errors"
	"fmt"
)

// Walk calls fn for every block of rt in depth-first order,
// a container before its children. If fn returns an error,
// Walk stops and returns it.
func Walk(rt RichText, fn func(b Block) error) error {
	return walk(rt, fn)
}

func walk(blocks []Block, fn func(Block) error) error {
	for _, b := range blocks {
		if err := fn(b); err != nil {
			return err
		}
		if err := walk(children(b), fn); err != nil {
			return err
		}
	}
	return nil
}

// children returns the blocks nested directly in b.
func children(b Block) []Block {
	switch b := b.(type) {
	case *List:
		if b == nil {
			return nil
		}
		blocks := make([]Block, len(b.Items))
		for i, it := range b.Items {
			if it != nil {
				blocks[i] = it
			}
		}
		return blocks
	case *Item:
		if b != nil {
			return b.Blocks
		}
	case *Quote:
		if b != nil {
			return b.Blocks
		}
	}
	return nil
}

// Validate reports every way rt breaks the rules rich text keeps:
// each block has a non-empty ID, no block or list item is nil,
// and heading levels are 1 through 6.
// Rich text returned by Parse is always valid.
func Validate(rt RichText) error {
	var errs []error
	walk(rt, func(b Block) error {
		if isNil(b) {
			errs = append(errs, errors.New("richtext: nil block"))
			return nil
		}
		if h, ok := b.(*Heading); ok && (h.Level < 1 || h.Level > 6) {
			errs = append(errs, fmt.Errorf("richtext: block %q: heading level %d out of range", h.ID, h.Level))
		}
		if b.BlockID() == "" {
			errs = append(errs, fmt.Errorf("richtext: %s block without id", b.Type()))
		}
		return nil
	})
	return errors.Join(errs...)
}

// isNil reports whether b is nil or holds a nil pointer.
func isNil(b Block) bool {
	switch b := b.(type) {
	case nil:
		return true
	case *Paragraph:
		return b == nil
	case *Fragment:
		return b == nil
	case *Heading:
		return b == nil
	case *Rule:
		return b == nil
	case *CodeBlock:
		return b == nil
	case *List:
		return b == nil
	case *Item:
		return b == nil
	case *Quote:
		return b == nil
	}
	return false
}
