// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// chromaClass matches the class names of highlighted code.
var chromaClass = regexp.MustCompile(`^[a-z0-9 -]+$`)

// SanitizePolicy returns a bluemonday policy for rendered rich text.
// It allows the markup the renderer emits (user-generated-content rules,
// links forced to rel="nofollow") plus the classes of highlighted code,
// and removes anything else, such as HTML placed in stored text by a filter
// or by data that did not come from Parse.
func SanitizePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AllowAttrs("class").Matching(chromaClass).OnElements("pre", "span")
	return p
}
