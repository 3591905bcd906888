// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import "crypto/rand"

// idLength is the length of a generated block ID.
const idLength = 6

const idChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newBlockID returns idLength random letters and digits.
// It is safe to call from multiple goroutines.
func newBlockID() string {
	var id [idLength]byte
	var buf [2 * idLength]byte
	for n := 0; n < idLength; {
		if _, err := rand.Read(buf[:]); err != nil {
			panic("richtext: reading random bytes: " + err.Error())
		}
		for _, c := range buf {
			// Reject bytes past the largest multiple of len(idChars)
			// so every character is equally likely.
			if int(c) >= 256-256%len(idChars) {
				continue
			}
			id[n] = idChars[int(c)%len(idChars)]
			n++
			if n == idLength {
				break
			}
		}
	}
	return string(id[:])
}
