// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wordwrap - cosmetic grouping of an encoded payload
//
// the grouping is purely positional and is undone by Strip
package wordwrap

import (
	"strings"
)

// DefaultWidth - characters per group
const DefaultWidth = 15

// Whitespace - the characters that carry no meaning inside armor
const Whitespace = ">\n\r\t "

// separator inserted between groups
const separator = ' '

// IsWhitespace - true if the rune is one of Whitespace
func IsWhitespace(r rune) bool {
	switch r {
	case '>', '\n', '\r', '\t', ' ':
		return true
	default:
		return false
	}
}

// Format - insert a separator before every width-th character
//
// counting is by rune so multi-byte text is never split; a width of
// less than one leaves the string unchanged
func Format(s string, width int) string {
	if width < 1 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/width)

	i := 0
	for _, r := range s {
		if 0 != i && 0 == i%width {
			b.WriteRune(separator)
		}
		b.WriteRune(r)
		i += 1
	}
	return b.String()
}

// Strip - remove all Whitespace characters
func Strip(s string) string {
	return strings.Map(func(r rune) rune {
		if IsWhitespace(r) {
			return -1
		}
		return r
	}, s)
}
