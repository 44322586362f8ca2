// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package framing

import (
	"regexp"
	"strings"

	"github.com/lehnberg/slatepack/fault"
)

// Variant - one of the recognised frame grammars
type Variant int

// enumeration of grammars in priority order
const (
	Qualified Variant = iota
	Bare      Variant = iota

	// end of list (one greater than last item)
	variantLimit = iota
)

var variantNames = [variantLimit]string{
	Qualified: "qualified",
	Bare:      "bare",
}

// String - the configuration name of a variant
func (v Variant) String() string {
	if v < 0 || v >= variantLimit {
		return "unknown"
	}
	return variantNames[v]
}

// MarshalText - convert a variant to its JSON form
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// VariantFromString - parse a configuration name, case is ignored
func VariantFromString(s string) (Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for v, name := range variantNames {
		if name == s {
			return Variant(v), nil
		}
	}
	return Qualified, fault.ErrInvalidVariant
}

// Match - result of a successful token check
type Match struct {
	Variant Variant `json:"variant"`
	Format  string  `json:"format,omitempty"` // optional name from a qualified token
}

// Grammar - compiled patterns for one variant
//
// values are built once during package initialisation and never
// modified, so they may be shared by any number of goroutines
type Grammar struct {
	variant Variant
	header  *regexp.Regexp
	footer  *regexp.Regexp
	begin   string // literal written before the payload
	end     string // literal written after the payload
}

// whitespace character class used in all patterns
const ws = `[>\n\r\t ]`

// the format group is the only capture in the qualified patterns
const formatGroup = 1

// all grammars in priority order
var grammars = [variantLimit]*Grammar{
	Qualified: {
		variant: Qualified,
		header:  regexp.MustCompile(`^` + ws + `*BEGIN` + ws + `+(?:([a-zA-Z0-9]+)` + ws + `+)?SLATEPACK` + ws + `*$`),
		footer:  regexp.MustCompile(`^` + ws + `*END` + ws + `+(?:([a-zA-Z0-9]+)` + ws + `+)?SLATEPACK` + ws + `*$`),
		begin:   "BEGIN SLATEPACK. ",
		end:     " . END SLATEPACK.",
	},
	Bare: {
		variant: Bare,
		header:  regexp.MustCompile(`^` + ws + `*BEGINSLATEPACK` + ws + `*$`),
		footer:  regexp.MustCompile(`^` + ws + `*ENDSLATEPACK` + ws + `*$`),
		begin:   "BEGINSLATEPACK. ",
		end:     " . ENDSLATEPACK.",
	},
}

// Header - literal header for new output
func Header(v Variant) string {
	return lookup(v).begin
}

// Footer - literal footer for new output
func Footer(v Variant) string {
	return lookup(v).end
}

// Wrap - surround a formatted payload with the frame of a variant
func Wrap(v Variant, formatted string) string {
	g := lookup(v)
	return g.begin + formatted + g.end
}

// CheckHeader - match the text before the first delimiter
func CheckHeader(token string) (Match, error) {
	for _, g := range grammars {
		if m, ok := g.match(g.header, token); ok {
			return m, nil
		}
	}
	return Match{}, fault.ErrInvalidHeader
}

// CheckFooter - match the text after the payload delimiter
func CheckFooter(token string) (Match, error) {
	for _, g := range grammars {
		if m, ok := g.match(g.footer, token); ok {
			return m, nil
		}
	}
	return Match{}, fault.ErrInvalidFooter
}

func (g *Grammar) match(re *regexp.Regexp, token string) (Match, bool) {
	groups := re.FindStringSubmatch(token)
	if nil == groups {
		return Match{}, false
	}
	m := Match{
		Variant: g.variant,
	}
	if len(groups) > formatGroup {
		m.Format = groups[formatGroup]
	}
	return m, true
}

// unknown values fall back to the canonical grammar
func lookup(v Variant) *Grammar {
	if v < 0 || v >= variantLimit {
		return grammars[Qualified]
	}
	return grammars[v]
}
