// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package framing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lehnberg/slatepack/fault"
	"github.com/lehnberg/slatepack/framing"
)

func TestParse(t *testing.T) {
	text := "BEGIN SLATEPACK. RyRF2zFSfij . END SLATEPACK."

	frame, err := framing.Parse(text)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "BEGIN SLATEPACK", frame.Header, "wrong header")
	assert.Equal(t, " RyRF2zFSfij ", frame.Payload, "wrong payload")
	assert.Equal(t, " END SLATEPACK", frame.Footer, "wrong footer")
	assert.Equal(t, framing.Qualified, frame.Variant, "wrong variant")
	assert.Equal(t, "", frame.Format, "wrong format")
	assert.Equal(t, "RyRF2zFSfij", frame.Encoded(), "wrong encoded")
}

func TestParseReformatted(t *testing.T) {
	// as it may arrive after passing through e-mail quoting
	text := "> BEGIN BINARY SLATEPACK.\n> j6tBVvCw2smWQgs MPBxvYACLUgmJDP\n> vGEDbYP27kH6cut\t\r\n> . END BINARY SLATEPACK.\n"

	frame, err := framing.Parse(text)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, framing.Qualified, frame.Variant, "wrong variant")
	assert.Equal(t, "BINARY", frame.Format, "wrong format")
	assert.Equal(t, "j6tBVvCw2smWQgsMPBxvYACLUgmJDPvGEDbYP27kH6cut", frame.Encoded(), "wrong encoded")
}

func TestParseBare(t *testing.T) {
	frame, err := framing.Parse("BEGINSLATEPACK. 2iFWkci7N. ENDSLATEPACK.")
	assert.Nil(t, err, "parse error")
	assert.Equal(t, framing.Bare, frame.Variant, "wrong variant")
	assert.Equal(t, "2iFWkci7N", frame.Encoded(), "wrong encoded")
}

func TestParseFooterWithoutDelimiter(t *testing.T) {
	frame, err := framing.Parse("BEGIN SLATEPACK. 2iFWkci7N . END SLATEPACK")
	assert.Nil(t, err, "parse error")
	assert.Equal(t, " END SLATEPACK", frame.Footer, "wrong footer")
}

func TestParseIgnoresTrailingText(t *testing.T) {
	frame, err := framing.Parse("BEGIN SLATEPACK. 2iFWkci7N . END SLATEPACK. thanks, bye.")
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "2iFWkci7N", frame.Encoded(), "wrong encoded")
}

func TestParseMalformed(t *testing.T) {
	malformed := []string{
		"",
		".",
		"BEGIN SLATEPACK",
		"BEGIN SLATEPACK. 2iFWkci7N",
		"BEGIN SLATEPACK 2iFWkci7N END SLATEPACK",
		"nonsense. with one delimiter",
		"日本語.",
	}
	for i, text := range malformed {
		frame, err := framing.Parse(text)
		assert.Equal(t, fault.ErrMalformedArmor, err, "%d: %q: wrong error", i, text)
		assert.Nil(t, frame, "%d: frame returned with error", i)
	}
}

func TestParseInvalidFrame(t *testing.T) {
	invalid := []struct {
		text string
		err  error
	}{
		{"..", fault.ErrInvalidHeader},
		{"BEGIN PACK. 2iFWkci7N . END SLATEPACK.", fault.ErrInvalidHeader},
		{"BEGIN SLATEPACK. 2iFWkci7N . END.", fault.ErrInvalidFooter},
		{"BEGIN SLATEPACK. 2iFWkci7N . BEGIN SLATEPACK.", fault.ErrInvalidFooter},
		{"BEGIN SLATEPACK. 2iFWkci7N .", fault.ErrInvalidFooter},
		{"BEGIN SLATEPACK.. END SLATEPACK.", nil},
		{"\xff\xfe. 2iFWkci7N . END SLATEPACK.", fault.ErrInvalidHeader},
	}
	for i, item := range invalid {
		_, err := framing.Parse(item.text)
		assert.Equal(t, item.err, err, "%d: %q: wrong error", i, item.text)
	}
}
