// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package framing

import (
	"strings"

	"github.com/lehnberg/slatepack/fault"
	"github.com/lehnberg/slatepack/wordwrap"
)

// Delimiter - terminates each frame segment
const Delimiter = '.'

// minimum number of delimiters in any armored message
const minimumDelimiters = 2

// Frame - the segments of an armored message
type Frame struct {
	Header  string `json:"-"`
	Payload string `json:"-"` // formatted, still contains whitespace
	Footer  string `json:"-"`
	Match
}

// Encoded - the payload with all formatting removed
func (f *Frame) Encoded() string {
	return wordwrap.Strip(f.Payload)
}

// parser states
type state int

const (
	readingHeader state = iota
	readingPayload
	readingFooter
	done
)

// Parse - split an armored message into its segments and validate
// the header and footer tokens
//
// the footer runs to the next delimiter or to the end of the text;
// anything after the footer's delimiter is ignored
func Parse(text string) (*Frame, error) {

	if strings.Count(text, string(Delimiter)) < minimumDelimiters {
		return nil, fault.ErrMalformedArmor
	}

	frame := &Frame{}
	position := 0

	for s := readingHeader; done != s; {
		segment, next, found := nextSegment(text, position)

		switch s {
		case readingHeader:
			if !found {
				return nil, fault.ErrMalformedArmor
			}
			m, err := CheckHeader(segment)
			if nil != err {
				return nil, err
			}
			frame.Header = segment
			frame.Match = m
			s = readingPayload

		case readingPayload:
			if !found {
				return nil, fault.ErrMalformedArmor
			}
			frame.Payload = segment
			s = readingFooter

		case readingFooter:
			if _, err := CheckFooter(segment); nil != err {
				return nil, err
			}
			frame.Footer = segment
			s = done
		}
		position = next
	}

	return frame, nil
}

// return the text from start up to the next delimiter, the position
// just past that delimiter and whether a delimiter was present
func nextSegment(text string, start int) (string, int, bool) {
	if start >= len(text) {
		return "", len(text), false
	}
	n := strings.IndexByte(text[start:], Delimiter)
	if n < 0 {
		return text[start:], len(text), false
	}
	end := start + n
	return text[start:end], end + 1, true
}
