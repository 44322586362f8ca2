// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package armor - checksum protected text encoding of binary payloads
//
// Armor produces:
//
//   BEGIN SLATEPACK. <base58check in words> . END SLATEPACK.
//
// and Dearmor reverses it, accepting any whitespace formatting of the
// frame and payload and verifying the check code.  A Codec holds no
// mutable state so one value may be used from many goroutines.
package armor

import (
	"unicode/utf8"

	"github.com/bitmark-inc/logger"

	"github.com/lehnberg/slatepack/base58check"
	"github.com/lehnberg/slatepack/checksum"
	"github.com/lehnberg/slatepack/fault"
	"github.com/lehnberg/slatepack/framing"
	"github.com/lehnberg/slatepack/wordwrap"
)

// Armorer - the encode/decode contract
type Armorer interface {
	Armor(payload []byte) (string, error)
	Dearmor(text string) ([]byte, error)
}

// Codec - armor with a fixed word length and frame variant
type Codec struct {
	wordLength int
	variant    framing.Variant
	log        *logger.L
}

// Result - everything recovered from an armored message
type Result struct {
	Frame         *framing.Frame `json:"frame"`
	Checksum      checksum.Bytes `json:"checksum"`
	EncodedLength int            `json:"encoded_length"`
	Payload       []byte         `json:"-"`
}

// codec used by the package level functions
var defaultCodec = &Codec{
	wordLength: wordwrap.DefaultWidth,
	variant:    framing.Qualified,
}

// New - create a codec from a validated configuration
//
// log may be nil to disable logging
func New(conf *Configuration, log *logger.L) (*Codec, error) {
	if nil == conf {
		c := DefaultConfiguration()
		conf = &c
	}
	if err := conf.Validate(); nil != err {
		return nil, err
	}

	variant, err := framing.VariantFromString(conf.Variant)
	if nil != err {
		return nil, err
	}

	return &Codec{
		wordLength: conf.WordLength,
		variant:    variant,
		log:        log,
	}, nil
}

// Variant - the frame written by this codec
func (c *Codec) Variant() framing.Variant {
	return c.variant
}

// WordLength - characters per word written by this codec
func (c *Codec) WordLength() int {
	return c.wordLength
}

// Armor - encode binary payload as armored text
func (c *Codec) Armor(payload []byte) (string, error) {
	encoded := base58check.Encode(payload)
	formatted := wordwrap.Format(encoded, c.wordLength)
	armored := framing.Wrap(c.variant, formatted)

	if nil != c.log {
		c.log.Debugf("armor: payload: %d bytes  encoded: %d characters  variant: %s", len(payload), len(encoded), c.variant)
	}
	return armored, nil
}

// ArmorString - encode text payload as armored text
func (c *Codec) ArmorString(s string) (string, error) {
	return c.Armor([]byte(s))
}

// Dearmor - recover and verify the binary payload
func (c *Codec) Dearmor(text string) ([]byte, error) {
	result, err := c.Inspect(text)
	if nil != err {
		return nil, err
	}
	return result.Payload, nil
}

// DearmorString - recover and verify a text payload
func (c *Codec) DearmorString(text string) (string, error) {
	payload, err := c.Dearmor(text)
	if nil != err {
		return "", err
	}
	if !utf8.Valid(payload) {
		return "", fault.ErrTextEncoding
	}
	return string(payload), nil
}

// Inspect - dearmor and also return the frame details
//
// accepts either frame variant regardless of the codec's own
func (c *Codec) Inspect(text string) (*Result, error) {
	frame, err := framing.Parse(text)
	if nil != err {
		c.debugFailure("parse", err)
		return nil, err
	}

	encoded := frame.Encoded()
	check, payload, err := base58check.Decode(encoded)
	if nil != err {
		c.debugFailure("decode", err)
		return nil, err
	}

	if !check.Equal(checksum.Generate(payload)) {
		c.debugFailure("verify", fault.ErrChecksumMismatch)
		return nil, fault.ErrChecksumMismatch
	}

	if nil != c.log {
		c.log.Debugf("dearmor: variant: %s  encoded: %d characters  payload: %d bytes", frame.Variant, len(encoded), len(payload))
	}

	return &Result{
		Frame:         frame,
		Checksum:      check,
		EncodedLength: len(encoded),
		Payload:       payload,
	}, nil
}

func (c *Codec) debugFailure(step string, err error) {
	if nil != c.log {
		c.log.Debugf("dearmor: %s failed: %s", step, err)
	}
}

// Armor - encode with the default codec
func Armor(payload []byte) (string, error) {
	return defaultCodec.Armor(payload)
}

// ArmorString - encode text with the default codec
func ArmorString(s string) (string, error) {
	return defaultCodec.ArmorString(s)
}

// Dearmor - decode with the default codec
func Dearmor(text string) ([]byte, error) {
	return defaultCodec.Dearmor(text)
}

// DearmorString - decode text with the default codec
func DearmorString(text string) (string, error) {
	return defaultCodec.DearmorString(text)
}

// Inspect - decode with the default codec, returning frame details
func Inspect(text string) (*Result, error) {
	return defaultCodec.Inspect(text)
}
