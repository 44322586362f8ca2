// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package armor

import (
	"github.com/lehnberg/slatepack/fault"
	"github.com/lehnberg/slatepack/framing"
	"github.com/lehnberg/slatepack/wordwrap"
)

// limits on the word length
const (
	minimumWordLength = 1
	maximumWordLength = 1024
)

// Configuration - settings for a codec as read from the configuration file
type Configuration struct {
	WordLength int    `gluamapper:"word_length" json:"word_length"`
	Variant    string `gluamapper:"variant" json:"variant"`
}

// DefaultConfiguration - fifteen character words in the qualified frame
func DefaultConfiguration() Configuration {
	return Configuration{
		WordLength: wordwrap.DefaultWidth,
		Variant:    framing.Qualified.String(),
	}
}

// Validate - check all values are in range
func (conf *Configuration) Validate() error {
	if conf.WordLength < minimumWordLength || conf.WordLength > maximumWordLength {
		return fault.ErrInvalidWordLength
	}
	if _, err := framing.VariantFromString(conf.Variant); nil != err {
		return err
	}
	return nil
}
