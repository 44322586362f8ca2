// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/urfave/cli"

	"github.com/lehnberg/slatepack/checksum"
	"github.com/lehnberg/slatepack/framing"
)

type verifyReply struct {
	Variant       framing.Variant `json:"variant"`
	Format        string          `json:"format,omitempty"`
	Checksum      checksum.Bytes  `json:"checksum"`
	EncodedLength int             `json:"encoded_length"`
	PayloadLength int             `json:"payload_length"`
	Text          bool            `json:"text"`
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")

	if m.verbose {
		fmt.Fprintf(m.e, "verifying: %q\n", fileName)
	}

	text, err := readInput(fileName, m.r)
	if nil != err {
		return err
	}

	result, err := m.codec.Inspect(string(text))
	if nil != err {
		return err
	}

	reply := verifyReply{
		Variant:       result.Frame.Variant,
		Format:        result.Frame.Format,
		Checksum:      result.Checksum,
		EncodedLength: result.EncodedLength,
		PayloadLength: len(result.Payload),
		Text:          utf8.Valid(result.Payload),
	}
	return printJson(m.w, reply)
}
