// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/lehnberg/slatepack/util"
)

func runArmor(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")
	output := c.String("output")

	if m.verbose {
		fmt.Fprintf(m.e, "armoring: %q\n", fileName)
		fmt.Fprintf(m.e, "variant: %s  word length: %d\n", m.codec.Variant(), m.codec.WordLength())
	}

	payload, err := readInput(fileName, m.r)
	if nil != err {
		return err
	}

	if c.Bool("json") {
		payload, err = util.MinifyJSON(payload)
		if nil != err {
			return err
		}
		if m.verbose {
			fmt.Fprintf(m.e, "minified: %d bytes\n", len(payload))
		}
	}

	armored, err := m.codec.Armor(payload)
	if nil != err {
		return err
	}

	return writeOutput(output, m.w, []byte(armored+"\n"))
}
