// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runDearmor(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")
	output := c.String("output")

	if m.verbose {
		fmt.Fprintf(m.e, "dearmoring: %q\n", fileName)
	}

	text, err := readInput(fileName, m.r)
	if nil != err {
		return err
	}

	payload, err := m.codec.Dearmor(string(text))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "payload: %d bytes\n", len(payload))
	}

	return writeOutput(output, m.w, payload)
}
