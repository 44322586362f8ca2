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

func runFingerprint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")

	text, err := readInput(fileName, m.r)
	if nil != err {
		return err
	}

	payload, err := m.codec.Dearmor(string(text))
	if nil != err {
		return err
	}

	fingerprint := util.Fingerprint(payload)

	if m.verbose {
		fmt.Fprintf(m.e, "fingerprint: %s\n", fingerprint)
	}

	out := struct {
		FileName    string `json:"file_name,omitempty"`
		Fingerprint string `json:"fingerprint"`
	}{
		FileName:    fileName,
		Fingerprint: fingerprint,
	}
	return printJson(m.w, out)
}
