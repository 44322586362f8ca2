// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/lehnberg/slatepack/armor"
)

// colours
const (
	keyColour   = "\033[1;36m"
	valColour   = "\033[1;33m"
	errorColour = "\033[1;31m"
	endColour   = "\033[0m"
)

type inspector interface {
	Inspect(text string) (*armor.Result, error)
}

type dumper struct {
	codec  inspector
	hex    bool
	colour bool
}

// print the frame details and payload of one armored text
func (d *dumper) dump(w io.Writer, name string, text []byte) error {
	result, err := d.codec.Inspect(string(text))
	if nil != err {
		return err
	}

	d.line(w, "file", "%q", name)
	d.line(w, "variant", "%s", result.Frame.Variant)
	if "" != result.Frame.Format {
		d.line(w, "format", "%s", result.Frame.Format)
	}
	d.line(w, "checksum", "%s", result.Checksum)
	d.line(w, "encoded", "%d characters", result.EncodedLength)
	d.line(w, "payload", "%d bytes", len(result.Payload))

	if d.hex || !utf8.Valid(result.Payload) {
		fmt.Fprint(w, hex.Dump(result.Payload))
	} else {
		fmt.Fprintf(w, "%s\n", result.Payload)
	}
	return nil
}

func (d *dumper) failure(w io.Writer, name string, err error) {
	if d.colour {
		fmt.Fprintf(w, "%s%s%s: %q  %s\n", errorColour, "error", endColour, name, err)
		return
	}
	fmt.Fprintf(w, "error: %q  %s\n", name, err)
}

func (d *dumper) line(w io.Writer, key string, format string, arguments ...interface{}) {
	value := fmt.Sprintf(format, arguments...)
	if d.colour {
		fmt.Fprintf(w, "%s%10s%s: %s%s%s\n", keyColour, key, endColour, valColour, value, endColour)
		return
	}
	fmt.Fprintf(w, "%10s: %s\n", key, value)
}
