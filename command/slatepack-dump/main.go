// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/lehnberg/slatepack/armor"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "hex", HasArg: getoptions.NO_ARGUMENT, Short: 'x'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--hex] [--colour] FILE...", program)
	}

	verbose := len(options["verbose"]) > 0

	level := "critical"
	if verbose {
		level = "debug"
	}
	logging := logger.Configuration{
		Directory: ".",
		File:      "slatepack-dump.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	codec, err := armor.New(nil, logger.New("dump"))
	if nil != err {
		exitwithstatus.Message("%s: codec setup failed with error: %s", program, err)
	}

	d := dumper{
		codec:  codec,
		hex:    len(options["hex"]) > 0,
		colour: len(options["colour"]) > 0,
	}

	failed := 0
	for _, fileName := range arguments {
		text, err := ioutil.ReadFile(fileName)
		if nil == err {
			err = d.dump(os.Stdout, fileName, text)
		}
		if nil != err {
			failed += 1
			d.failure(os.Stdout, fileName, err)
		}
	}

	if failed > 0 {
		exitwithstatus.Exit(1)
	}
}
