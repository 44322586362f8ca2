// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/lehnberg/slatepack/armor"
	"github.com/lehnberg/slatepack/fault"
)

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	directory := c.String("directory")
	if "" == directory {
		directory = m.config.DataDirectory
	}
	directory, err := checkDirectory(directory)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "watching: %q\n", directory)
		fmt.Fprintf(m.e, "log directory: %q\n", m.config.Logging.Directory)
	}

	// start logging
	if err := os.MkdirAll(m.config.Logging.Directory, 0700); nil != err {
		return err
	}
	if err := logger.Initialise(m.config.Logging); nil != err {
		return err
	}
	defer logger.Finalise()

	if err := fault.Initialise(); nil != err {
		return err
	}
	defer fault.Finalise()

	log := logger.New(watcherLoggerPrefix)
	log.Info("starting…")
	log.Infof("version: %s", version)
	defer log.Info("shutting down…")

	// the watch codec logs, the one from setup does not
	codec, err := armor.New(&m.config.Armor, logger.New(codecLoggerPrefix))
	fault.PanicIfError("armor codec", err)

	conv := newConverter(codec, logger.New(converterLoggerPrefix))
	watcher, err := newDirectoryWatcher(directory, conv, log)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}

	// wait for termination
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	fmt.Fprintf(m.e, "\nreceived signal: %v\n", sig)

	watcher.Stop()

	return nil
}
