// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/lehnberg/slatepack/background"
	"github.com/lehnberg/slatepack/counter"
)

const (
	watcherLoggerPrefix   = "watch"
	converterLoggerPrefix = "convert"
	codecLoggerPrefix     = "armor"
)

// DirectoryWatcher - feed file events from one directory to a converter
type DirectoryWatcher interface {
	Start() error
	Stop()
	Counts() (converted uint64, failed uint64)
}

type directoryWatcher struct {
	log       *logger.L
	watcher   *fsnotify.Watcher
	converter Converter
	directory string
	processes *background.T
	converted counter.Counter
	failed    counter.Counter
}

func newDirectoryWatcher(directory string, converter Converter, log *logger.L) (DirectoryWatcher, error) {
	directory, err := filepath.Abs(filepath.Clean(directory))
	if nil != err {
		return nil, err
	}

	if _, err := checkDirectory(directory); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &directoryWatcher{
		log:       log,
		watcher:   watcher,
		converter: converter,
		directory: directory,
	}, nil
}

// Start - begin watching; events are handled on a single goroutine
func (w *directoryWatcher) Start() error {
	err := w.watcher.Add(w.directory)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	w.log.Infof("watching: %q", w.directory)

	w.processes = background.Start(background.Processes{w}, nil)

	return nil
}

// Stop - end the event loop and release the watcher
func (w *directoryWatcher) Stop() {
	if nil != w.processes {
		w.processes.Stop()
	}
	_ = w.watcher.Close()
	w.log.Infof("stopped: converted: %d  failed: %d", w.converted.Uint64(), w.failed.Uint64())
}

// Counts - conversions done and failed since start
func (w *directoryWatcher) Counts() (uint64, uint64) {
	return w.converted.Uint64(), w.failed.Uint64()
}

// Run - background event loop
func (w *directoryWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !watcherEventFileChange(event) {
				continue
			}
			w.log.Debugf("file event: %s", event)
			target, converted, err := w.converter.Convert(event.Name)
			if nil != err {
				// a partly written file fails here and is retried on its next write event
				w.failed.Increment()
				w.log.Warnf("convert: %q error: %s", event.Name, err)
			} else if converted {
				w.converted.Increment()
				w.log.Debugf("wrote: %q", target)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Write == fsnotify.Write
}
