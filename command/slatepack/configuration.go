// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/lehnberg/slatepack/armor"
	"github.com/lehnberg/slatepack/configuration"
	"github.com/lehnberg/slatepack/fault"
	"github.com/lehnberg/slatepack/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "slatepack.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// level for any tag the configuration does not list
const defaultLogLevel = "info"

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Armor         armor.Configuration  `gluamapper:"armor" json:"armor"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {

	// fresh map each time as the parser merges into it
	levels := LoglevelMap{
		logger.DefaultTag: defaultLogLevel,
	}

	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Armor:         armor.DefaultConfiguration(),
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
//
// a blank file name gives the defaults relative to the current
// directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	// absolute path to the main directory
	baseDirectory := ""

	if "" == configurationFileName {
		wd, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		baseDirectory = wd
	} else {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		if !util.EnsureFileExists(fileName) {
			return nil, fault.ErrNotFoundConfigFile
		}

		baseDirectory, _ = filepath.Split(fileName)

		if err := configuration.ParseConfigurationFile(fileName, options); nil != err {
			return nil, err
		}
	}

	if err := options.Armor.Validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	}
	options.DataDirectory = util.EnsureAbsolute(baseDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)

	// done
	return options, nil
}
