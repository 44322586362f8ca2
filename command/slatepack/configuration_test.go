// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/lehnberg/slatepack/fault"
)

const testConfiguration = `-- test configuration
local M = {}

M.data_directory = "data"

M.armor = {
    word_length = 8,
    variant = "bare",
}

M.logging = {
    size = 2048,
    count = 3,
    levels = {
        watch = "debug",
    },
}

return M
`

func writeConfiguration(t *testing.T, dir string, content string) string {
	fileName := filepath.Join(dir, "slatepack.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, cleanup := setupTestDirectory(t)
	defer cleanup()

	err := os.Mkdir(filepath.Join(dir, "data"), 0700)
	assert.Nil(t, err, "mkdir error")

	conf, err := getConfiguration(writeConfiguration(t, dir, testConfiguration))
	assert.Nil(t, err, "get configuration error")

	dataDirectory := filepath.Join(dir, "data")
	assert.Equal(t, dataDirectory, conf.DataDirectory, "wrong data directory")
	assert.Equal(t, 8, conf.Armor.WordLength, "wrong word length")
	assert.Equal(t, "bare", conf.Armor.Variant, "wrong variant")
	assert.Equal(t, filepath.Join(dataDirectory, defaultLogDirectory), conf.Logging.Directory, "wrong log directory")
	assert.Equal(t, defaultLogFile, conf.Logging.File, "default log file lost")
	assert.Equal(t, 2048, conf.Logging.Size, "wrong log size")
	assert.Equal(t, 3, conf.Logging.Count, "wrong log count")
	assert.Equal(t, "debug", conf.Logging.Levels["watch"], "wrong watch level")
	assert.Equal(t, defaultLogLevel, conf.Logging.Levels[logger.DefaultTag], "default level lost")

	// defaults are not shared between reads
	again := defaultConfiguration()
	_, ok := again.Logging.Levels["watch"]
	assert.False(t, ok, "defaults modified")
}

func TestGetConfigurationDefaults(t *testing.T) {
	conf, err := getConfiguration("")
	assert.Nil(t, err, "get configuration error")

	wd, _ := os.Getwd()
	assert.Equal(t, wd, conf.DataDirectory, "wrong data directory")
	assert.Equal(t, 15, conf.Armor.WordLength, "wrong word length")
	assert.Equal(t, "qualified", conf.Armor.Variant, "wrong variant")
	assert.Equal(t, filepath.Join(wd, defaultLogDirectory), conf.Logging.Directory, "wrong log directory")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir, cleanup := setupTestDirectory(t)
	defer cleanup()

	_, err := getConfiguration(filepath.Join(dir, "missing.conf"))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "wrong missing file error")

	invalid := []struct {
		content  string
		expected error
	}{
		{"return { armor = { word_length = 0 } }", fault.ErrInvalidWordLength},
		{"return { armor = { word_length = 2000 } }", fault.ErrInvalidWordLength},
		{"return { armor = { variant = \"ascii\" } }", fault.ErrInvalidVariant},
	}
	for i, item := range invalid {
		_, err := getConfiguration(writeConfiguration(t, dir, item.content))
		assert.Equal(t, item.expected, err, "%d: wrong error", i)
	}

	failing := []string{
		"return { data_directory = \"absent\" }",
		"return { logging = { file = \"sub/slatepack.log\" } }",
		"return 42",
		"this is not lua",
	}
	for i, content := range failing {
		_, err := getConfiguration(writeConfiguration(t, dir, content))
		assert.NotNil(t, err, "%d: configuration accepted", i)
	}
}
