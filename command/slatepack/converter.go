// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/lehnberg/slatepack/armor"
	"github.com/lehnberg/slatepack/util"
)

// file name extensions handled by the converter
const (
	slateExtension    = ".slate"
	armoredExtension  = ".slatepack"
	convertedFileMode = 0600
)

// Converter - turn one file into its counterpart
type Converter interface {
	Convert(fileName string) (string, bool, error)
}

type converter struct {
	armorer armor.Armorer
	log     *logger.L
}

func newConverter(armorer armor.Armorer, log *logger.L) Converter {
	return &converter{
		armorer: armorer,
		log:     log,
	}
}

// Convert - armor a slate file or dearmor a slatepack file
//
// returns the name of the file written and whether a conversion took
// place; the target is only written when it is missing or older than
// the source and it is given the source's modification time so that
// the reverse conversion is not triggered
func (c *converter) Convert(fileName string) (string, bool, error) {

	var target string
	switch filepath.Ext(fileName) {
	case slateExtension:
		target = util.ReplaceExtension(fileName, armoredExtension)
	case armoredExtension:
		target = util.ReplaceExtension(fileName, slateExtension)
	default:
		return "", false, nil
	}

	source, err := os.Stat(fileName)
	if nil != err {
		return "", false, err
	}
	if !source.Mode().IsRegular() {
		return "", false, nil
	}

	if existing, err := os.Stat(target); nil == err && !existing.ModTime().Before(source.ModTime()) {
		c.log.Debugf("skip: %q is up to date", target)
		return target, false, nil
	}

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return "", false, err
	}

	var converted []byte
	if slateExtension == filepath.Ext(fileName) {
		armored, err := c.armorer.Armor(data)
		if nil != err {
			return "", false, err
		}
		converted = []byte(armored + "\n")
	} else {
		payload, err := c.armorer.Dearmor(string(data))
		if nil != err {
			return "", false, err
		}
		converted = payload
	}

	if err := ioutil.WriteFile(target, converted, convertedFileMode); nil != err {
		return "", false, err
	}
	if err := os.Chtimes(target, source.ModTime(), source.ModTime()); nil != err {
		return "", false, err
	}

	c.log.Infof("converted: %q -> %q  %d bytes", fileName, target, len(converted))
	return target, true, nil
}
