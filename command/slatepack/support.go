// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"io/ioutil"
	"os"
)

// read all of a file, or of the default reader when no file is given
func readInput(fileName string, r io.Reader) ([]byte, error) {
	if "" == fileName || "-" == fileName {
		return ioutil.ReadAll(r)
	}
	return ioutil.ReadFile(fileName)
}

// write to a new file, or to the default writer when no file is given
//
// an existing file is never overwritten
func writeOutput(fileName string, w io.Writer, data []byte) error {
	if "" == fileName || "-" == fileName {
		_, err := w.Write(data)
		return err
	}

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		if os.IsExist(err) {
			return ErrFileExists
		}
		return err
	}

	_, err = f.Write(data)
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	return err
}

// check that a path names an existing directory
func checkDirectory(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredDirectory
	}
	info, err := os.Stat(name)
	if nil != err {
		return "", err
	}
	if !info.IsDir() {
		return "", ErrNotADirectory
	}
	return name, nil
}
