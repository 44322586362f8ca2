// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/lehnberg/slatepack/fault"
)

// common errors - keep in alphabetic order
const (
	ErrFileExists        = fault.ExistsError("output file already exists")
	ErrNotADirectory     = fault.InvalidError("not a directory")
	ErrRequiredDirectory = fault.InvalidError("directory is required")
)
