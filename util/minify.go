// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"bytes"
	"encoding/json"
)

// MinifyJSON - remove insignificant whitespace from JSON text
//
// the value is not re-encoded so key order and number formatting
// are preserved exactly
func MinifyJSON(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	if err := json.Compact(&buffer, data); nil != err {
		return nil, err
	}
	return buffer.Bytes(), nil
}
