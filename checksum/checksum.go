// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package checksum - the four byte error check code carried in front
// of every armored payload
package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// Length - number of bytes in a check code
const Length = 4

// Bytes - to hold a check code
type Bytes [Length]byte

// Generate - first four bytes of SHA256(SHA256(payload))
func Generate(payload []byte) Bytes {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])

	var check Bytes
	copy(check[:], second[:Length])
	return check
}

// FromSlice - copy the leading Length bytes of a buffer
//
// returns false if the buffer is too short
func FromSlice(buffer []byte) (Bytes, bool) {
	var check Bytes
	if len(buffer) < Length {
		return check, false
	}
	copy(check[:], buffer[:Length])
	return check, true
}

// Equal - compare two check codes
func (check Bytes) Equal(other Bytes) bool {
	return bytes.Equal(check[:], other[:])
}

// String - hex form for display
func (check Bytes) String() string {
	return hex.EncodeToString(check[:])
}

// MarshalText - hex form for JSON output
func (check Bytes) MarshalText() ([]byte, error) {
	return []byte(check.String()), nil
}
