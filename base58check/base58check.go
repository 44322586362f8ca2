// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base58check - modified Base58Check encoding
//
// unlike the Bitcoin form the check code is placed in front of the
// data:
//
//   Base58( SHA256(SHA256(payload))[0:4] ++ payload )
package base58check

import (
	"github.com/mr-tron/base58"

	"github.com/lehnberg/slatepack/checksum"
	"github.com/lehnberg/slatepack/fault"
)

// Encode - prefix the check code and convert to Base58
func Encode(payload []byte) string {
	check := checksum.Generate(payload)

	buffer := make([]byte, 0, checksum.Length+len(payload))
	buffer = append(buffer, check[:]...)
	buffer = append(buffer, payload...)

	return base58.Encode(buffer)
}

// Decode - convert from Base58 and split off the check code
//
// the check code is not verified here, the caller must compare it
// against checksum.Generate of the returned payload
func Decode(encoded string) (checksum.Bytes, []byte, error) {
	var check checksum.Bytes

	if "" == encoded {
		return check, nil, fault.ErrInvalidEncoding
	}

	buffer, err := base58.Decode(encoded)
	if nil != err {
		return check, nil, fault.ErrInvalidEncoding
	}

	check, ok := checksum.FromSlice(buffer)
	if !ok {
		return check, nil, fault.ErrInvalidEncoding
	}

	return check, buffer[checksum.Length:], nil
}
