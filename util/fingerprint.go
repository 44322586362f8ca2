// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"

	"golang.org/x/crypto/sha3"
)

// version byte prefix for a fingerprint
const fingerprintVersion byte = 0x01

// Fingerprint - versioned SHA3-512 of a payload in hex
//
// same form as the fingerprint of a file in the desktop app
func Fingerprint(payload []byte) string {
	digest := sha3.Sum512(payload)
	return fmt.Sprintf("%02x%x", fingerprintVersion, digest)
}
