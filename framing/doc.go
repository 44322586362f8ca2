// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package framing - header and footer tokens around an armored payload
//
// An armored message is three '.' terminated segments:
//
//   BEGIN SLATEPACK. <payload> . END SLATEPACK.
//
// The header and footer tokens are matched against a closed set of
// grammars, tried in a fixed order:
//
//   Qualified  BEGIN [FORMAT] SLATEPACK / END [FORMAT] SLATEPACK
//   Bare       BEGINSLATEPACK / ENDSLATEPACK
//
// Qualified is the form written for new output; Bare is accepted from
// older producers.  Any mix of the characters '>', '\n', '\r', '\t'
// and ' ' may surround the tokens.
package framing
