// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package unit - token amounts in base units
//
// token amounts are stored and moved as integer base units with nine
// decimal places; conversion to and from the human decimal form only
// happens at the edges.
package unit

import (
	"strconv"
	"strings"
)

// decimal places in the token
const Decimals = 9

// base units in one whole token
const PerToken = uint64(1_000_000_000)

// FromString - convert a decimal token string to base units
//
// i.e. "0.000000001" will convert to uint64(1)
//
// Note: Invalid characters are simply ignored and the conversion
//       simply stops after 9 decimal places have been processed.
//       Extra decimal points will also be ignored.
func FromString(token string) uint64 {

	u := uint64(0)
	point := false
	decimals := 0

get_digits:
	for _, b := range []byte(token) {
		if b >= '0' && b <= '9' {
			u *= 10
			u += uint64(b - '0')
			if point {
				decimals += 1
				if decimals >= Decimals {
					break get_digits
				}
			}
		} else if '.' == b {
			point = true
		}
	}
	for decimals < Decimals {
		u *= 10
		decimals += 1
	}

	return u
}

// String - convert base units to a decimal token string
//
// trailing zeros after the decimal point are trimmed and whole
// amounts carry no decimal point at all
func String(baseUnits uint64) string {
	whole := baseUnits / PerToken
	fraction := baseUnits % PerToken

	if 0 == fraction {
		return strconv.FormatUint(whole, 10)
	}

	s := strconv.FormatUint(whole, 10) + "." +
		strings.TrimRight(
			strconv.FormatUint(PerToken+fraction, 10)[1:],
			"0",
		)
	return s
}
