// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/util"
)

// limits
const (
	AddressLength = 32
)

// Address - the derived location of a ledger entity
// stored as a byte array
// represented as hex text for JSON encoding
// to get bytes value just use address[:]
type Address [AddressLength]byte

// Derive - compute the address for a namespace tag and input tuple
//
// SHA3-256 over the varint length prefixed namespace and inputs
func Derive(namespace string, inputs ...[]byte) Address {
	buffer := append(util.ToVarint64(uint64(len(namespace))), namespace...)
	for _, input := range inputs {
		buffer = append(buffer, util.ToVarint64(uint64(len(input)))...)
		buffer = append(buffer, input...)
	}
	return Address(sha3.Sum256(buffer))
}

// String - convert a binary address to hex string for use by the fmt package (for %s)
func (address Address) String() string {
	return hex.EncodeToString(address[:])
}

// GoString - convert a binary address to hex string for use by the fmt package (for %#v)
func (address Address) GoString() string {
	return "<address:" + hex.EncodeToString(address[:]) + ">"
}

// Scan - convert a hex text representation to an address for use by the format package scan routines
func (address *Address) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(AddressLength) {
		return fault.ErrCannotDecodeAccount
	}

	byteCount, err := hex.Decode(address[:], token)
	if nil != err {
		return err
	}
	if AddressLength != byteCount {
		return fault.ErrCannotDecodeAccount
	}
	return nil
}

// MarshalText - convert an address to hex text
func (address Address) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(address)))
	hex.Encode(buffer, address[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an address
func (address *Address) UnmarshalText(s []byte) error {
	if len(address) != hex.DecodedLen(len(s)) {
		return fault.ErrCannotDecodeAccount
	}
	byteCount, err := hex.Decode(address[:], s)
	if nil != err {
		return err
	}
	if AddressLength != byteCount {
		return fault.ErrCannotDecodeAccount
	}
	return nil
}

// IsZero - true if the address is all zero bytes
func (address Address) IsZero() bool {
	for _, b := range address {
		if 0 != b {
			return false
		}
	}
	return true
}
