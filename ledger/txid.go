// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/prismpapers/prismd/util"
)

// TxIdLength - size of a transaction identifier
const TxIdLength = 32

// TxId - the opaque success token returned by every operation
type TxId [TxIdLength]byte

// String - hex form for use by the fmt package (for %s)
func (txId TxId) String() string {
	return hex.EncodeToString(txId[:])
}

// GoString - hex form for use by the fmt package (for %#v)
func (txId TxId) GoString() string {
	return "<txid:" + hex.EncodeToString(txId[:]) + ">"
}

// MarshalText - hex form for JSON encoding
func (txId TxId) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(txId)))
	hex.Encode(buffer, txId[:])
	return buffer, nil
}

// compute the identifier for an applied operation
//
// the per-process sequence number makes repeated identical operations,
// such as two equal withdrawals, yield distinct identifiers
func newTxId(operation string, fields ...[]byte) TxId {
	globalData.sequence += 1

	buffer := util.AppendString(nil, operation)
	for _, field := range fields {
		buffer = util.AppendBytes(buffer, field)
	}
	buffer = util.AppendUint64(buffer, globalData.sequence)
	return TxId(sha3.Sum256(buffer))
}
