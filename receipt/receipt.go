// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package receipt - proofs of purchase
//
// one receipt per (buyer, paper) pair; the record is never mutated and
// its existence is the authorization token for reviewing the paper
package receipt

import (
	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/derivation"
	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/storage"
	"github.com/prismpapers/prismd/util"
)

// Seed - derivation namespace tag
const Seed = "receipt"

// Record - an access receipt
type Record struct {
	Buyer     *account.Account   `json:"buyer"`
	Paper     derivation.Address `json:"paper"`
	Timestamp int64              `json:"timestamp"`
}

// AddressFor - the receipt address for a (buyer, paper) pair
func AddressFor(buyer *account.Account, paperAddress derivation.Address) derivation.Address {
	return derivation.Derive(Seed, buyer.Bytes(), paperAddress[:])
}

// Pack - flatten a record for storage
func (record *Record) Pack() []byte {
	buffer := util.AppendBytes(nil, record.Buyer.Bytes())
	buffer = util.AppendBytes(buffer, record.Paper[:])
	buffer = util.AppendUint64(buffer, uint64(record.Timestamp))
	return buffer
}

// Unpack - recover a record from its stored form
func Unpack(buffer []byte) (*Record, error) {
	buyerBytes, n := util.UnpackBytes(buffer)
	if 0 == n {
		return nil, fault.ErrRecordTooShort
	}
	buffer = buffer[n:]

	buyer, err := account.AccountFromBytes(buyerBytes)
	if nil != err {
		return nil, err
	}

	paperBytes, n := util.UnpackBytes(buffer)
	if 0 == n || derivation.AddressLength != len(paperBytes) {
		return nil, fault.ErrRecordTooShort
	}
	buffer = buffer[n:]

	record := &Record{Buyer: buyer}
	copy(record.Paper[:], paperBytes)

	timestamp, n := util.UnpackUint64(buffer)
	if 0 == n {
		return nil, fault.ErrRecordTooShort
	}
	record.Timestamp = int64(timestamp)

	return record, nil
}

// Exists - membership test on the ledger
func Exists(trx storage.Transaction, address derivation.Address) bool {
	return trx.Has(storage.Pool.Receipts, address[:])
}

// Fetch - read a receipt from the ledger
func Fetch(trx storage.Transaction, address derivation.Address) (*Record, error) {
	packed := trx.Get(storage.Pool.Receipts, address[:])
	if nil == packed {
		return nil, fault.ErrReceiptNotFound
	}
	return Unpack(packed)
}

// Store - write a receipt to the ledger
func Store(trx storage.Transaction, address derivation.Address, record *Record) {
	trx.Put(storage.Pool.Receipts, address[:], record.Pack())
}
