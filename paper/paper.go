// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package paper - the research artifact registry
//
// one live paper per author identity, located at the address derived
// from the author; the price is fixed at creation
package paper

import (
	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/derivation"
	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/storage"
	"github.com/prismpapers/prismd/util"
)

// Seed - derivation namespace tag
const Seed = "paper"

// Record - a published research paper
//
// EncryptedURL and EncryptionKey are opaque to the ledger; they locate
// the encrypted content and its key handle for buyers
type Record struct {
	Author        *account.Account `json:"author"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Price         uint64           `json:"price"`
	Sales         uint64           `json:"sales"`
	Reviews       uint64           `json:"reviews"`
	EncryptedURL  string           `json:"encryptedUrl"`
	EncryptionKey string           `json:"encryptionKey"`
	Timestamp     int64            `json:"timestamp"`
}

// AddressFor - the paper address for an author
func AddressFor(author *account.Account) derivation.Address {
	return derivation.Derive(Seed, author.Bytes())
}

// Pack - flatten a record for storage
func (record *Record) Pack() []byte {
	buffer := util.AppendBytes(nil, record.Author.Bytes())
	buffer = util.AppendString(buffer, record.Title)
	buffer = util.AppendString(buffer, record.Description)
	buffer = util.AppendUint64(buffer, record.Price)
	buffer = util.AppendUint64(buffer, record.Sales)
	buffer = util.AppendUint64(buffer, record.Reviews)
	buffer = util.AppendString(buffer, record.EncryptedURL)
	buffer = util.AppendString(buffer, record.EncryptionKey)
	buffer = util.AppendUint64(buffer, uint64(record.Timestamp))
	return buffer
}

// Unpack - recover a record from its stored form
func Unpack(buffer []byte) (*Record, error) {
	authorBytes, n := util.UnpackBytes(buffer)
	if 0 == n {
		return nil, fault.ErrRecordTooShort
	}
	buffer = buffer[n:]

	author, err := account.AccountFromBytes(authorBytes)
	if nil != err {
		return nil, err
	}

	record := &Record{Author: author}

	if record.Title, n = util.UnpackString(buffer); 0 == n {
		return nil, fault.ErrRecordTooShort
	}
	buffer = buffer[n:]

	if record.Description, n = util.UnpackString(buffer); 0 == n {
		return nil, fault.ErrRecordTooShort
	}
	buffer = buffer[n:]

	values := [...]*uint64{
		&record.Price,
		&record.Sales,
		&record.Reviews,
	}
	for _, value := range values {
		if *value, n = util.UnpackUint64(buffer); 0 == n {
			return nil, fault.ErrRecordTooShort
		}
		buffer = buffer[n:]
	}

	if record.EncryptedURL, n = util.UnpackString(buffer); 0 == n {
		return nil, fault.ErrRecordTooShort
	}
	buffer = buffer[n:]

	if record.EncryptionKey, n = util.UnpackString(buffer); 0 == n {
		return nil, fault.ErrRecordTooShort
	}
	buffer = buffer[n:]

	timestamp, n := util.UnpackUint64(buffer)
	if 0 == n {
		return nil, fault.ErrRecordTooShort
	}
	record.Timestamp = int64(timestamp)

	return record, nil
}

// Exists - membership test on the registry
func Exists(trx storage.Transaction, address derivation.Address) bool {
	return trx.Has(storage.Pool.Papers, address[:])
}

// Fetch - read a paper from the registry
func Fetch(trx storage.Transaction, address derivation.Address) (*Record, error) {
	packed := trx.Get(storage.Pool.Papers, address[:])
	if nil == packed {
		return nil, fault.ErrPaperNotFound
	}
	return Unpack(packed)
}

// Store - write a paper to the registry
func Store(trx storage.Transaction, address derivation.Address, record *Record) {
	trx.Put(storage.Pool.Papers, address[:], record.Pack())
}
