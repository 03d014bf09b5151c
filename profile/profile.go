// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package profile - one participant record per owning identity
package profile

import (
	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/derivation"
	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/storage"
	"github.com/prismpapers/prismd/util"
)

// Seed - derivation namespace tag
const Seed = "user"

// Record - a participant profile
//
// the counters are lifetime statistics; Earning accumulates the author
// and reviewer shares credited to the owner's vault
type Record struct {
	Owner     *account.Account `json:"owner"`
	Name      string           `json:"name"`
	Published uint64           `json:"published"`
	Purchased uint64           `json:"purchased"`
	Sold      uint64           `json:"sold"`
	Reviewed  uint64           `json:"reviewed"`
	Earning   uint64           `json:"earning"`
	Timestamp int64            `json:"timestamp"`
}

// AddressFor - the profile address for an identity
func AddressFor(owner *account.Account) derivation.Address {
	return derivation.Derive(Seed, owner.Bytes())
}

// Pack - flatten a record for storage
func (record *Record) Pack() []byte {
	buffer := util.AppendBytes(nil, record.Owner.Bytes())
	buffer = util.AppendString(buffer, record.Name)
	buffer = util.AppendUint64(buffer, record.Published)
	buffer = util.AppendUint64(buffer, record.Purchased)
	buffer = util.AppendUint64(buffer, record.Sold)
	buffer = util.AppendUint64(buffer, record.Reviewed)
	buffer = util.AppendUint64(buffer, record.Earning)
	buffer = util.AppendUint64(buffer, uint64(record.Timestamp))
	return buffer
}

// Unpack - recover a record from its stored form
func Unpack(buffer []byte) (*Record, error) {
	ownerBytes, n := util.UnpackBytes(buffer)
	if 0 == n {
		return nil, fault.ErrRecordTooShort
	}
	buffer = buffer[n:]

	owner, err := account.AccountFromBytes(ownerBytes)
	if nil != err {
		return nil, err
	}

	record := &Record{Owner: owner}

	if record.Name, n = util.UnpackString(buffer); 0 == n {
		return nil, fault.ErrRecordTooShort
	}
	buffer = buffer[n:]

	values := [...]*uint64{
		&record.Published,
		&record.Purchased,
		&record.Sold,
		&record.Reviewed,
		&record.Earning,
	}
	for _, value := range values {
		if *value, n = util.UnpackUint64(buffer); 0 == n {
			return nil, fault.ErrRecordTooShort
		}
		buffer = buffer[n:]
	}

	timestamp, n := util.UnpackUint64(buffer)
	if 0 == n {
		return nil, fault.ErrRecordTooShort
	}
	record.Timestamp = int64(timestamp)

	return record, nil
}

// Exists - membership test on the registry
func Exists(trx storage.Transaction, address derivation.Address) bool {
	return trx.Has(storage.Pool.Profiles, address[:])
}

// Fetch - read a profile from the registry
func Fetch(trx storage.Transaction, address derivation.Address) (*Record, error) {
	packed := trx.Get(storage.Pool.Profiles, address[:])
	if nil == packed {
		return nil, fault.ErrProfileNotFound
	}
	return Unpack(packed)
}

// Store - write a profile to the registry
func Store(trx storage.Transaction, address derivation.Address, record *Record) {
	trx.Put(storage.Pool.Profiles, address[:], record.Pack())
}
