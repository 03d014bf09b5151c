// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"sync"

	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/fault"
)

// File - a funding source persisted as a JSON file
//
// balances are keyed by the textual account representation so the
// file stays readable; every mutation rewrites the whole file.
// suitable for a single local process only.
type File struct {
	sync.Mutex
	fileName string
	balances map[string]uint64
}

// NewFile - load a funding source from a file, creating an empty
// one if the file does not exist yet
func NewFile(fileName string) (*File, error) {
	f := &File{
		fileName: fileName,
		balances: make(map[string]uint64),
	}

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &f.balances); nil != err {
		return nil, err
	}
	return f, nil
}

// write the current balances, caller must hold the lock
func (f *File) save() error {
	data, err := json.MarshalIndent(f.balances, "", "  ")
	if nil != err {
		return err
	}

	tempFile := f.fileName + ".new"
	if err := ioutil.WriteFile(tempFile, data, 0o600); nil != err {
		return err
	}
	return os.Rename(tempFile, f.fileName)
}

// Balance - funds currently available to an identity
func (f *File) Balance(owner *account.Account) uint64 {
	f.Lock()
	defer f.Unlock()
	return f.balances[owner.String()]
}

// Debit - take funds from an identity
func (f *File) Debit(owner *account.Account, amount uint64) error {
	f.Lock()
	defer f.Unlock()

	key := owner.String()
	if f.balances[key] < amount {
		return fault.ErrInsufficientFunds
	}
	f.balances[key] -= amount
	return f.save()
}

// Credit - pay funds out to an identity
func (f *File) Credit(owner *account.Account, amount uint64) {
	f.Lock()
	defer f.Unlock()

	f.balances[owner.String()] += amount

	// the in-memory balance stays correct if the write fails and
	// the next debit reports the save error
	_ = f.save()
}

// Deposit - add external funds to an identity
func (f *File) Deposit(owner *account.Account, amount uint64) error {
	f.Lock()
	defer f.Unlock()

	f.balances[owner.String()] += amount
	return f.save()
}
