// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - custody account balances
//
// a vault holds a non-negative balance in base units.  balances change
// only through Credit and Debit inside a storage transaction; there is no
// way to assign a balance directly, so every unit credited to one vault
// was debited from somewhere else or deposited from outside the ledger.
package vault

import (
	"encoding/binary"

	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/derivation"
	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/storage"
)

// derivation namespace tags
const (
	UserSeed     = "vault_user"
	PlatformSeed = "vault_admin"
)

// AddressForOwner - the vault address for a single identity
func AddressForOwner(owner *account.Account) derivation.Address {
	return derivation.Derive(UserSeed, owner.Bytes())
}

// PlatformAddress - the single platform vault address
func PlatformAddress() derivation.Address {
	return derivation.Derive(PlatformSeed)
}

// Exists - true if the vault record is present
func Exists(trx storage.Transaction, address derivation.Address) bool {
	return trx.Has(storage.Pool.Vaults, address[:])
}

// Create - allocate a vault with zero balance
//
// ignored if the vault already exists; creation never resets a balance
func Create(trx storage.Transaction, address derivation.Address) {
	if trx.Has(storage.Pool.Vaults, address[:]) {
		return
	}
	trx.PutN(storage.Pool.Vaults, address[:], 0)
}

// Balance - the current balance
//
// second value is false if the vault does not exist
func Balance(trx storage.Transaction, address derivation.Address) (uint64, bool) {
	return trx.GetN(storage.Pool.Vaults, address[:])
}

// Credit - add funds to an existing vault
//
// a credit that would wrap the balance is refused so the sum of all
// vaults stays exact
func Credit(trx storage.Transaction, address derivation.Address, amount uint64) error {
	balance, ok := trx.GetN(storage.Pool.Vaults, address[:])
	if !ok {
		return fault.ErrVaultNotFound
	}
	if balance+amount < balance {
		return fault.ErrBalanceOverflow
	}
	trx.PutN(storage.Pool.Vaults, address[:], balance+amount)
	return nil
}

// Debit - remove funds from an existing vault
//
// reserve is the non-withdrawable portion that must remain; zero for
// internal transfers, the configured floor for withdrawals
func Debit(trx storage.Transaction, address derivation.Address, amount uint64, reserve uint64) error {
	balance, ok := trx.GetN(storage.Pool.Vaults, address[:])
	if !ok {
		return fault.ErrVaultNotFound
	}
	if balance < amount || balance-amount < reserve {
		return fault.ErrInsufficientVaultBalance
	}
	trx.PutN(storage.Pool.Vaults, address[:], balance-amount)
	return nil
}

// Total - the sum of every vault balance
//
// used by the conservation checks and the database dump tool
func Total() (uint64, error) {
	total := uint64(0)
	start := []byte(nil)

	for {
		elements, err := storage.Pool.Vaults.Fetch(start, 100)
		if nil != err {
			return 0, err
		}
		if 0 == len(elements) {
			return total, nil
		}
		for _, element := range elements {
			total += binary.BigEndian.Uint64(element.Value[:8])
		}
		last := elements[len(elements)-1].Key
		start = append(append([]byte(nil), last...), 0x00)
	}
}
