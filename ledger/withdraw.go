// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/storage"
	"github.com/prismpapers/prismd/vault"
)

// UserWithdraw - move funds from the caller's vault back to external funds
//
// the configured withdrawal floor must remain in the vault afterwards
func UserWithdraw(caller *account.Account, amount uint64) (TxId, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return TxId{}, fault.ErrNotInitialised
	}
	if 0 == amount {
		return TxId{}, fault.ErrInvalidAmount
	}

	trx := storage.NewDBTransaction()

	address := vault.AddressForOwner(caller)
	if err := vault.Debit(trx, address, amount, globalData.withdrawalFloor); nil != err {
		return TxId{}, err
	}

	if err := trx.Commit(); nil != err {
		return TxId{}, err
	}
	globalData.funds.Credit(caller, amount)

	globalData.log.Infof("user-withdraw: %s took %d", caller, amount)
	return newTxId("user-withdraw", caller.Bytes(), address[:]), nil
}

// AdminWithdraw - move funds from the platform vault to an admin
//
// only identities in the configured admin set may call this
func AdminWithdraw(caller *account.Account, amount uint64) (TxId, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return TxId{}, fault.ErrNotInitialised
	}
	if !isAdmin(caller) {
		return TxId{}, fault.ErrUnauthorized
	}
	if 0 == amount {
		return TxId{}, fault.ErrInvalidAmount
	}

	trx := storage.NewDBTransaction()

	address := vault.PlatformAddress()
	if err := vault.Debit(trx, address, amount, 0); nil != err {
		return TxId{}, err
	}

	if err := trx.Commit(); nil != err {
		return TxId{}, err
	}
	globalData.funds.Credit(caller, amount)

	globalData.log.Infof("admin-withdraw: %s took %d", caller, amount)
	return newTxId("admin-withdraw", caller.Bytes(), address[:]), nil
}
