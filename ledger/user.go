// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/constants"
	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/profile"
	"github.com/prismpapers/prismd/storage"
	"github.com/prismpapers/prismd/vault"
)

// InitUser - create a profile and its empty vault for an identity
func InitUser(owner *account.Account, name string) (TxId, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return TxId{}, fault.ErrNotInitialised
	}

	if 0 == len(name) || len(name) > constants.NameMaximumLength {
		return TxId{}, fault.ErrNameTooLong
	}

	profileAddress := profile.AddressFor(owner)
	vaultAddress := vault.AddressForOwner(owner)

	trx := storage.NewDBTransaction()
	if profile.Exists(trx, profileAddress) {
		return TxId{}, fault.ErrAlreadyInitialised
	}

	profile.Store(trx, profileAddress, &profile.Record{
		Owner:     owner,
		Name:      name,
		Timestamp: time.Now().Unix(),
	})
	vault.Create(trx, vaultAddress)

	if err := trx.Commit(); nil != err {
		return TxId{}, err
	}

	globalData.log.Infof("init-user: %s as %q", owner, name)
	return newTxId("init-user", owner.Bytes(), []byte(name)), nil
}
