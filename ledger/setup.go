// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/constants"
	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/storage"
	"github.com/prismpapers/prismd/vault"
	"github.com/prismpapers/prismd/wallet"
)

// Configuration - operational settings for the dispatcher
type Configuration struct {
	Admins          []*account.Account // identities allowed to drain the platform vault
	FeeBasisPoints  uint64             // platform share of every purchase
	WithdrawalFloor uint64             // non-withdrawable reserve per vault
	Funds           wallet.Source      // the external funding boundary
}

// globals
var globalData struct {
	sync.Mutex
	log             *logger.L
	admins          map[string]struct{}
	feeBasisPoints  uint64
	withdrawalFloor uint64
	funds           wallet.Source
	sequence        uint64

	// set once during initialise
	initialised bool
}

// Initialise - set up the dispatcher
//
// creates the platform vault if this is the first start of the ledger
func Initialise(configuration Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if configuration.FeeBasisPoints > constants.MaximumFeeBasisPoints {
		return fault.ErrInvalidFeeBasisPoints
	}
	if nil == configuration.Funds {
		return fault.ErrNotInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	globalData.admins = make(map[string]struct{})
	for _, admin := range configuration.Admins {
		globalData.admins[string(admin.Bytes())] = struct{}{}
	}
	globalData.feeBasisPoints = configuration.FeeBasisPoints
	globalData.withdrawalFloor = configuration.WithdrawalFloor
	globalData.funds = configuration.Funds
	globalData.sequence = 0

	// platform genesis: the single shared vault
	platform := vault.PlatformAddress()
	trx := storage.NewDBTransaction()
	if !vault.Exists(trx, platform) {
		vault.Create(trx, platform)
		if err := trx.Commit(); nil != err {
			return err
		}
		globalData.log.Infof("created platform vault: %s", platform)
	}

	globalData.initialised = true
	return nil
}

// Finalise - shut down the dispatcher
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.funds = nil
	globalData.admins = nil
	globalData.initialised = false
	return nil
}

// isAdmin - membership test on the configured admin set
func isAdmin(caller *account.Account) bool {
	_, ok := globalData.admins[string(caller.Bytes())]
	return ok
}
