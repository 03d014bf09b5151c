// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/prismpapers/prismd/storage"
	"github.com/prismpapers/prismd/unit"
	"github.com/prismpapers/prismd/vault"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := identityAccount(m, c, "")
	if nil != err {
		return err
	}

	if err := openLedger(m, c); nil != err {
		return err
	}

	trx := storage.NewDBTransaction()
	defer trx.Abort()

	vaultBalance, ok := vault.Balance(trx, vault.AddressForOwner(owner))
	if !ok {
		vaultBalance = 0
	}

	printJson(m.w, struct {
		Account string `json:"account"`
		Wallet  string `json:"wallet"`
		Vault   string `json:"vault"`
	}{
		Account: owner.String(),
		Wallet:  unit.String(m.funds.Balance(owner)),
		Vault:   unit.String(vaultBalance),
	})
	return nil
}
