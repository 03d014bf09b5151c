// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/prismpapers/prismd/unit"
)

func runDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	// the live network funds wallets by external payment only
	if !m.testnet {
		return ErrNotTestNetwork
	}

	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}

	owner, err := identityAccount(m, c, "")
	if nil != err {
		return err
	}

	if err := openLedger(m, c); nil != err {
		return err
	}

	if err := m.funds.Deposit(owner, amount); nil != err {
		return err
	}

	printJson(m.w, struct {
		Account string `json:"account"`
		Balance string `json:"balance"`
	}{
		Account: owner.String(),
		Balance: unit.String(m.funds.Balance(owner)),
	})
	return nil
}
