// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/prismpapers/prismd/ledger"
	"github.com/prismpapers/prismd/unit"
)

func runWithdraw(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}

	privateKey, err := verifiedIdentity(m, c)
	if nil != err {
		return err
	}

	if err := openLedger(m, c); nil != err {
		return err
	}

	caller := privateKey.Account()

	var txId ledger.TxId
	if c.Bool("platform") {
		txId, err = ledger.AdminWithdraw(caller, amount)
	} else {
		txId, err = ledger.UserWithdraw(caller, amount)
	}
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		TxId   ledger.TxId `json:"txId"`
		Amount string      `json:"amount"`
	}{
		TxId:   txId,
		Amount: unit.String(amount),
	})
	return nil
}
