// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/prismpapers/prismd/ledger"
)

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	paperAddress, err := checkAddress(c.String("paper"), ErrRequiredPaper)
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

	txId, err := ledger.UpdateResearch(
		privateKey.Account(),
		paperAddress,
		c.String("title"),
		c.String("description"),
		c.String("url"),
		c.String("key"),
	)
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		TxId ledger.TxId `json:"txId"`
	}{
		TxId: txId,
	})
	return nil
}
