// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/prismpapers/prismd/ledger"
	"github.com/prismpapers/prismd/paper"
)

func runPublish(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	price, err := checkAmount(c.String("price"))
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

	author := privateKey.Account()
	txId, err := ledger.InitResearch(
		author,
		c.String("title"),
		c.String("description"),
		price,
		c.String("url"),
		c.String("key"),
	)
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		TxId  ledger.TxId `json:"txId"`
		Paper string      `json:"paper"`
	}{
		TxId:  txId,
		Paper: paper.AddressFor(author).String(),
	})
	return nil
}
