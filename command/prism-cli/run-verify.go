// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/prismpapers/prismd/ledger"
)

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	reviewAddress, err := checkAddress(c.String("review"), ErrRequiredReview)
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

	txId, err := ledger.VerifyReview(privateKey.Account(), reviewAddress, c.Bool("accept"))
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		TxId     ledger.TxId `json:"txId"`
		Accepted bool        `json:"accepted"`
	}{
		TxId:     txId,
		Accepted: c.Bool("accept"),
	})
	return nil
}
