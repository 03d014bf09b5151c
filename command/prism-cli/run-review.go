// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/prismpapers/prismd/ledger"
	"github.com/prismpapers/prismd/review"
	"github.com/prismpapers/prismd/unit"
)

func runReview(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	paperAddress, err := checkAddress(c.String("paper"), ErrRequiredPaper)
	if nil != err {
		return err
	}

	// a zero reward is a valid request for recognition only
	reward := unit.FromString(c.String("reward"))

	privateKey, err := verifiedIdentity(m, c)
	if nil != err {
		return err
	}

	if err := openLedger(m, c); nil != err {
		return err
	}

	reviewer := privateKey.Account()
	txId, err := ledger.ReviewPaper(reviewer, paperAddress, c.String("url"), reward)
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		TxId   ledger.TxId `json:"txId"`
		Review string      `json:"review"`
	}{
		TxId:   txId,
		Review: review.AddressFor(reviewer, paperAddress).String(),
	})
	return nil
}
