// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/prismpapers/prismd/derivation"
	"github.com/prismpapers/prismd/paper"
	"github.com/prismpapers/prismd/storage"
)

func runPaper(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	// either a direct address or an author identity name
	var paperAddress derivation.Address
	if hexAddress := c.String("paper"); "" != hexAddress {
		address, err := checkAddress(hexAddress, ErrRequiredPaper)
		if nil != err {
			return err
		}
		paperAddress = address
	} else {
		author, err := identityAccount(m, c, c.String("author"))
		if nil != err {
			return err
		}
		paperAddress = paper.AddressFor(author)
	}

	if err := openLedger(m, c); nil != err {
		return err
	}

	trx := storage.NewDBTransaction()
	defer trx.Abort()

	record, err := paper.Fetch(trx, paperAddress)
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		Address string        `json:"address"`
		Record  *paper.Record `json:"record"`
	}{
		Address: paperAddress.String(),
		Record:  record,
	})
	return nil
}
