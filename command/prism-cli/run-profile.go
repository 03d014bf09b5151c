// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/prismpapers/prismd/profile"
	"github.com/prismpapers/prismd/storage"
)

func runProfile(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := identityAccount(m, c, c.String("owner"))
	if nil != err {
		return err
	}

	if err := openLedger(m, c); nil != err {
		return err
	}

	trx := storage.NewDBTransaction()
	defer trx.Abort()

	record, err := profile.Fetch(trx, profile.AddressFor(owner))
	if nil != err {
		return err
	}

	printJson(m.w, record)
	return nil
}
