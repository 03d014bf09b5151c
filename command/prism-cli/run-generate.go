// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/prismpapers/prismd/account"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := account.NewPrivateKey(m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "privateKey: %#v\n", privateKey)
	}

	printJson(m.w, struct {
		Account    string `json:"account"`
		PrivateKey string `json:"private_key"`
	}{
		Account:    privateKey.Account().String(),
		PrivateKey: privateKey.String(),
	})
	return nil
}
