// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// receive-only identities store just the public account
	if acc := c.String("account"); "" != acc {
		if err := m.config.AddReceiveOnlyIdentity(name, description, acc); nil != err {
			return err
		}
		m.config.DefaultIdentity = name
		m.save = true
		return nil
	}

	privateKey, err := checkPrivateKey(c.String("privateKey"), m.testnet)
	if nil != err {
		return err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	}

	err = m.config.AddIdentity(name, description, privateKey, password)
	if nil != err {
		return err
	}

	m.config.DefaultIdentity = name
	m.save = true

	return nil
}
