// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/command/prism-cli/configuration"
	prismConfiguration "github.com/prismpapers/prismd/configuration"
	"github.com/prismpapers/prismd/derivation"
	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/ledger"
	"github.com/prismpapers/prismd/storage"
	"github.com/prismpapers/prismd/unit"
	"github.com/prismpapers/prismd/wallet"
)

// errors
var (
	ErrRequiredAmount      = fault.InvalidError("amount is required")
	ErrRequiredConfigFile  = fault.InvalidError("config file is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredPaper       = fault.InvalidError("paper address is required")
	ErrRequiredReview      = fault.InvalidError("review address is required")
	ErrNotTestNetwork      = fault.InvalidError("only available on test networks")
)

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// check if file exists, return true if it is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

// convert a hex flag to a derivation address
func checkAddress(hexAddress string, missing error) (derivation.Address, error) {
	if "" == hexAddress {
		return derivation.Address{}, missing
	}

	address := derivation.Address{}
	if err := address.UnmarshalText([]byte(hexAddress)); nil != err {
		return derivation.Address{}, err
	}
	return address, nil
}

// convert a decimal token flag to base units, zero is not allowed
func checkAmount(tokens string) (uint64, error) {
	if "" == tokens {
		return 0, ErrRequiredAmount
	}

	amount := unit.FromString(tokens)
	if 0 == amount {
		return 0, fault.ErrInvalidAmount
	}
	return amount, nil
}

// take a new private key or decode an existing one
func checkPrivateKey(privateKey string, testnet bool) (*account.PrivateKey, error) {
	if "" == privateKey {
		return account.NewPrivateKey(testnet)
	}
	return account.PrivateKeyFromBase58(privateKey)
}

// the identity name from the global flag or the configured default
func identityName(m *metadata, c *cli.Context) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}
	return checkName(name)
}

// the account of the selected identity, no password needed
func identityAccount(m *metadata, c *cli.Context, name string) (*account.Account, error) {
	if "" == name {
		n, err := identityName(m, c)
		if nil != err {
			return nil, err
		}
		name = n
	}
	return m.config.Account(name)
}

// unlock the selected identity, prompting for the password if the
// flag was not supplied
func verifiedIdentity(m *metadata, c *cli.Context) (*account.PrivateKey, error) {
	name, err := identityName(m, c)
	if nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword(name)
		if nil != err {
			return nil, err
		}
	}

	private, err := m.config.Private(password, name)
	if nil != err {
		return nil, err
	}
	return private.PrivateKey, nil
}

// openLedger - bring up storage and the dispatcher from the node
// configuration file for commands that touch the ledger
func openLedger(m *metadata, c *cli.Context) error {
	if m.opened {
		return nil
	}

	configurationFile := c.GlobalString("config")
	if "" == configurationFile {
		return ErrRequiredConfigFile
	}
	configurationFile = os.ExpandEnv(configurationFile)

	options, err := prismConfiguration.GetConfiguration(configurationFile)
	if nil != err {
		return err
	}

	if err := logger.Initialise(options.Logging); nil != err {
		return err
	}

	if err := storage.Initialise(filepath.Join(options.Database.Directory, options.Database.Name)); nil != err {
		return err
	}

	admins := make([]*account.Account, 0, len(options.Ledger.Admins))
	for _, admin := range options.Ledger.Admins {
		a, err := account.AccountFromBase58(admin)
		if nil != err {
			return fmt.Errorf("admin: %q error: %s", admin, err)
		}
		admins = append(admins, a)
	}

	funds, err := wallet.NewFile(filepath.Join(options.DataDirectory, "funds.json"))
	if nil != err {
		return err
	}
	m.funds = funds

	err = ledger.Initialise(ledger.Configuration{
		Admins:          admins,
		FeeBasisPoints:  options.Ledger.FeeBasisPoints,
		WithdrawalFloor: options.Ledger.WithdrawalFloor,
		Funds:           funds,
	})
	if nil != err {
		return err
	}

	m.opened = true
	return nil
}

// closeLedger - shut down whatever openLedger started
func closeLedger(m *metadata) {
	if !m.opened {
		return
	}
	ledger.Finalise()
	storage.Finalise()
	logger.Finalise()
	m.opened = false
}
