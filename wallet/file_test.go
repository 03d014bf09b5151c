// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/wallet"
)

func TestFileSource(t *testing.T) {
	privateKey, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("key generation error: %s", err)
	}
	owner := privateKey.Account()

	directory, err := ioutil.TempDir("", "wallet-test")
	if nil != err {
		t.Fatalf("tempdir error: %s", err)
	}
	defer os.RemoveAll(directory)

	fileName := filepath.Join(directory, "funds.json")

	f, err := wallet.NewFile(fileName)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	if 0 != f.Balance(owner) {
		t.Fatal("fresh wallet must be empty")
	}

	if err := f.Deposit(owner, 1500); nil != err {
		t.Fatalf("deposit error: %s", err)
	}
	if err := f.Debit(owner, 500); nil != err {
		t.Fatalf("debit error: %s", err)
	}
	if err := f.Debit(owner, 1001); fault.ErrInsufficientFunds != err {
		t.Fatalf("overdraw error: %v  expected: %v", err, fault.ErrInsufficientFunds)
	}
	f.Credit(owner, 100)
	if 1100 != f.Balance(owner) {
		t.Fatalf("balance: %d  expected: 1100", f.Balance(owner))
	}

	// balances must survive a reload
	g, err := wallet.NewFile(fileName)
	if nil != err {
		t.Fatalf("reload error: %s", err)
	}
	if 1100 != g.Balance(owner) {
		t.Fatalf("reloaded balance: %d  expected: 1100", g.Balance(owner))
	}
}
