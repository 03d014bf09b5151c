// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet_test

import (
	"testing"

	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/wallet"
)

func TestMemorySource(t *testing.T) {
	privateKey, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("key generation error: %s", err)
	}
	owner := privateKey.Account()

	m := wallet.NewMemory()
	if 0 != m.Balance(owner) {
		t.Fatal("fresh wallet must be empty")
	}

	m.Airdrop(owner, 1000)
	if 1000 != m.Balance(owner) {
		t.Fatalf("balance: %d  expected: 1000", m.Balance(owner))
	}

	if err := m.Debit(owner, 1001); fault.ErrInsufficientFunds != err {
		t.Fatalf("over-debit: %v  expected: insufficient funds", err)
	}
	if 1000 != m.Balance(owner) {
		t.Fatal("failed debit must not change the balance")
	}

	if err := m.Debit(owner, 400); nil != err {
		t.Fatalf("debit error: %s", err)
	}
	m.Credit(owner, 150)
	if 750 != m.Balance(owner) {
		t.Fatalf("balance: %d  expected: 750", m.Balance(owner))
	}
}
