// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"math"
	"os"
	"testing"

	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/derivation"
	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/storage"
	"github.com/prismpapers/prismd/vault"
)

const databaseFileName = "vault-test.leveldb"

func setup(t *testing.T) {
	os.RemoveAll(databaseFileName)
	if err := storage.Initialise(databaseFileName); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	os.RemoveAll(databaseFileName)
}

func makeOwner(t *testing.T) *account.Account {
	t.Helper()
	privateKey, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("key generation error: %s", err)
	}
	return privateKey.Account()
}

func commit(t *testing.T, trx storage.Transaction) {
	t.Helper()
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func TestCreateAndBalance(t *testing.T) {
	setup(t)
	defer teardown(t)

	address := vault.AddressForOwner(makeOwner(t))

	trx := storage.NewDBTransaction()
	if vault.Exists(trx, address) {
		t.Fatal("vault must not exist yet")
	}
	vault.Create(trx, address)
	commit(t, trx)

	trx = storage.NewDBTransaction()
	balance, ok := vault.Balance(trx, address)
	if !ok || 0 != balance {
		t.Fatalf("balance: %d, %v  expected: 0, true", balance, ok)
	}
}

func TestCreateDoesNotResetBalance(t *testing.T) {
	setup(t)
	defer teardown(t)

	address := vault.AddressForOwner(makeOwner(t))

	trx := storage.NewDBTransaction()
	vault.Create(trx, address)
	if err := vault.Credit(trx, address, 500); nil != err {
		t.Fatalf("credit error: %s", err)
	}
	vault.Create(trx, address)
	commit(t, trx)

	trx = storage.NewDBTransaction()
	if balance, _ := vault.Balance(trx, address); 500 != balance {
		t.Fatalf("balance: %d  expected: 500", balance)
	}
}

func TestCreditDebit(t *testing.T) {
	setup(t)
	defer teardown(t)

	address := vault.AddressForOwner(makeOwner(t))

	trx := storage.NewDBTransaction()
	vault.Create(trx, address)
	if err := vault.Credit(trx, address, 1000); nil != err {
		t.Fatalf("credit error: %s", err)
	}
	if err := vault.Debit(trx, address, 400, 0); nil != err {
		t.Fatalf("debit error: %s", err)
	}
	commit(t, trx)

	trx = storage.NewDBTransaction()
	if balance, _ := vault.Balance(trx, address); 600 != balance {
		t.Fatalf("balance: %d  expected: 600", balance)
	}

	// over-debit fails and leaves the balance unchanged
	if err := vault.Debit(trx, address, 601, 0); fault.ErrInsufficientVaultBalance != err {
		t.Fatalf("over-debit: %v  expected: insufficient vault balance", err)
	}
	if balance, _ := vault.Balance(trx, address); 600 != balance {
		t.Fatalf("balance after failed debit: %d  expected: 600", balance)
	}
}

func TestCreditOverflow(t *testing.T) {
	setup(t)
	defer teardown(t)

	address := vault.AddressForOwner(makeOwner(t))

	trx := storage.NewDBTransaction()
	vault.Create(trx, address)
	if err := vault.Credit(trx, address, math.MaxUint64-10); nil != err {
		t.Fatalf("credit error: %s", err)
	}

	// a wrapping credit fails and leaves the balance unchanged
	if err := vault.Credit(trx, address, 11); fault.ErrBalanceOverflow != err {
		t.Fatalf("wrapping credit: %v  expected: vault balance overflow", err)
	}
	if balance, _ := vault.Balance(trx, address); math.MaxUint64-10 != balance {
		t.Fatalf("balance after failed credit: %d  expected: %d", balance, uint64(math.MaxUint64-10))
	}

	// up to the limit is still accepted
	if err := vault.Credit(trx, address, 10); nil != err {
		t.Fatalf("credit error: %s", err)
	}
}

func TestDebitReserve(t *testing.T) {
	setup(t)
	defer teardown(t)

	address := vault.AddressForOwner(makeOwner(t))

	trx := storage.NewDBTransaction()
	vault.Create(trx, address)
	if err := vault.Credit(trx, address, 1000); nil != err {
		t.Fatalf("credit error: %s", err)
	}

	// the reserve must remain behind
	if err := vault.Debit(trx, address, 950, 100); fault.ErrInsufficientVaultBalance != err {
		t.Fatalf("debit into reserve: %v  expected: insufficient vault balance", err)
	}
	if err := vault.Debit(trx, address, 900, 100); nil != err {
		t.Fatalf("debit above reserve error: %s", err)
	}
	if balance, _ := vault.Balance(trx, address); 100 != balance {
		t.Fatalf("balance: %d  expected: 100", balance)
	}
}

func TestMissingVault(t *testing.T) {
	setup(t)
	defer teardown(t)

	var missing derivation.Address
	trx := storage.NewDBTransaction()

	if err := vault.Credit(trx, missing, 1); fault.ErrVaultNotFound != err {
		t.Fatalf("credit missing vault: %v  expected: vault not found", err)
	}
	if err := vault.Debit(trx, missing, 1, 0); fault.ErrVaultNotFound != err {
		t.Fatalf("debit missing vault: %v  expected: vault not found", err)
	}
}

func TestTotal(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx := storage.NewDBTransaction()
	for i, amount := range []uint64{100, 250, 650} {
		address := derivation.Derive(vault.UserSeed, []byte{byte(i)})
		vault.Create(trx, address)
		if err := vault.Credit(trx, address, amount); nil != err {
			t.Fatalf("credit error: %s", err)
		}
	}
	commit(t, trx)

	total, err := vault.Total()
	if nil != err {
		t.Fatalf("total error: %s", err)
	}
	if 1000 != total {
		t.Fatalf("total: %d  expected: 1000", total)
	}
}
