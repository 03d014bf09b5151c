// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/prismpapers/prismd/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	if err := storage.Initialise(databaseFileName); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}

func TestPoolPutGet(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.Profiles

	key := []byte("key-one")
	data := []byte("data-one")

	if pool.Has(key) {
		t.Fatal("key must not exist yet")
	}
	pool.Put(key, data)
	if !pool.Has(key) {
		t.Fatal("key must exist after put")
	}
	if !bytes.Equal(pool.Get(key), data) {
		t.Fatalf("get: %q  expected: %q", pool.Get(key), data)
	}

	pool.Delete(key)
	if pool.Has(key) {
		t.Fatal("key must not exist after delete")
	}
	if nil != pool.Get(key) {
		t.Fatal("get after delete must return nil")
	}
}

func TestPoolIsolation(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("shared-key")
	storage.Pool.Vaults.PutN(key, 12345)

	if storage.Pool.Receipts.Has(key) {
		t.Fatal("pools must not share keys")
	}
	n, found := storage.Pool.Vaults.GetN(key)
	if !found || 12345 != n {
		t.Fatalf("getN: %d, %v  expected: 12345, true", n, found)
	}
}

func TestTransactionCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	vaults := storage.Pool.Vaults
	profiles := storage.Pool.Profiles

	trx := storage.NewDBTransaction()
	trx.PutN(vaults, []byte("vault-a"), 100)
	trx.Put(profiles, []byte("profile-a"), []byte("alice"))

	// reads inside the transaction observe staged writes
	if n, ok := trx.GetN(vaults, []byte("vault-a")); !ok || 100 != n {
		t.Fatalf("staged getN: %d, %v  expected: 100, true", n, ok)
	}
	if !trx.Has(profiles, []byte("profile-a")) {
		t.Fatal("staged key must be visible inside the transaction")
	}

	// nothing visible outside before commit
	if vaults.Has([]byte("vault-a")) || profiles.Has([]byte("profile-a")) {
		t.Fatal("staged writes must not be visible before commit")
	}

	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if n, ok := vaults.GetN([]byte("vault-a")); !ok || 100 != n {
		t.Fatalf("committed getN: %d, %v  expected: 100, true", n, ok)
	}
	if !bytes.Equal(profiles.Get([]byte("profile-a")), []byte("alice")) {
		t.Fatal("committed profile record mismatch")
	}
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx := storage.NewDBTransaction()
	trx.Put(storage.Pool.Papers, []byte("paper-x"), []byte("data"))
	trx.Abort()

	if err := trx.Commit(); nil != err {
		t.Fatalf("commit of empty transaction error: %s", err)
	}
	if storage.Pool.Papers.Has([]byte("paper-x")) {
		t.Fatal("aborted write must not reach the database")
	}
}

func TestTransactionDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.Reviews
	pool.Put([]byte("review-1"), []byte("pending"))

	trx := storage.NewDBTransaction()
	trx.Delete(pool, []byte("review-1"))

	if trx.Has(pool, []byte("review-1")) {
		t.Fatal("staged delete must hide the key inside the transaction")
	}
	if !pool.Has([]byte("review-1")) {
		t.Fatal("staged delete must not affect the database before commit")
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	if pool.Has([]byte("review-1")) {
		t.Fatal("key must be removed after commit")
	}
}

func TestFetch(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.Vaults
	pool.PutN([]byte("a"), 1)
	pool.PutN([]byte("b"), 2)
	pool.PutN([]byte("c"), 3)

	elements, err := pool.Fetch(nil, 10)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 3 != len(elements) {
		t.Fatalf("fetch count: %d  expected: 3", len(elements))
	}
	if !bytes.Equal(elements[0].Key, []byte("a")) {
		t.Fatalf("first key: %q  expected: %q", elements[0].Key, "a")
	}

	elements, err = pool.Fetch([]byte("b"), 1)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 1 != len(elements) || !bytes.Equal(elements[0].Key, []byte("b")) {
		t.Fatalf("fetch from key: %v", elements)
	}
}
