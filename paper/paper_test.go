// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/paper"
)

func testAccount(t *testing.T) *account.Account {
	t.Helper()
	privateKey, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("key generation error: %s", err)
	}
	return privateKey.Account()
}

func TestPackUnpack(t *testing.T) {
	author := testAccount(t)
	record := &paper.Record{
		Author:        author,
		Title:         "Quantum Mechanics",
		Description:   "A complete study of quantised things",
		Price:         1000000000,
		Sales:         12,
		Reviews:       4,
		EncryptedURL:  "ipfs://QmVaultedContent",
		EncryptionKey: "sealed:0a1b2c3d",
		Timestamp:     1756684800,
	}

	recovered, err := paper.Unpack(record.Pack())
	assert.NoError(t, err)
	assert.Equal(t, author.String(), recovered.Author.String())
	assert.Equal(t, record.Title, recovered.Title)
	assert.Equal(t, record.Description, recovered.Description)
	assert.Equal(t, record.Price, recovered.Price)
	assert.Equal(t, record.Sales, recovered.Sales)
	assert.Equal(t, record.EncryptedURL, recovered.EncryptedURL)
	assert.Equal(t, record.EncryptionKey, recovered.EncryptionKey)
}

func TestUnpackTruncated(t *testing.T) {
	record := &paper.Record{
		Author: testAccount(t),
		Title:  "T",
		Price:  1,
	}
	packed := record.Pack()

	for _, n := range []int{0, 1, len(packed) / 2, len(packed) - 1} {
		_, err := paper.Unpack(packed[:n])
		assert.Error(t, err, "length %d", n)
	}
}

func TestOnePaperAddressPerAuthor(t *testing.T) {
	author := testAccount(t)
	assert.Equal(t, paper.AddressFor(author), paper.AddressFor(author))
	assert.NotEqual(t, paper.AddressFor(author), paper.AddressFor(testAccount(t)))
}
