// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/paper"
	"github.com/prismpapers/prismd/receipt"
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
	buyer := testAccount(t)
	paperAddress := paper.AddressFor(testAccount(t))

	record := &receipt.Record{
		Buyer:     buyer,
		Paper:     paperAddress,
		Timestamp: 1756684800,
	}

	recovered, err := receipt.Unpack(record.Pack())
	assert.NoError(t, err)
	assert.Equal(t, buyer.String(), recovered.Buyer.String())
	assert.Equal(t, paperAddress, recovered.Paper)
	assert.Equal(t, record.Timestamp, recovered.Timestamp)
}

func TestAddressPerPair(t *testing.T) {
	buyer := testAccount(t)
	other := testAccount(t)
	paperAddress := paper.AddressFor(testAccount(t))

	assert.Equal(t,
		receipt.AddressFor(buyer, paperAddress),
		receipt.AddressFor(buyer, paperAddress))
	assert.NotEqual(t,
		receipt.AddressFor(buyer, paperAddress),
		receipt.AddressFor(other, paperAddress))
}
