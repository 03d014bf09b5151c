// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation_test

import (
	"fmt"
	"testing"

	"github.com/prismpapers/prismd/derivation"
)

func TestDeriveDeterministic(t *testing.T) {
	owner := []byte("some-owner-public-key-bytes-0123")

	a1 := derivation.Derive("user", owner)
	a2 := derivation.Derive("user", owner)
	if a1 != a2 {
		t.Fatalf("same inputs produced different addresses: %s and %s", a1, a2)
	}
}

func TestDeriveDistinct(t *testing.T) {
	owner := []byte("some-owner-public-key-bytes-0123")
	other := []byte("other-owner-public-key-bytes-abc")

	seen := map[derivation.Address]string{}
	items := []struct {
		name    string
		address derivation.Address
	}{
		{"user/owner", derivation.Derive("user", owner)},
		{"user/other", derivation.Derive("user", other)},
		{"vault_user/owner", derivation.Derive("vault_user", owner)},
		{"paper/owner", derivation.Derive("paper", owner)},
		{"vault_admin", derivation.Derive("vault_admin")},
		// concatenation of the tuple elements must not collide with a
		// single element holding the same bytes
		{"receipt/a+b", derivation.Derive("receipt", []byte("aa"), []byte("b"))},
		{"receipt/ab", derivation.Derive("receipt", []byte("a"), []byte("ab"))},
		{"receipt/aab", derivation.Derive("receipt", []byte("aab"))},
	}
	for _, item := range items {
		if previous, ok := seen[item.address]; ok {
			t.Errorf("collision: %q and %q → %s", previous, item.name, item.address)
		}
		seen[item.address] = item.name
	}
}

func TestAddressText(t *testing.T) {
	address := derivation.Derive("paper", []byte("author"))

	text, err := address.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var recovered derivation.Address
	if err := recovered.UnmarshalText(text); nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if recovered != address {
		t.Fatalf("text round trip: %s  expected: %s", recovered, address)
	}

	var scanned derivation.Address
	if _, err := fmt.Sscan(address.String(), &scanned); nil != err {
		t.Fatalf("scan error: %s", err)
	}
	if scanned != address {
		t.Fatalf("scan round trip: %s  expected: %s", scanned, address)
	}
}

func TestAddressIsZero(t *testing.T) {
	var zero derivation.Address
	if !zero.IsZero() {
		t.Error("zero value must report IsZero")
	}
	if derivation.Derive("user", []byte("x")).IsZero() {
		t.Error("derived address must not report IsZero")
	}
}
