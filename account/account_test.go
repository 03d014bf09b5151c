// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"testing"

	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/fault"
)

func makeKey(t *testing.T, test bool) *account.PrivateKey {
	t.Helper()
	privateKey, err := account.NewPrivateKey(test)
	if nil != err {
		t.Fatalf("key generation error: %s", err)
	}
	return privateKey
}

func TestAccountBase58RoundTrip(t *testing.T) {
	for _, test := range []bool{false, true} {
		acc := makeKey(t, test).Account()

		recovered, err := account.AccountFromBase58(acc.String())
		if nil != err {
			t.Fatalf("decode error: %s", err)
		}
		if recovered.Test != test {
			t.Errorf("test flag: %v  expected: %v", recovered.Test, test)
		}
		if !bytes.Equal(recovered.PublicKey, acc.PublicKey) {
			t.Errorf("public key mismatch for: %s", acc)
		}
	}
}

func TestAccountBadChecksum(t *testing.T) {
	s := makeKey(t, true).Account().String()

	// flip the final character to damage the checksum
	last := s[len(s)-1]
	replacement := byte('2')
	if last == replacement {
		replacement = '3'
	}
	_, err := account.AccountFromBase58(s[:len(s)-1] + string(replacement))
	if fault.ErrChecksumMismatch != err && fault.ErrCannotDecodeAccount != err {
		t.Fatalf("expected checksum failure, got: %v", err)
	}
}

func TestCheckSignature(t *testing.T) {
	privateKey := makeKey(t, true)
	acc := privateKey.Account()

	message := []byte("purchase-access|paper|buyer")
	signature := privateKey.Sign(message)

	if err := acc.CheckSignature(message, signature); nil != err {
		t.Fatalf("valid signature rejected: %s", err)
	}
	if err := acc.CheckSignature([]byte("another message"), signature); fault.ErrInvalidSignature != err {
		t.Fatalf("wrong message accepted: %v", err)
	}
	if err := acc.CheckSignature(message, signature[1:]); fault.ErrInvalidSignature != err {
		t.Fatalf("truncated signature accepted: %v", err)
	}
}

func TestPrivateKeyBase58RoundTrip(t *testing.T) {
	privateKey := makeKey(t, true)

	recovered, err := account.PrivateKeyFromBase58(privateKey.String())
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	if !bytes.Equal(recovered.PrivateKeyBytes(), privateKey.PrivateKeyBytes()) {
		t.Fatal("private key mismatch after round trip")
	}
	if recovered.Account().String() != privateKey.Account().String() {
		t.Fatal("account mismatch after round trip")
	}
}

func TestAccountTextMarshalling(t *testing.T) {
	acc := makeKey(t, false).Account()

	text, err := acc.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var recovered account.Account
	if err := recovered.UnmarshalText(text); nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if recovered.String() != acc.String() {
		t.Fatalf("text round trip: %s  expected: %s", &recovered, acc)
	}
}
