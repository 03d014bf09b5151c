// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"testing"
)

// test encrypt and decrypt one string with various passwords
func TestEncryptDecrypt(t *testing.T) {

	plainText := "The Quick Brown Fox Jumps Over The Lazy Dog"

	passwords := []string{"test", "123", "444", "m,erRGhtk%$33ug62sd al/fajfb.adv"}

	for _, password := range passwords {
		salt, key, err := hashPassword(password)
		if nil != err {
			t.Fatalf("hash error: %s", err)
		}

		encrypted, err := encryptData(plainText, key)
		if nil != err {
			t.Fatalf("encrypt error: %s", err)
		}

		key2, err := generateKey(password, salt)
		if nil != err {
			t.Fatalf("generateKey error: %s", err)
		}

		decrypted, err := decryptData(encrypted, key2)
		if nil != err {
			t.Fatalf("decrypt error: %s", err)
		}

		if decrypted != plainText {
			t.Errorf("decrypt: expected: %s", plainText)
			t.Errorf("decrypt: actual:   %s", decrypted)
		}
	}
}

// a wrong password must never decrypt
func TestDecryptWrongPassword(t *testing.T) {

	plainText := "This is some text for testing 1234567890"

	_, key, err := hashPassword("correct horse battery staple")
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}

	encrypted, err := encryptData(plainText, key)
	if nil != err {
		t.Fatalf("encrypt error: %s", err)
	}

	_, key2, err := hashPassword("incorrect horse")
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}

	if _, err := decryptData(encrypted, key2); nil == err {
		t.Fatal("wrong key must not decrypt")
	}
}
