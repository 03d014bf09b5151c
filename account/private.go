// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/util"
)

// PrivateKey - the signing counterpart of an Account
type PrivateKey struct {
	Test       bool
	PrivateKey []byte
}

// NewPrivateKey - generate a fresh signing key for a network
func NewPrivateKey(test bool) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: priv,
	}, nil
}

// PrivateKeyFromBytes - reconstruct a signing key from raw key bytes
//
// accepts either the full 64 byte private key or the 32 byte seed half
func PrivateKeyFromBytes(test bool, privateKeyBytes []byte) (*PrivateKey, error) {
	switch len(privateKeyBytes) {
	case ed25519.PrivateKeySize:
		// regenerate and verify the embedded public part
		_, priv, err := ed25519.GenerateKey(bytes.NewBuffer(privateKeyBytes))
		if nil != err {
			return nil, err
		}
		if !bytes.Equal(priv, privateKeyBytes) {
			return nil, fault.ErrInvalidKeyLength
		}
	case ed25519.PrivateKeySize - ed25519.PublicKeySize:
		_, priv, err := ed25519.GenerateKey(bytes.NewBuffer(privateKeyBytes))
		if nil != err {
			return nil, err
		}
		privateKeyBytes = priv
	default:
		return nil, fault.ErrInvalidKeyLength
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: privateKeyBytes,
	}, nil
}

// Account - the public identity for this key
func (privateKey *PrivateKey) Account() *Account {
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:])
	return &Account{
		Test:      privateKey.Test,
		PublicKey: publicKey,
	}
}

// Sign - produce a signature over a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(privateKey.PrivateKey, message))
}

// PrivateKeyBytes - the raw 64 byte key
func (privateKey *PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey
}

// String - Base58 of key variant, private key and checksum
func (privateKey *PrivateKey) String() string {
	keyVariant := byte(ED25519 << algorithmShift)
	if privateKey.Test {
		keyVariant |= testKeyCode
	}
	buffer := append([]byte{keyVariant}, privateKey.PrivateKey...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// PrivateKeyFromBase58 - decode the String form back to a signing key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	decoded := util.FromBase58(privateKeyBase58Encoded)
	if len(decoded) <= checksumLength+1 {
		return nil, fault.ErrCannotDecodeAccount
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	keyVariant := decoded[0]
	if 0 != keyVariant&publicKeyCode {
		return nil, fault.ErrInvalidKeyType
	}
	if keyVariant>>algorithmShift >= algorithmLimit {
		return nil, fault.ErrInvalidKeyType
	}
	isTest := 0 != keyVariant&testKeyCode

	return PrivateKeyFromBytes(isTest, decoded[1:checksumStart])
}
