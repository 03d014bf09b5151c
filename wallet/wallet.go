// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet - the external funding boundary
//
// buyers pay for access directly from their own funds and withdrawals
// are paid back out to them; both sides of that boundary are behind the
// Source interface so the key management layer stays outside the ledger
package wallet

import (
	"sync"

	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/fault"
)

// Source - access to funds held outside the ledger
type Source interface {

	// Balance - funds currently available to an identity
	Balance(owner *account.Account) uint64

	// Debit - take funds from an identity
	//
	// fails with ErrInsufficientFunds without any change if the
	// identity cannot cover the amount
	Debit(owner *account.Account, amount uint64) error

	// Credit - pay funds out to an identity
	Credit(owner *account.Account, amount uint64)
}

// Memory - an in-process funding source for tests and local development
type Memory struct {
	sync.Mutex
	balances map[string]uint64
}

// NewMemory - create an empty in-process funding source
func NewMemory() *Memory {
	return &Memory{
		balances: make(map[string]uint64),
	}
}

// Airdrop - deposit funds into an identity from nowhere
func (m *Memory) Airdrop(owner *account.Account, amount uint64) {
	m.Lock()
	m.balances[string(owner.Bytes())] += amount
	m.Unlock()
}

// Balance - funds currently available to an identity
func (m *Memory) Balance(owner *account.Account) uint64 {
	m.Lock()
	defer m.Unlock()
	return m.balances[string(owner.Bytes())]
}

// Debit - take funds from an identity
func (m *Memory) Debit(owner *account.Account, amount uint64) error {
	m.Lock()
	defer m.Unlock()

	key := string(owner.Bytes())
	if m.balances[key] < amount {
		return fault.ErrInsufficientFunds
	}
	m.balances[key] -= amount
	return nil
}

// Credit - pay funds out to an identity
func (m *Memory) Credit(owner *account.Account, amount uint64) {
	m.Lock()
	m.balances[string(owner.Bytes())] += amount
	m.Unlock()
}
