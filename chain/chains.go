// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - ledger network names
package chain

// names of all chains
const (
	Prism   = "prism"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Prism, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - true for networks whose accounts and funds carry no value
func IsTesting(name string) bool {
	switch name {
	case Testing, Local:
		return true
	default:
		return false
	}
}
