// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package constants - fixed ledger limits and defaults
package constants

// field length caps, inclusive
const (
	NameMaximumLength          = 50
	TitleMaximumLength         = 100
	DescriptionMaximumLength   = 400
	URLMaximumLength           = 200
	EncryptionKeyMaximumLength = 300
	ReviewURLMaximumLength     = 200
)

// fund split on purchase
//
// fee = price * fee_bp / 10000, remainder to the author
const (
	DefaultFeeBasisPoints = 500 // 5%
	MaximumFeeBasisPoints = 10000
)

// withdrawal reserve, in base units, retained in a vault
const (
	DefaultWithdrawalFloor = 0
)
