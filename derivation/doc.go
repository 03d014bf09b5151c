// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derivation - deterministic account addresses
//
// every ledger entity lives at an address computed from a namespace tag
// and a tuple of identity/context bytes; the same tuple always yields the
// same address so registries need no separate index.  each element is
// length prefixed before hashing so that distinct tuples cannot collide
// by concatenation.
package derivation
