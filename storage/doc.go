// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the ledger database
//
// one LevelDB database holds every registry; each registry is a pool of
// single byte prefixed keys.  ledger operations stage all of their writes
// into a Transaction which commits as one LevelDB batch, so a failed
// operation leaves no partial state behind.
//
// a storage failure is not part of the operation error taxonomy: it is
// treated as fatal and panics through the logger.
package storage
