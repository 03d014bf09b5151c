// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the operation dispatcher
//
// the seven marketplace operations plus the author metadata update.
// every operation validates its payload and authorization first, then
// stages all of its mutations into one storage transaction and commits
// them together; a failed precondition leaves no observable change.
//
// operations are serialised by a package mutex so an overlapping pair
// cannot interleave: the loser observes the winner's post-state and
// fails its own precondition check.
//
// the caller account passed to each operation is a verified identity:
// the surrounding transport is responsible for signature checking before
// an operation is dispatched.
package ledger
