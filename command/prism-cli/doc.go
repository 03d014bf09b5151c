// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command-line access to a local prism ledger
//
// identities are kept in a per-network JSON file under
// XDG_CONFIG_HOME with private keys encrypted by an argon2 derived
// key; ledger commands additionally need the node configuration file
// to locate the database
//
// e.g. to register a profile:
//
//   prism-cli -n testing -i alice -c prismd.conf init-user --name "Dr. Alice"
package main
