// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package review - peer reviews and their verification lifecycle
//
// one review per (reviewer, paper) pair; a review starts Pending and is
// moved exactly once to Accepted or Rejected by the paper's author
package review

import (
	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/derivation"
	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/storage"
	"github.com/prismpapers/prismd/util"
)

// Seed - derivation namespace tag
const Seed = "review"

// Status - the verification state of a review
type Status uint64

// possible statuses; Pending is the only non-terminal state
const (
	Pending Status = iota
	Accepted
	Rejected
	statusLimit
)

// String - status name for use by the fmt package
func (status Status) String() string {
	switch status {
	case Pending:
		return "Pending"
	case Accepted:
		return "Accepted"
	case Rejected:
		return "Rejected"
	default:
		return "*unknown*"
	}
}

// MarshalText - status name for JSON encoding
func (status Status) MarshalText() ([]byte, error) {
	return []byte(status.String()), nil
}

// Record - a submitted peer review
type Record struct {
	Reviewer       *account.Account   `json:"reviewer"`
	Paper          derivation.Address `json:"paper"`
	ReviewURL      string             `json:"reviewUrl"`
	Status         Status             `json:"status"`
	ProposedReward uint64             `json:"proposedReward"`
	Timestamp      int64              `json:"timestamp"`
}

// AddressFor - the review address for a (reviewer, paper) pair
func AddressFor(reviewer *account.Account, paperAddress derivation.Address) derivation.Address {
	return derivation.Derive(Seed, reviewer.Bytes(), paperAddress[:])
}

// Pack - flatten a record for storage
func (record *Record) Pack() []byte {
	buffer := util.AppendBytes(nil, record.Reviewer.Bytes())
	buffer = util.AppendBytes(buffer, record.Paper[:])
	buffer = util.AppendString(buffer, record.ReviewURL)
	buffer = util.AppendUint64(buffer, uint64(record.Status))
	buffer = util.AppendUint64(buffer, record.ProposedReward)
	buffer = util.AppendUint64(buffer, uint64(record.Timestamp))
	return buffer
}

// Unpack - recover a record from its stored form
func Unpack(buffer []byte) (*Record, error) {
	reviewerBytes, n := util.UnpackBytes(buffer)
	if 0 == n {
		return nil, fault.ErrRecordTooShort
	}
	buffer = buffer[n:]

	reviewer, err := account.AccountFromBytes(reviewerBytes)
	if nil != err {
		return nil, err
	}

	paperBytes, n := util.UnpackBytes(buffer)
	if 0 == n || derivation.AddressLength != len(paperBytes) {
		return nil, fault.ErrRecordTooShort
	}
	buffer = buffer[n:]

	record := &Record{Reviewer: reviewer}
	copy(record.Paper[:], paperBytes)

	if record.ReviewURL, n = util.UnpackString(buffer); 0 == n {
		return nil, fault.ErrRecordTooShort
	}
	buffer = buffer[n:]

	status, n := util.UnpackUint64(buffer)
	if 0 == n || status >= uint64(statusLimit) {
		return nil, fault.ErrRecordTooShort
	}
	record.Status = Status(status)
	buffer = buffer[n:]

	if record.ProposedReward, n = util.UnpackUint64(buffer); 0 == n {
		return nil, fault.ErrRecordTooShort
	}
	buffer = buffer[n:]

	timestamp, n := util.UnpackUint64(buffer)
	if 0 == n {
		return nil, fault.ErrRecordTooShort
	}
	record.Timestamp = int64(timestamp)

	return record, nil
}

// Exists - membership test on the registry
func Exists(trx storage.Transaction, address derivation.Address) bool {
	return trx.Has(storage.Pool.Reviews, address[:])
}

// Fetch - read a review from the registry
func Fetch(trx storage.Transaction, address derivation.Address) (*Record, error) {
	packed := trx.Get(storage.Pool.Reviews, address[:])
	if nil == packed {
		return nil, fault.ErrReviewNotFound
	}
	return Unpack(packed)
}

// Store - write a review to the registry
func Store(trx storage.Transaction, address derivation.Address, record *Record) {
	trx.Put(storage.Pool.Reviews, address[:], record.Pack())
}
