// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"time"

	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/constants"
	"github.com/prismpapers/prismd/derivation"
	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/paper"
	"github.com/prismpapers/prismd/profile"
	"github.com/prismpapers/prismd/receipt"
	"github.com/prismpapers/prismd/review"
	"github.com/prismpapers/prismd/storage"
	"github.com/prismpapers/prismd/vault"
)

// ReviewPaper - submit a peer review for a purchased paper
//
// only a buyer holding a receipt may review, and only once per paper.
// the proposed reward is a request; nothing moves until the author
// verifies the review.
func ReviewPaper(reviewer *account.Account, paperAddress derivation.Address, reviewURL string, proposedReward uint64) (TxId, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return TxId{}, fault.ErrNotInitialised
	}

	if 0 == len(reviewURL) || len(reviewURL) > constants.ReviewURLMaximumLength {
		return TxId{}, fault.ErrInvalidReviewURL
	}

	trx := storage.NewDBTransaction()

	paperRecord, err := paper.Fetch(trx, paperAddress)
	if nil != err {
		return TxId{}, err
	}
	if bytes.Equal(reviewer.Bytes(), paperRecord.Author.Bytes()) {
		return TxId{}, fault.ErrSelfReview
	}

	reviewerProfileAddress := profile.AddressFor(reviewer)
	reviewerProfile, err := profile.Fetch(trx, reviewerProfileAddress)
	if nil != err {
		return TxId{}, err
	}

	receiptAddress := receipt.AddressFor(reviewer, paperAddress)
	if !receipt.Exists(trx, receiptAddress) {
		return TxId{}, fault.ErrReceiptNotFound
	}

	reviewAddress := review.AddressFor(reviewer, paperAddress)
	if review.Exists(trx, reviewAddress) {
		return TxId{}, fault.ErrDuplicateReview
	}

	review.Store(trx, reviewAddress, &review.Record{
		Reviewer:       reviewer,
		Paper:          paperAddress,
		ReviewURL:      reviewURL,
		Status:         review.Pending,
		ProposedReward: proposedReward,
		Timestamp:      time.Now().Unix(),
	})

	paperRecord.Reviews += 1
	paper.Store(trx, paperAddress, paperRecord)

	reviewerProfile.Reviewed += 1
	profile.Store(trx, reviewerProfileAddress, reviewerProfile)

	if err := trx.Commit(); nil != err {
		return TxId{}, err
	}

	globalData.log.Infof("review-paper: %s reviewed %s asking %d", reviewer, paperAddress, proposedReward)
	return newTxId("review-paper", reviewer.Bytes(), paperAddress[:]), nil
}

// VerifyReview - accept or reject a pending review
//
// only the paper's author may verify.  acceptance moves the proposed
// reward from the author's vault to the reviewer's vault; rejection
// moves nothing.  either way the review leaves the pending state for
// good.
func VerifyReview(author *account.Account, reviewAddress derivation.Address, accept bool) (TxId, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return TxId{}, fault.ErrNotInitialised
	}

	trx := storage.NewDBTransaction()

	reviewRecord, err := review.Fetch(trx, reviewAddress)
	if nil != err {
		return TxId{}, err
	}

	paperRecord, err := paper.Fetch(trx, reviewRecord.Paper)
	if nil != err {
		return TxId{}, err
	}
	if !bytes.Equal(author.Bytes(), paperRecord.Author.Bytes()) {
		return TxId{}, fault.ErrUnauthorized
	}

	if review.Pending != reviewRecord.Status {
		return TxId{}, fault.ErrReviewAlreadyVerified
	}

	if accept {
		reward := reviewRecord.ProposedReward

		authorVault := vault.AddressForOwner(author)
		if err := vault.Debit(trx, authorVault, reward, 0); nil != err {
			return TxId{}, err
		}
		if err := vault.Credit(trx, vault.AddressForOwner(reviewRecord.Reviewer), reward); nil != err {
			return TxId{}, err
		}

		reviewerProfileAddress := profile.AddressFor(reviewRecord.Reviewer)
		reviewerProfile, err := profile.Fetch(trx, reviewerProfileAddress)
		if nil != err {
			return TxId{}, err
		}
		reviewerProfile.Earning += reward
		profile.Store(trx, reviewerProfileAddress, reviewerProfile)

		reviewRecord.Status = review.Accepted
	} else {
		reviewRecord.Status = review.Rejected
	}

	review.Store(trx, reviewAddress, reviewRecord)

	if err := trx.Commit(); nil != err {
		return TxId{}, err
	}

	globalData.log.Infof("verify-review: %s marked %s %s", author, reviewAddress, reviewRecord.Status)
	return newTxId("verify-review", author.Bytes(), reviewAddress[:]), nil
}
