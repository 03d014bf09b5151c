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
	"github.com/prismpapers/prismd/storage"
)

// validate the free-text fields shared by create and update
func checkResearchFields(title string, description string, encryptedURL string, encryptionKey string) error {
	if 0 == len(title) || len(title) > constants.TitleMaximumLength {
		return fault.ErrInvalidTitle
	}
	if 0 == len(description) || len(description) > constants.DescriptionMaximumLength {
		return fault.ErrInvalidDescription
	}
	if 0 == len(encryptedURL) || len(encryptedURL) > constants.URLMaximumLength {
		return fault.ErrInvalidURL
	}
	if 0 == len(encryptionKey) || len(encryptionKey) > constants.EncryptionKeyMaximumLength {
		return fault.ErrInvalidEncryptionKey
	}
	return nil
}

// InitResearch - publish a priced research paper
//
// the author must already hold a profile; the price is fixed for the
// life of the paper
func InitResearch(
	author *account.Account,
	title string,
	description string,
	price uint64,
	encryptedURL string,
	encryptionKey string,
) (TxId, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return TxId{}, fault.ErrNotInitialised
	}

	if err := checkResearchFields(title, description, encryptedURL, encryptionKey); nil != err {
		return TxId{}, err
	}
	if 0 == price {
		return TxId{}, fault.ErrInvalidPrice
	}

	profileAddress := profile.AddressFor(author)
	paperAddress := paper.AddressFor(author)

	trx := storage.NewDBTransaction()

	authorProfile, err := profile.Fetch(trx, profileAddress)
	if nil != err {
		return TxId{}, err
	}
	if paper.Exists(trx, paperAddress) {
		return TxId{}, fault.ErrAlreadyInitialised
	}

	paper.Store(trx, paperAddress, &paper.Record{
		Author:        author,
		Title:         title,
		Description:   description,
		Price:         price,
		EncryptedURL:  encryptedURL,
		EncryptionKey: encryptionKey,
		Timestamp:     time.Now().Unix(),
	})

	authorProfile.Published += 1
	profile.Store(trx, profileAddress, authorProfile)

	if err := trx.Commit(); nil != err {
		return TxId{}, err
	}

	globalData.log.Infof("init-research: %s published %s", author, paperAddress)
	return newTxId("init-research", author.Bytes(), []byte(title)), nil
}

// UpdateResearch - author-only update of the paper metadata
//
// the price is immutable after creation and cannot be changed here
func UpdateResearch(
	author *account.Account,
	paperAddress derivation.Address,
	title string,
	description string,
	encryptedURL string,
	encryptionKey string,
) (TxId, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return TxId{}, fault.ErrNotInitialised
	}

	if err := checkResearchFields(title, description, encryptedURL, encryptionKey); nil != err {
		return TxId{}, err
	}

	trx := storage.NewDBTransaction()

	paperRecord, err := paper.Fetch(trx, paperAddress)
	if nil != err {
		return TxId{}, err
	}
	if !bytes.Equal(paperRecord.Author.Bytes(), author.Bytes()) {
		return TxId{}, fault.ErrUnauthorized
	}

	paperRecord.Title = title
	paperRecord.Description = description
	paperRecord.EncryptedURL = encryptedURL
	paperRecord.EncryptionKey = encryptionKey
	paper.Store(trx, paperAddress, paperRecord)

	if err := trx.Commit(); nil != err {
		return TxId{}, err
	}

	globalData.log.Infof("update-research: %s", paperAddress)
	return newTxId("update-research", author.Bytes(), paperAddress[:]), nil
}
