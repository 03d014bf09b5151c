// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"math/bits"
	"time"

	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/derivation"
	"github.com/prismpapers/prismd/fault"
	"github.com/prismpapers/prismd/paper"
	"github.com/prismpapers/prismd/profile"
	"github.com/prismpapers/prismd/receipt"
	"github.com/prismpapers/prismd/storage"
	"github.com/prismpapers/prismd/vault"
)

// PurchaseAccess - buy access to a paper
//
// the buyer pays the full price from external funds; the author vault
// receives the price less the platform fee and the platform vault
// receives the fee.  the receipt is the buyer's durable proof of access.
func PurchaseAccess(buyer *account.Account, paperAddress derivation.Address) (TxId, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return TxId{}, fault.ErrNotInitialised
	}

	trx := storage.NewDBTransaction()

	paperRecord, err := paper.Fetch(trx, paperAddress)
	if nil != err {
		return TxId{}, err
	}
	if bytes.Equal(buyer.Bytes(), paperRecord.Author.Bytes()) {
		return TxId{}, fault.ErrSelfPurchase
	}

	buyerProfileAddress := profile.AddressFor(buyer)
	buyerProfile, err := profile.Fetch(trx, buyerProfileAddress)
	if nil != err {
		return TxId{}, err
	}

	receiptAddress := receipt.AddressFor(buyer, paperAddress)
	if receipt.Exists(trx, receiptAddress) {
		return TxId{}, fault.ErrDuplicateReceipt
	}

	authorProfileAddress := profile.AddressFor(paperRecord.Author)
	authorProfile, err := profile.Fetch(trx, authorProfileAddress)
	if nil != err {
		return TxId{}, err
	}

	// the fee product can exceed 64 bits for large prices; the
	// quotient always fits as fee basis points never exceed 10000
	price := paperRecord.Price
	feeHi, feeLo := bits.Mul64(price, globalData.feeBasisPoints)
	fee, _ := bits.Div64(feeHi, feeLo, 10000)
	authorShare := price - fee

	if globalData.funds.Balance(buyer) < price {
		return TxId{}, fault.ErrInsufficientFunds
	}

	// stage the ledger side first so a funding failure costs nothing
	if err := vault.Credit(trx, vault.AddressForOwner(paperRecord.Author), authorShare); nil != err {
		return TxId{}, err
	}
	if err := vault.Credit(trx, vault.PlatformAddress(), fee); nil != err {
		return TxId{}, err
	}

	receipt.Store(trx, receiptAddress, &receipt.Record{
		Buyer:     buyer,
		Paper:     paperAddress,
		Timestamp: time.Now().Unix(),
	})

	paperRecord.Sales += 1
	paper.Store(trx, paperAddress, paperRecord)

	buyerProfile.Purchased += 1
	profile.Store(trx, buyerProfileAddress, buyerProfile)

	authorProfile.Sold += 1
	authorProfile.Earning += authorShare
	profile.Store(trx, authorProfileAddress, authorProfile)

	if err := globalData.funds.Debit(buyer, price); nil != err {
		return TxId{}, err
	}
	if err := trx.Commit(); nil != err {
		// undo the external debit; the staged writes are discarded
		globalData.funds.Credit(buyer, price)
		return TxId{}, err
	}

	globalData.log.Infof("purchase-access: %s bought %s for %d", buyer, paperAddress, price)
	return newTxId("purchase-access", buyer.Bytes(), paperAddress[:]), nil
}
