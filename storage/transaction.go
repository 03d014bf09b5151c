// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - stage a group of pool writes and commit them atomically
//
// reads observe staged writes so an operation sees its own mutations;
// nothing reaches the database until Commit
type Transaction interface {
	Put(pool *PoolHandle, key []byte, value []byte)
	PutN(pool *PoolHandle, key []byte, value uint64)
	Delete(pool *PoolHandle, key []byte)
	Get(pool *PoolHandle, key []byte) []byte
	GetN(pool *PoolHandle, key []byte) (uint64, bool)
	Has(pool *PoolHandle, key []byte) bool
	Commit() error
	Abort()
}

type transaction struct {
	batch  *leveldb.Batch
	staged map[string][]byte // prefixed key → value; nil marks a delete
}

// NewDBTransaction - create an empty transaction
func NewDBTransaction() Transaction {
	return &transaction{
		batch:  new(leveldb.Batch),
		staged: make(map[string][]byte),
	}
}

func (trx *transaction) Put(pool *PoolHandle, key []byte, value []byte) {
	prefixedKey := pool.prefixKey(key)
	trx.batch.Put(prefixedKey, value)
	trx.staged[string(prefixedKey)] = value
}

func (trx *transaction) PutN(pool *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	trx.Put(pool, key, buffer)
}

func (trx *transaction) Delete(pool *PoolHandle, key []byte) {
	prefixedKey := pool.prefixKey(key)
	trx.batch.Delete(prefixedKey)
	trx.staged[string(prefixedKey)] = nil
}

func (trx *transaction) Get(pool *PoolHandle, key []byte) []byte {
	if value, ok := trx.staged[string(pool.prefixKey(key))]; ok {
		return value
	}
	return pool.Get(key)
}

func (trx *transaction) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	if value, ok := trx.staged[string(pool.prefixKey(key))]; ok {
		if nil == value {
			return 0, false
		}
		if len(value) < 8 {
			logger.Panicf("transaction.GetN truncated record for: %x: %s", key, value)
		}
		return binary.BigEndian.Uint64(value[:8]), true
	}
	return pool.GetN(key)
}

func (trx *transaction) Has(pool *PoolHandle, key []byte) bool {
	if value, ok := trx.staged[string(pool.prefixKey(key))]; ok {
		return nil != value
	}
	return pool.Has(key)
}

// Commit - write all staged changes as one batch
func (trx *transaction) Commit() error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return leveldb.ErrClosed
	}
	err := poolData.db.Write(trx.batch, nil)
	if nil == err {
		trx.Abort() // a committed transaction is empty
	}
	return err
}

// Abort - discard all staged changes
func (trx *transaction) Abort() {
	trx.batch.Reset()
	trx.staged = make(map[string][]byte)
}
