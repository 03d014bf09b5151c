// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// ExistsError - a record that must be unique is already present
	ExistsError GenericError

	// InvalidError - a payload field failed validation
	InvalidError GenericError

	// NotFoundError - a referenced record is absent, including the case
	// where the underlying storage key simply does not exist
	NotFoundError GenericError

	// AuthorizationError - the caller is not permitted to perform the action
	AuthorizationError GenericError

	// InsufficientError - a balance cannot cover the requested amount
	InsufficientError GenericError

	// ProcessError - an internal operation failed
	ProcessError GenericError
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrDuplicateReceipt         = ExistsError("access already purchased")
	ErrDuplicateReview          = ExistsError("review already submitted")
	ErrReviewAlreadyVerified    = ExistsError("review already verified")

	ErrCannotDecodeAccount      = InvalidError("cannot decode account")
	ErrChecksumMismatch         = InvalidError("checksum mismatch")
	ErrInvalidAmount            = InvalidError("amount must be greater than zero")
	ErrInvalidChain             = InvalidError("invalid chain")
	ErrInvalidDescription       = InvalidError("description is empty or too long")
	ErrInvalidEncryptionKey     = InvalidError("encryption key is empty or too long")
	ErrInvalidFeeBasisPoints    = InvalidError("fee basis points out of range")
	ErrInvalidKeyLength         = InvalidError("key length is invalid")
	ErrInvalidKeyType           = InvalidError("key type is invalid")
	ErrInvalidPrice             = InvalidError("price must be greater than zero")
	ErrInvalidReviewURL         = InvalidError("review url is empty or too long")
	ErrInvalidSignature         = InvalidError("invalid signature")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrInvalidTitle             = InvalidError("title is empty or too long")
	ErrInvalidURL               = InvalidError("url is empty or too long")
	ErrNameTooLong              = InvalidError("name is empty or too long")
	ErrNotPublicKey             = InvalidError("not a public key")
	ErrUnmarshalTextFailed      = InvalidError("unmarshal text failed")
	ErrWrongNetworkForPublicKey = InvalidError("wrong network for public key")

	ErrPaperNotFound   = NotFoundError("paper not found")
	ErrProfileNotFound = NotFoundError("profile not found")
	ErrReceiptNotFound = NotFoundError("receipt not found")
	ErrReviewNotFound  = NotFoundError("review not found")
	ErrVaultNotFound   = NotFoundError("vault not found")

	ErrBalanceOverflow = ProcessError("vault balance overflow")
	ErrNotInitialised  = ProcessError("not initialised")
	ErrRecordTooShort  = ProcessError("record too short")

	ErrSelfPurchase = AuthorizationError("cannot purchase own paper")
	ErrSelfReview   = AuthorizationError("cannot review own paper")
	ErrUnauthorized = AuthorizationError("not authorized")

	ErrInsufficientFunds        = InsufficientError("insufficient funds in wallet")
	ErrInsufficientVaultBalance = InsufficientError("insufficient funds in vault")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e AuthorizationError) Error() string { return string(e) }
func (e InsufficientError) Error() string  { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrInsufficient(e error) bool  { _, ok := e.(InsufficientError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
