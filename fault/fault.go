// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrAlreadyPending               = ExistsError("transaction already pending")
	ErrConfigurationNotTable        = InvalidError("configuration must return a table")
	ErrInvalidAddress               = InvalidError("invalid address")
	ErrInvalidAmount                = InvalidError("amount exceeds the maximum micro XEM quantity")
	ErrInvalidCacheExpiry           = InvalidError("cache expiry must not be negative")
	ErrInvalidDeadline              = InvalidError("deadline must be positive and at most 24 hours")
	ErrInvalidDivisibility          = InvalidError("divisibility must be between 0 and 6")
	ErrInvalidHexPayload            = InvalidError("payload is not valid hex")
	ErrInvalidInitialSupply         = InvalidError("initial supply exceeds 9000000000")
	ErrInvalidLevyType              = InvalidError("invalid levy type")
	ErrInvalidLogFile               = InvalidError("log file must be a plain file name")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidMessageType           = InvalidError("invalid message type")
	ErrInvalidMosaicId              = InvalidError("invalid mosaic id")
	ErrInvalidNetwork               = InvalidError("invalid network")
	ErrInvalidPublicKey             = InvalidError("public key must be 64 or 66 hex characters")
	ErrInvalidSigner                = InvalidError("signer public key must be 64 or 66 hex characters")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrMissingEncryptor             = InvalidError("an encryptor is required for encrypted messages")
	ErrMissingInnerTransaction      = RecordError("multisig transaction has no inner transaction")
	ErrMissingSigner                = InvalidError("transaction has no signer")
	ErrNotADirectory                = InvalidError("not a directory")
	ErrNotConfirmed                 = NotFoundError("transaction is not confirmed")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrNotMultisigTransaction       = RecordError("not a multisig transaction")
	ErrNotPendingToSign             = InvalidError("transaction is not pending to sign")
	ErrPendingNotFound              = NotFoundError("pending transaction not found")
	ErrRecipientMismatch            = InvalidError("encrypted message recipient does not match transaction recipient")
	ErrTransactionExpired           = InvalidError("transaction deadline has passed")
	ErrUnimplementedTransactionType = RecordError("unimplemented transaction type")
	ErrUnsupportedNetwork           = InvalidError("unsupported network")
	ErrWrongTransactionMode         = InvalidError("operation not applicable to this transfer mode")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool   { var t RecordError; return errors.As(e, &t) }

// UnimplementedTransactionTypeError - decoder met a type code it has no arm for
type UnimplementedTransactionTypeError struct {
	Type int
}

func (e *UnimplementedTransactionTypeError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnimplementedTransactionType, e.Type)
}

// Unwrap - allow errors.Is(err, ErrUnimplementedTransactionType)
func (e *UnimplementedTransactionTypeError) Unwrap() error {
	return ErrUnimplementedTransactionType
}

// RecipientMismatchError - encrypted message was made for a different account
type RecipientMismatchError struct {
	Expected string // transaction recipient
	Actual   string // address the message was encrypted for
}

func (e *RecipientMismatchError) Error() string {
	return fmt.Sprintf("%s: recipient: %s  message recipient: %s", ErrRecipientMismatch, e.Expected, e.Actual)
}

// Unwrap - allow errors.Is(err, ErrRecipientMismatch)
func (e *RecipientMismatchError) Unwrap() error {
	return ErrRecipientMismatch
}
