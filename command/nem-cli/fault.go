// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/nemclient/nemcore/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidAmount    = fault.InvalidError("amount must not be negative")
	ErrInvalidKind      = fault.InvalidError("kind can only be confirmed/unconfirmed/embedded")
	ErrMissingCreator   = fault.InvalidError("creator public key or private key is required")
	ErrMissingFile      = fault.InvalidError("file name is required")
	ErrMissingInbox     = fault.InvalidError("inbox directory is required")
	ErrMissingMosaicId  = fault.InvalidError("mosaic id is required")
	ErrMissingName      = fault.InvalidError("namespace name is required")
	ErrMissingRecipient = fault.InvalidError("recipient address is required")
)
