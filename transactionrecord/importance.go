// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/nemclient/nemcore/account"
	"github.com/nemclient/nemcore/fault"
)

// ImportanceMode - activate or deactivate delegated harvesting
type ImportanceMode int

// importance transfer modes
const (
	ImportanceActivate   ImportanceMode = 1
	ImportanceDeactivate ImportanceMode = 2
)

func (m ImportanceMode) String() string {
	switch m {
	case ImportanceActivate:
		return "activate"
	case ImportanceDeactivate:
		return "deactivate"
	default:
		return "*unknown*"
	}
}

// ImportanceTransferTransaction - link an account's importance to a remote harvester
type ImportanceTransferTransaction struct {
	Base
	RemoteAccount *account.PublicAccount
	Mode          ImportanceMode
}

// CreateImportanceTransfer - delegate or revoke harvesting
func CreateImportanceTransfer(timeWindow TimeWindow, mode ImportanceMode, remoteAccount *account.PublicAccount) (*ImportanceTransferTransaction, error) {
	return newImportanceTransfer(timeWindow, 1, ImportanceTransferFee, mode, remoteAccount, nil)
}

func newImportanceTransfer(timeWindow TimeWindow, version int32, fee uint64, mode ImportanceMode, remoteAccount *account.PublicAccount, signer *account.PublicAccount) (*ImportanceTransferTransaction, error) {
	if nil == remoteAccount || !remoteAccount.HasPublicKey() {
		return nil, fault.ErrInvalidPublicKey
	}
	b, err := newBase(ImportanceTransferTag, version, timeWindow, fee, signer)
	if nil != err {
		return nil, err
	}
	return &ImportanceTransferTransaction{
		Base:          b,
		RemoteAccount: remoteAccount,
		Mode:          mode,
	}, nil
}

// ToDTO - encode
func (tx *ImportanceTransferTransaction) ToDTO() DTO {
	return &ImportanceTransferDTO{
		CommonDTO:     tx.commonDTO(),
		RemoteAccount: tx.RemoteAccount.PublicKey,
		Mode:          tx.Mode,
	}
}
