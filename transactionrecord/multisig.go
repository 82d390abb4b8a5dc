// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/nemclient/nemcore/account"
	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/fault"
)

// MultisigTransaction - wraps a transaction issued by a multisig account
//
// three states: freshly built (no info, no hash), pending to sign
// (no info, hash) and confirmed (info)
type MultisigTransaction struct {
	Base
	OtherTransaction Transaction
	Signatures       []*MultisigSignatureTransaction
	pendingHash      *string
	innerHash        string
}

// CreateMultisig - the inner transaction is reassigned to the multisig account
func CreateMultisig(timeWindow TimeWindow, inner Transaction, multisigAccount *account.PublicAccount) (*MultisigTransaction, error) {
	if nil == inner {
		return nil, fault.ErrMissingInnerTransaction
	}
	if !inner.Type().IsMultisigEmbeddable() {
		return nil, &fault.UnimplementedTransactionTypeError{Type: int(inner.Type())}
	}
	if err := inner.SetSigner(multisigAccount); nil != err {
		return nil, err
	}
	return newMultisig(timeWindow, 1, MultisigFee, inner, []*MultisigSignatureTransaction{}, nil)
}

func newMultisig(timeWindow TimeWindow, version int32, fee uint64, inner Transaction, signatures []*MultisigSignatureTransaction, signer *account.PublicAccount) (*MultisigTransaction, error) {
	b, err := newBase(MultisigTag, version, timeWindow, fee, signer)
	if nil != err {
		return nil, err
	}
	return &MultisigTransaction{
		Base:             b,
		OtherTransaction: inner,
		Signatures:       signatures,
	}, nil
}

// IsPendingToSign - not yet in a block but announced and waiting for cosignatures
func (tx *MultisigTransaction) IsPendingToSign() bool {
	return nil == tx.info && nil != tx.pendingHash
}

// PendingHash - hash of the inner transaction to be cosigned
func (tx *MultisigTransaction) PendingHash() (string, bool) {
	if nil == tx.pendingHash {
		return "", false
	}
	return *tx.pendingHash, true
}

// MultisigInfo - block position with the inner transaction hash
func (tx *MultisigTransaction) MultisigInfo() (*MultisigTransactionInfo, error) {
	info, err := tx.Info()
	if nil != err {
		return nil, err
	}
	return &MultisigTransactionInfo{
		TransactionInfo: *info,
		InnerHash:       tx.innerHash,
	}, nil
}

// SetNetworkType - applied to the inner transaction as well
func (tx *MultisigTransaction) SetNetworkType(network chain.Network) error {
	if err := tx.Base.SetNetworkType(network); nil != err {
		return err
	}
	return tx.OtherTransaction.SetNetworkType(network)
}

// ToDTO - encode, signatures are dropped while there are none
func (tx *MultisigTransaction) ToDTO() DTO {
	dto := &MultisigDTO{
		CommonDTO:  tx.commonDTO(),
		OtherTrans: tx.OtherTransaction.ToDTO(),
	}
	for _, s := range tx.Signatures {
		dto.Signatures = append(dto.Signatures, s.signatureDTO())
	}
	return dto
}
