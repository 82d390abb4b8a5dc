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

// MultisigSignatureTransaction - cosignature of a pending multisig transaction
type MultisigSignatureTransaction struct {
	Base
	OtherAccount *account.Address // the multisig account
	OtherHash    string           // hash of the inner transaction
}

// CreateMultisigSignature - cosign the inner transaction with the given hash
func CreateMultisigSignature(timeWindow TimeWindow, multisigAccount *account.Address, hash string) (*MultisigSignatureTransaction, error) {
	return newMultisigSignature(timeWindow, 1, MultisigSignatureFee, multisigAccount, hash, nil)
}

// MultisigSignatureFromUnconfirmed - cosign a multisig transaction as
// received from the unconfirmed list
//
// the multisig account is the signer of the inner transaction and the
// hash comes from the meta data
func MultisigSignatureFromUnconfirmed(timeWindow TimeWindow, network chain.Network, dto *UnconfirmedDTO) (*MultisigSignatureTransaction, error) {
	if MultisigTag != dto.Transaction.Type {
		return nil, fault.ErrNotMultisigTransaction
	}
	if nil == dto.Transaction.OtherTrans {
		return nil, fault.ErrMissingInnerTransaction
	}
	if nil == dto.Meta.Data || "" == *dto.Meta.Data {
		return nil, fault.ErrNotPendingToSign
	}
	address, err := account.AddressFromPublicKey(dto.Transaction.OtherTrans.Signer, network)
	if nil != err {
		return nil, err
	}
	return CreateMultisigSignature(timeWindow, address, *dto.Meta.Data)
}

// CosignMultisig - cosign a decoded multisig transaction that is pending to sign
func CosignMultisig(timeWindow TimeWindow, tx *MultisigTransaction) (*MultisigSignatureTransaction, error) {
	hash, ok := tx.PendingHash()
	if !ok || !tx.IsPendingToSign() {
		return nil, fault.ErrNotPendingToSign
	}
	signer := tx.OtherTransaction.Signer()
	if nil == signer {
		return nil, fault.ErrMissingSigner
	}
	return CreateMultisigSignature(timeWindow, signer.Address, hash)
}

func newMultisigSignature(timeWindow TimeWindow, version int32, fee uint64, multisigAccount *account.Address, hash string, signer *account.PublicAccount) (*MultisigSignatureTransaction, error) {
	if nil == multisigAccount {
		return nil, fault.ErrInvalidAddress
	}
	b, err := newBase(MultisigSignatureTag, version, timeWindow, fee, signer)
	if nil != err {
		return nil, err
	}
	return &MultisigSignatureTransaction{
		Base:         b,
		OtherAccount: multisigAccount,
		OtherHash:    hash,
	}, nil
}

// ToDTO - encode
func (tx *MultisigSignatureTransaction) ToDTO() DTO {
	return tx.signatureDTO()
}

func (tx *MultisigSignatureTransaction) signatureDTO() *MultisigSignatureDTO {
	return &MultisigSignatureDTO{
		CommonDTO:    tx.commonDTO(),
		OtherHash:    HashDTO{Data: tx.OtherHash},
		OtherAccount: tx.OtherAccount.Plain(),
	}
}
