// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"encoding/json"

	"github.com/nemclient/nemcore/account"
	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/fault"
)

// SignedTransaction - ready to announce
type SignedTransaction struct {
	Data      string `json:"data"`      // hex of the serialised transaction
	Signature string `json:"signature"` // hex
}

// DTOSigner - external signing service
type DTOSigner interface {
	Sign(dto DTO) (*SignedTransaction, error)
}

// Sign - attach the signer and network version, then sign the encoding
func Sign(tx Transaction, signer *account.PublicAccount, network chain.Network, dtoSigner DTOSigner) (*SignedTransaction, error) {
	if nil == dtoSigner {
		return nil, fault.ErrMissingSigner
	}
	if err := tx.SetSigner(signer); nil != err {
		return nil, err
	}
	if err := tx.SetNetworkType(network); nil != err {
		return nil, err
	}
	return dtoSigner.Sign(tx.ToDTO())
}

// KeyPairSigner - signs the JSON encoding with a local key pair
type KeyPairSigner struct {
	KeyPair *account.KeyPair
}

// Sign - data is the hex of the JSON encoding
func (s KeyPairSigner) Sign(dto DTO) (*SignedTransaction, error) {
	if nil == s.KeyPair {
		return nil, fault.ErrMissingSigner
	}
	data, err := json.Marshal(dto)
	if nil != err {
		return nil, err
	}
	return &SignedTransaction{
		Data:      hex.EncodeToString(data),
		Signature: s.KeyPair.Sign(data).String(),
	}, nil
}

// Verify - check a signed transaction against a hex public key
func (signed *SignedTransaction) Verify(publicKey string) bool {
	data, err := hex.DecodeString(signed.Data)
	if nil != err {
		return false
	}
	signature, err := hex.DecodeString(signed.Signature)
	if nil != err {
		return false
	}
	return account.Verify(publicKey, data, signature)
}
