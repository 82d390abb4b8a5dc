// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/fault"
	"github.com/nemclient/nemcore/message"
	"github.com/nemclient/nemcore/mosaic"
	"github.com/nemclient/nemcore/transactionrecord"
)

func makeMultisigTransfer(t *testing.T) (*transactionrecord.MultisigTransaction, *transactionrecord.TransferTransaction) {
	inner, err := transactionrecord.CreateTransfer(testWindow(t), makeAddress(t, testRecipient), mosaic.NewXEM(5), message.NewPlain("from multisig"))
	require.Nil(t, err)
	tx, err := transactionrecord.CreateMultisig(testWindow(t), inner, makePublicAccount(t, senderKey))
	require.Nil(t, err)
	return tx, inner
}

func TestCreateMultisig(t *testing.T) {
	tx, inner := makeMultisigTransfer(t)

	assert.Equal(t, transactionrecord.MultisigTag, tx.Type())
	assert.Equal(t, uint64(150000), tx.Fee())
	assert.Equal(t, senderKey, inner.Signer().PublicKey)
	assert.Equal(t, 0, len(tx.Signatures))
	assert.False(t, tx.IsPendingToSign())
	assert.False(t, tx.IsConfirmed())

	_, ok := tx.PendingHash()
	assert.False(t, ok)
	_, err := tx.MultisigInfo()
	assert.Equal(t, fault.ErrNotConfirmed, err)

	b, err := json.Marshal(tx.ToDTO())
	require.Nil(t, err)
	assert.NotContains(t, string(b), "signatures")
	assert.Contains(t, string(b), `"otherTrans":{"timeStamp":1000`)
}

func TestCreateMultisigInvalid(t *testing.T) {
	_, err := transactionrecord.CreateMultisig(testWindow(t), nil, makePublicAccount(t, senderKey))
	assert.Equal(t, fault.ErrMissingInnerTransaction, err)

	outer, _ := makeMultisigTransfer(t)
	_, err = transactionrecord.CreateMultisig(testWindow(t), outer, makePublicAccount(t, senderKey))
	var unimplemented *fault.UnimplementedTransactionTypeError
	require.True(t, errors.As(err, &unimplemented))
	assert.Equal(t, int(transactionrecord.MultisigTag), unimplemented.Type)

	inner, err := transactionrecord.CreateTransfer(testWindow(t), makeAddress(t, testRecipient), mosaic.NewXEM(5), nil)
	require.Nil(t, err)
	_, err = transactionrecord.CreateMultisig(testWindow(t), inner, nil)
	assert.Equal(t, fault.ErrMissingSigner, err)
}

func TestMultisigNetworkPropagation(t *testing.T) {
	tx, inner := makeMultisigTransfer(t)
	require.Nil(t, tx.SetNetworkType(chain.MainNet))

	v, ok := tx.NetworkVersion()
	assert.True(t, ok)
	assert.Equal(t, int32(0x68000001), v)

	v, ok = inner.NetworkVersion()
	assert.True(t, ok)
	assert.Equal(t, int32(0x68000001), v)

	dto := tx.ToDTO().(*transactionrecord.MultisigDTO)
	assert.Equal(t, int32(0x68000001), dto.OtherTrans.Header().Version)
}

func TestMultisigRoundTrip(t *testing.T) {
	tx, inner := makeMultisigTransfer(t)

	decoded := roundTrip(t, tx)
	multisig, ok := decoded.(*transactionrecord.MultisigTransaction)
	require.True(t, ok)
	assert.Equal(t, tx, multisig)

	decodedInner, ok := multisig.OtherTransaction.(*transactionrecord.TransferTransaction)
	require.True(t, ok)
	assert.Equal(t, inner.Recipient, decodedInner.Recipient)
	assert.Equal(t, inner.Message, decodedInner.Message)
	assert.Equal(t, inner.Payload, decodedInner.Payload)
	assert.Equal(t, inner.Signer(), decodedInner.Signer())
}

func TestMultisigSignature(t *testing.T) {
	multisigAddress := makePublicAccount(t, senderKey).Address
	tx, err := transactionrecord.CreateMultisigSignature(testWindow(t), multisigAddress, innerHash)
	require.Nil(t, err)
	assert.Equal(t, uint64(150000), tx.Fee())
	assert.Equal(t, transactionrecord.MultisigSignatureTag, tx.Type())

	dto := tx.ToDTO().(*transactionrecord.MultisigSignatureDTO)
	assert.Equal(t, innerHash, dto.OtherHash.Data)
	assert.Equal(t, multisigAddress.Plain(), dto.OtherAccount)

	_, err = transactionrecord.CreateMultisigSignature(testWindow(t), nil, innerHash)
	assert.Equal(t, fault.ErrInvalidAddress, err)
}

func TestMultisigSignatureFromUnconfirmed(t *testing.T) {
	var dto transactionrecord.UnconfirmedDTO
	require.Nil(t, json.Unmarshal([]byte(unconfirmedMultisigJSON), &dto))

	tx, err := transactionrecord.MultisigSignatureFromUnconfirmed(testWindow(t), chain.TestNet, &dto)
	require.Nil(t, err)
	assert.Equal(t, innerHash, tx.OtherHash)
	assert.Equal(t, makePublicAccount(t, senderKey).Address, tx.OtherAccount)

	// same result from the decoded transaction
	decoded, err := transactionrecord.DecodeUnconfirmed(chain.TestNet, &dto)
	require.Nil(t, err)
	cosign, err := transactionrecord.CosignMultisig(testWindow(t), decoded.(*transactionrecord.MultisigTransaction))
	require.Nil(t, err)
	assert.Equal(t, tx, cosign)

	dto.Meta.Data = nil
	_, err = transactionrecord.MultisigSignatureFromUnconfirmed(testWindow(t), chain.TestNet, &dto)
	assert.Equal(t, fault.ErrNotPendingToSign, err)

	dto.Transaction.Type = transactionrecord.TransferTag
	_, err = transactionrecord.MultisigSignatureFromUnconfirmed(testWindow(t), chain.TestNet, &dto)
	assert.Equal(t, fault.ErrNotMultisigTransaction, err)
}

func TestCosignNotPending(t *testing.T) {
	tx, _ := makeMultisigTransfer(t)
	_, err := transactionrecord.CosignMultisig(testWindow(t), tx)
	assert.Equal(t, fault.ErrNotPendingToSign, err)
}
