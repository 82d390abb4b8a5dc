// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pending

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemclient/nemcore/account"
	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/fault"
	"github.com/nemclient/nemcore/message"
	"github.com/nemclient/nemcore/mosaic"
	"github.com/nemclient/nemcore/transactionrecord"
)

func TestAddGetRemove(t *testing.T) {
	s := makeStore(t, 0)
	assert.Equal(t, DefaultExpiry, s.expiry)
	assert.Equal(t, chain.TestNet, s.Network())

	hash, err := s.Add(makePending(t, secondHash))
	require.Nil(t, err)
	assert.Equal(t, secondHash, hash)

	hash, err = s.AddJSON([]byte(unconfirmedMultisigJSON(firstHash)))
	require.Nil(t, err)
	assert.Equal(t, firstHash, hash)

	assert.Equal(t, []string{firstHash, secondHash}, s.Hashes())
	assert.Equal(t, 2, s.Count())

	tx, err := s.Get(firstHash)
	require.Nil(t, err)
	pendingHash, ok := tx.PendingHash()
	assert.True(t, ok)
	assert.Equal(t, firstHash, pendingHash)

	_, err = s.Add(makePending(t, firstHash))
	assert.Equal(t, fault.ErrAlreadyPending, err)

	assert.True(t, s.Remove(firstHash))
	assert.False(t, s.Remove(firstHash))
	_, err = s.Get(firstHash)
	assert.Equal(t, fault.ErrPendingNotFound, err)

	s.Flush()
	assert.Equal(t, 0, len(s.Hashes()))
}

func TestAddRejects(t *testing.T) {
	s := makeStore(t, time.Minute)

	_, err := s.AddJSON([]byte(unconfirmedTransferJSON()))
	assert.Equal(t, fault.ErrNotMultisigTransaction, err)

	_, err = s.AddJSON([]byte(`{"meta":`))
	assert.NotNil(t, err)

	_, err = s.AddJSON([]byte(unconfirmedMultisigJSON("")))
	assert.Equal(t, fault.ErrNotPendingToSign, err)
	assert.Equal(t, 0, s.Count())

	recipient, err := account.NewAddress(testRecipient)
	require.Nil(t, err)
	inner, err := transactionrecord.CreateTransfer(transactionrecord.TimeWindowFromDTO(1000, 8200), recipient, mosaic.NewXEM(1), message.Empty)
	require.Nil(t, err)
	multisigAccount, err := account.NewPublicAccount(cosignatoryKey, chain.TestNet)
	require.Nil(t, err)
	fresh, err := transactionrecord.CreateMultisig(transactionrecord.TimeWindowFromDTO(1000, 8200), inner, multisigAccount)
	require.Nil(t, err)
	_, err = s.Add(fresh)
	assert.Equal(t, fault.ErrNotPendingToSign, err)

	s.now = func() time.Time { return time.Unix(transactionrecord.GenesisEpoch+8200, 0) }
	_, err = s.Add(makePending(t, firstHash))
	assert.Equal(t, fault.ErrTransactionExpired, err)
}

func TestExpiry(t *testing.T) {
	s := makeStore(t, 50*time.Millisecond)
	_, err := s.Add(makePending(t, firstHash))
	require.Nil(t, err)

	// deadline closer than the store expiry
	s.now = func() time.Time {
		return time.Unix(transactionrecord.GenesisEpoch+8200, 0).Add(-50 * time.Millisecond)
	}
	s.expiry = time.Hour
	_, err = s.Add(makePending(t, secondHash))
	require.Nil(t, err)

	_, err = s.Get(firstHash)
	assert.Nil(t, err)

	time.Sleep(100 * time.Millisecond)

	_, err = s.Get(firstHash)
	assert.Equal(t, fault.ErrPendingNotFound, err)
	_, err = s.Get(secondHash)
	assert.Equal(t, fault.ErrPendingNotFound, err)
}

func TestCosign(t *testing.T) {
	s := makeStore(t, time.Minute)
	_, err := s.Add(makePending(t, firstHash))
	require.Nil(t, err)

	tw, err := transactionrecord.NewTimeWindow(insideWindow(), time.Hour)
	require.Nil(t, err)

	cosignature, err := s.Cosign(firstHash, tw)
	require.Nil(t, err)
	assert.Equal(t, firstHash, cosignature.OtherHash)

	multisigAddress, err := account.AddressFromPublicKey(senderKey, chain.TestNet)
	require.Nil(t, err)
	assert.Equal(t, multisigAddress, cosignature.OtherAccount)
	assert.Equal(t, uint64(150000), cosignature.Fee())

	_, err = s.Cosign(secondHash, tw)
	assert.Equal(t, fault.ErrPendingNotFound, err)
}
