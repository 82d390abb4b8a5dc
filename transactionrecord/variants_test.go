// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/fault"
	"github.com/nemclient/nemcore/mode"
	"github.com/nemclient/nemcore/mosaic"
	"github.com/nemclient/nemcore/transactionrecord"
)

func TestImportanceTransfer(t *testing.T) {
	tx, err := transactionrecord.CreateImportanceTransfer(testWindow(t), transactionrecord.ImportanceActivate, makePublicAccount(t, remoteKey))
	require.Nil(t, err)
	assert.Equal(t, uint64(150000), tx.Fee())
	assert.Equal(t, "activate", tx.Mode.String())

	dto := tx.ToDTO().(*transactionrecord.ImportanceTransferDTO)
	assert.Equal(t, remoteKey, dto.RemoteAccount)
	assert.Equal(t, transactionrecord.ImportanceActivate, dto.Mode)

	assert.Equal(t, tx, roundTrip(t, tx))

	_, err = transactionrecord.CreateImportanceTransfer(testWindow(t), transactionrecord.ImportanceDeactivate, nil)
	assert.Equal(t, fault.ErrInvalidPublicKey, err)
}

func TestProvisionNamespace(t *testing.T) {
	root, err := transactionrecord.CreateProvisionNamespace(chain.TestNet, testWindow(t), "nemclient", nil)
	require.Nil(t, err)
	assert.True(t, root.IsRoot())
	assert.Equal(t, "nemclient", root.FullName())
	assert.Equal(t, uint64(100000000), root.RentalFee)
	assert.Equal(t, uint64(150000), root.Fee())
	assert.Equal(t, "TAMESPACEWH4MKFMBCVFERDPOOP4FK7MTDJEYP35", root.RentalFeeSink.Plain())

	b, err := json.Marshal(root.ToDTO())
	require.Nil(t, err)
	assert.True(t, strings.HasSuffix(string(b), `"newPart":"nemclient","parent":null}`), "encoded: %s", b)
	assert.Equal(t, root, roundTrip(t, root))

	parent := "nemclient"
	sub, err := transactionrecord.CreateProvisionNamespace(chain.TestNet, testWindow(t), "tools", &parent)
	require.Nil(t, err)
	assert.False(t, sub.IsRoot())
	assert.Equal(t, "nemclient.tools", sub.FullName())
	assert.Equal(t, uint64(10000000), sub.RentalFee)

	b, err = json.Marshal(sub.ToDTO())
	require.Nil(t, err)
	assert.True(t, strings.HasSuffix(string(b), `"newPart":"tools","parent":"nemclient"}`), "encoded: %s", b)
	assert.Equal(t, sub, roundTrip(t, sub))

	_, err = transactionrecord.CreateProvisionNamespace(chain.MijinNet, testWindow(t), "nemclient", nil)
	assert.Equal(t, fault.ErrUnsupportedNetwork, err)
}

// the same call made under each bootstrap state selects a different sink
func TestProvisionNamespaceSinkFollowsNetwork(t *testing.T) {
	sinks := make([]string, 0, 2)
	for _, network := range []chain.Network{chain.MainNet, chain.TestNet} {
		require.Nil(t, mode.Initialise(network))

		current, err := mode.Network()
		require.Nil(t, err)
		tx, err := transactionrecord.CreateProvisionNamespace(current, testWindow(t), "nemclient", nil)
		require.Nil(t, err)
		sinks = append(sinks, tx.RentalFeeSink.Plain())

		require.Nil(t, mode.Finalise())
	}
	assert.NotEqual(t, sinks[0], sinks[1])
	assert.Equal(t, "NAMESPACEWH4MKFMBCVFERDPOOP4FK7MTBXDPZZA", sinks[0])
}

func TestMosaicDefinitionCreation(t *testing.T) {
	id, err := mosaic.NewMosaicId("nemclient", "token")
	require.Nil(t, err)
	properties, err := mosaic.NewProperties(2, 5000000, true, true)
	require.Nil(t, err)
	definition := &mosaic.Definition{
		Creator:     makePublicAccount(t, senderKey),
		Id:          id,
		Description: "a token",
		Properties:  properties,
	}

	tx, err := transactionrecord.CreateMosaicDefinition(chain.TestNet, testWindow(t), definition)
	require.Nil(t, err)
	assert.Equal(t, uint64(150000), tx.Fee())
	assert.Equal(t, uint64(10000000), tx.CreationFee)
	assert.Equal(t, "TBMOSAICOD4F54EE5CDMR23CCBGOAM2XSJBR5OLC", tx.CreationFeeSink.Plain())

	b, err := json.Marshal(tx.ToDTO())
	require.Nil(t, err)
	assert.Contains(t, string(b), `"levy":null`)
	assert.Equal(t, tx, roundTrip(t, tx))

	mainnet, err := transactionrecord.CreateMosaicDefinition(chain.MainNet, testWindow(t), definition)
	require.Nil(t, err)
	assert.Equal(t, "NBMOSAICOD4F54EE5CDMR23CCBGOAM2XSIUX6TRS", mainnet.CreationFeeSink.Plain())
}

func TestMosaicDefinitionCreationWithLevy(t *testing.T) {
	id, err := mosaic.NewMosaicId("nemclient", "token")
	require.Nil(t, err)
	definition := &mosaic.Definition{
		Creator:     makePublicAccount(t, senderKey),
		Id:          id,
		Description: "levied",
		Properties:  mosaic.DefaultProperties(),
		Levy: &mosaic.Levy{
			Type:      mosaic.Absolute,
			Recipient: makeAddress(t, testRecipient),
			MosaicId:  mosaic.XEMId,
			Fee:       1000,
		},
	}

	tx, err := transactionrecord.CreateMosaicDefinition(chain.TestNet, testWindow(t), definition)
	require.Nil(t, err)

	b, err := json.Marshal(tx.ToDTO())
	require.Nil(t, err)
	assert.Contains(t, string(b), `"levy":{"type":1,"recipient":"TAMESPACEWH4MKFMBCVFERDPOOP4FK7MTDJEYP35","mosaicId":{"namespaceId":"nem","name":"xem"},"fee":1000}`)
	assert.Equal(t, tx, roundTrip(t, tx))
}

func TestMosaicDefinitionInvalid(t *testing.T) {
	_, err := transactionrecord.CreateMosaicDefinition(chain.TestNet, testWindow(t), nil)
	assert.Equal(t, fault.ErrInvalidMosaicId, err)

	definition := &mosaic.Definition{
		Creator:    makePublicAccount(t, senderKey),
		Properties: mosaic.Properties{Divisibility: 7, InitialSupply: 1000},
	}
	_, err = transactionrecord.CreateMosaicDefinition(chain.TestNet, testWindow(t), definition)
	assert.Equal(t, fault.ErrInvalidDivisibility, err)

	anonymous := &mosaic.Definition{
		Id:         mosaic.MosaicId{NamespaceId: "nemclient", Name: "token"},
		Properties: mosaic.DefaultProperties(),
	}
	_, err = transactionrecord.CreateMosaicDefinition(chain.TestNet, testWindow(t), anonymous)
	assert.Equal(t, fault.ErrInvalidPublicKey, err)
}

func TestMosaicSupplyChange(t *testing.T) {
	id, err := mosaic.NewMosaicId("nemclient", "token")
	require.Nil(t, err)
	tx, err := transactionrecord.CreateMosaicSupplyChange(testWindow(t), id, transactionrecord.SupplyDecrease, 250)
	require.Nil(t, err)
	assert.Equal(t, uint64(150000), tx.Fee())
	assert.Equal(t, "decrease", tx.SupplyType.String())

	b, err := json.Marshal(tx.ToDTO())
	require.Nil(t, err)
	assert.True(t, strings.HasSuffix(string(b), `"supplyType":2,"delta":250,"mosaicId":{"namespaceId":"nemclient","name":"token"}}`), "encoded: %s", b)
	assert.Equal(t, tx, roundTrip(t, tx))
}

func TestMultisigAggregateModification(t *testing.T) {
	modifications := []transactionrecord.CosignatoryModification{
		{Type: transactionrecord.CosignatoryAdd, Cosignatory: makePublicAccount(t, cosignatoryKey)},
		{Type: transactionrecord.CosignatoryDelete, Cosignatory: makePublicAccount(t, remoteKey)},
	}
	change := 1
	tx, err := transactionrecord.CreateMultisigAggregateModification(testWindow(t), modifications, &change)
	require.Nil(t, err)
	assert.Equal(t, uint64(500000), tx.Fee())
	assert.Equal(t, int32(2), tx.Version())

	b, err := json.Marshal(tx.ToDTO())
	require.Nil(t, err)
	assert.Contains(t, string(b), `"minCosignatories":{"relativeChange":1}`)
	assert.Equal(t, tx, roundTrip(t, tx))

	noChange, err := transactionrecord.CreateMultisigAggregateModification(testWindow(t), modifications, nil)
	require.Nil(t, err)
	b, err = json.Marshal(noChange.ToDTO())
	require.Nil(t, err)
	assert.NotContains(t, string(b), "minCosignatories")
	assert.Equal(t, noChange, roundTrip(t, noChange))

	_, err = transactionrecord.CreateMultisigAggregateModification(testWindow(t), []transactionrecord.CosignatoryModification{
		{Type: transactionrecord.CosignatoryAdd},
	}, nil)
	assert.Equal(t, fault.ErrInvalidPublicKey, err)
}
