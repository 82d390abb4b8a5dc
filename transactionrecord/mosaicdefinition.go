// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/nemclient/nemcore/account"
	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/fault"
	"github.com/nemclient/nemcore/mosaic"
)

// MosaicDefinitionCreationTransaction - create or redefine a mosaic
type MosaicDefinitionCreationTransaction struct {
	Base
	CreationFee      uint64
	CreationFeeSink  *account.Address
	MosaicDefinition *mosaic.Definition
}

// CreateMosaicDefinition - creation fee sink depends on the network
func CreateMosaicDefinition(network chain.Network, timeWindow TimeWindow, definition *mosaic.Definition) (*MosaicDefinitionCreationTransaction, error) {
	sink, err := MosaicCreationFeeSink(network)
	if nil != err {
		return nil, err
	}
	return newMosaicDefinitionCreation(timeWindow, 1, MosaicDefinitionCreationFee, MosaicCreationFee, sink, definition, nil)
}

func newMosaicDefinitionCreation(timeWindow TimeWindow, version int32, fee uint64, creationFee uint64, sink *account.Address, definition *mosaic.Definition, signer *account.PublicAccount) (*MosaicDefinitionCreationTransaction, error) {
	if nil == definition {
		return nil, fault.ErrInvalidMosaicId
	}
	if !definition.Creator.HasPublicKey() {
		return nil, fault.ErrInvalidPublicKey
	}
	if err := definition.Properties.Validate(); nil != err {
		return nil, err
	}
	b, err := newBase(MosaicDefinitionCreationTag, version, timeWindow, fee, signer)
	if nil != err {
		return nil, err
	}
	return &MosaicDefinitionCreationTransaction{
		Base:             b,
		CreationFee:      creationFee,
		CreationFeeSink:  sink,
		MosaicDefinition: definition,
	}, nil
}

// ToDTO - encode, an absent levy is null
func (tx *MosaicDefinitionCreationTransaction) ToDTO() DTO {
	return &MosaicDefinitionCreationDTO{
		CommonDTO:        tx.commonDTO(),
		CreationFee:      tx.CreationFee,
		CreationFeeSink:  tx.CreationFeeSink.Plain(),
		MosaicDefinition: tx.MosaicDefinition.ToDTO(),
	}
}
