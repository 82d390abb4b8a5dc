// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/nemclient/nemcore/account"
	"github.com/nemclient/nemcore/mosaic"
)

// SupplyType - direction of a supply change
type SupplyType int

// supply change directions
const (
	SupplyIncrease SupplyType = 1
	SupplyDecrease SupplyType = 2
)

func (s SupplyType) String() string {
	switch s {
	case SupplyIncrease:
		return "increase"
	case SupplyDecrease:
		return "decrease"
	default:
		return "*unknown*"
	}
}

// MosaicSupplyChangeTransaction - change the supply of a mutable mosaic
type MosaicSupplyChangeTransaction struct {
	Base
	MosaicId   mosaic.MosaicId
	SupplyType SupplyType
	Delta      uint64
}

// CreateMosaicSupplyChange - increase or decrease by delta whole units
func CreateMosaicSupplyChange(timeWindow TimeWindow, id mosaic.MosaicId, supplyType SupplyType, delta uint64) (*MosaicSupplyChangeTransaction, error) {
	return newMosaicSupplyChange(timeWindow, 1, MosaicSupplyChangeFee, id, supplyType, delta, nil)
}

func newMosaicSupplyChange(timeWindow TimeWindow, version int32, fee uint64, id mosaic.MosaicId, supplyType SupplyType, delta uint64, signer *account.PublicAccount) (*MosaicSupplyChangeTransaction, error) {
	b, err := newBase(MosaicSupplyChangeTag, version, timeWindow, fee, signer)
	if nil != err {
		return nil, err
	}
	return &MosaicSupplyChangeTransaction{
		Base:       b,
		MosaicId:   id,
		SupplyType: supplyType,
		Delta:      delta,
	}, nil
}

// ToDTO - encode
func (tx *MosaicSupplyChangeTransaction) ToDTO() DTO {
	return &MosaicSupplyChangeDTO{
		CommonDTO:  tx.commonDTO(),
		SupplyType: tx.SupplyType,
		Delta:      tx.Delta,
		MosaicId:   tx.MosaicId.ToDTO(),
	}
}
