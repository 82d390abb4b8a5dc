// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"math"

	"github.com/nemclient/nemcore/message"
	"github.com/nemclient/nemcore/mosaic"
)

// fee units, all fees are in micro XEM
const (
	feeUnit = 50000 // 0.05 XEM

	maximumFeeUnits     = 25
	xemPerFeeUnit       = 10000 // whole XEM transferred per fee unit
	messageBytesPerUnit = 32

	smallBusinessSupply = 10000
	maximumQuantity     = 9000000000000000
	xemEquivalentFactor = 900000
	supplyLogFactor     = 0.8
)

// fixed fees
const (
	ImportanceTransferFee            = 3 * feeUnit
	ProvisionNamespaceFee            = 3 * feeUnit
	MosaicDefinitionCreationFee      = 3 * feeUnit
	MosaicSupplyChangeFee            = 3 * feeUnit
	MultisigAggregateModificationFee = 10 * feeUnit
	MultisigSignatureFee             = 3 * feeUnit
	MultisigFee                      = 3 * feeUnit

	RootNamespaceRentalFee = 100 * mosaic.MicroXEM
	SubNamespaceRentalFee  = 10 * mosaic.MicroXEM
	MosaicCreationFee      = 10 * mosaic.MicroXEM
)

// TransferFee - minimum fee for a plain XEM transfer
func TransferFee(xem mosaic.XEM, m message.Message) uint64 {
	units := xem.Quantity() / (xemPerFeeUnit * mosaic.MicroXEM)
	if units < 1 {
		units = 1
	}
	if units > maximumFeeUnits {
		units = maximumFeeUnits
	}
	return feeUnit*units + MessageFee(m)
}

// MosaicTransferFee - minimum fee for a transfer of mosaics
func MosaicTransferFee(mosaics []mosaic.Transferable, m message.Message) uint64 {
	total := 0.0
	for _, item := range mosaics {
		total += mosaicFee(item)
	}
	return uint64(math.Floor(total)) + MessageFee(m)
}

// fee contribution of a single mosaic
//
// small business mosaics pay a flat unit, others pay by their share
// of the total supply reduced by a supply related adjustment
func mosaicFee(item mosaic.Transferable) float64 {
	p := item.Properties
	if 0 == p.Divisibility && p.InitialSupply <= smallBusinessSupply {
		return feeUnit
	}

	totalQuantity := float64(p.InitialSupply) * math.Pow10(p.Divisibility)
	supplyAdjustment := math.Floor(supplyLogFactor * math.Log(maximumQuantity/totalQuantity))
	xemEquivalentFee := math.Min(maximumFeeUnits, float64(item.Quantity)*xemEquivalentFactor/float64(p.InitialSupply))

	return feeUnit * math.Max(1, xemEquivalentFee-supplyAdjustment)
}

// MessageFee - one unit per started 32 bytes of payload, nothing for empty
func MessageFee(m message.Message) uint64 {
	if nil == m || m.IsEmpty() {
		return 0
	}
	payloadBytes := uint64(len(m.Payload()) / 2)
	return feeUnit * (payloadBytes/messageBytesPerUnit + 1)
}
