// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mosaic

import (
	"math"
)

// XEM constants
const (
	XEMDivisibility  = 6
	XEMInitialSupply = 8999999999
	MicroXEM         = 1000000 // quantity of one XEM
)

// XEMId - the native currency as a mosaic
var XEMId = MosaicId{NamespaceId: "nem", Name: "xem"}

// XEMProperties - properties of the native currency
var XEMProperties = Properties{
	Divisibility:  XEMDivisibility,
	InitialSupply: XEMInitialSupply,
	Transferable:  true,
	SupplyMutable: false,
}

// XEM - an amount of the native currency held in micro XEM
type XEM struct {
	quantity uint64
}

// NewXEM - from a decimal amount of XEM
func NewXEM(amount float64) XEM {
	return XEM{quantity: toQuantity(amount, XEMDivisibility)}
}

// XEMFromAbsolute - from a quantity of micro XEM
func XEMFromAbsolute(quantity uint64) XEM {
	return XEM{quantity: quantity}
}

// Quantity - micro XEM
func (x XEM) Quantity() uint64 {
	return x.quantity
}

// Amount - decimal XEM
func (x XEM) Amount() float64 {
	return float64(x.quantity) / math.Pow10(XEMDivisibility)
}

// Transferable - XEM as a mosaic, for transfers that carry it among other mosaics
func (x XEM) Transferable() Transferable {
	return Transferable{
		Id:         XEMId,
		Properties: XEMProperties,
		Quantity:   x.quantity,
	}
}
