// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mosaic

import (
	"math"
	"strings"

	"github.com/nemclient/nemcore/fault"
)

// MosaicId - namespace qualified mosaic name
type MosaicId struct {
	NamespaceId string
	Name        string
}

// IdDTO - wire form of a mosaic id
type IdDTO struct {
	NamespaceId string `json:"namespaceId"`
	Name        string `json:"name"`
}

// NewMosaicId - both parts are required
func NewMosaicId(namespaceId string, name string) (MosaicId, error) {
	if "" == namespaceId || "" == name {
		return MosaicId{}, fault.ErrInvalidMosaicId
	}
	return MosaicId{NamespaceId: namespaceId, Name: name}, nil
}

// ParseMosaicId - parse "namespace:name"
func ParseMosaicId(s string) (MosaicId, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return MosaicId{}, fault.ErrInvalidMosaicId
	}
	return NewMosaicId(s[:i], s[i+1:])
}

// Equal - value equality
func (id MosaicId) Equal(other MosaicId) bool {
	return id.NamespaceId == other.NamespaceId && id.Name == other.Name
}

func (id MosaicId) String() string {
	return id.NamespaceId + ":" + id.Name
}

// ToDTO - wire form
func (id MosaicId) ToDTO() IdDTO {
	return IdDTO{NamespaceId: id.NamespaceId, Name: id.Name}
}

// IdFromDTO - from wire form
func IdFromDTO(dto IdDTO) MosaicId {
	return MosaicId{NamespaceId: dto.NamespaceId, Name: dto.Name}
}

// Mosaic - a quantity of a mosaic as carried by a transfer
//
// quantity is in the smallest unit (amount * 10^divisibility)
type Mosaic struct {
	Id       MosaicId
	Quantity uint64
}

// DTO - wire form of a mosaic
type DTO struct {
	MosaicId IdDTO  `json:"mosaicId"`
	Quantity uint64 `json:"quantity"`
}

// ToDTO - wire form
func (m Mosaic) ToDTO() DTO {
	return DTO{MosaicId: m.Id.ToDTO(), Quantity: m.Quantity}
}

// FromDTO - from wire form
func FromDTO(dto DTO) Mosaic {
	return Mosaic{Id: IdFromDTO(dto.MosaicId), Quantity: dto.Quantity}
}

// Transferable - a mosaic quantity together with its definition
// properties, needed to compute transfer fees
type Transferable struct {
	Id         MosaicId
	Properties Properties
	Levy       *Levy
	Quantity   uint64
}

// NewTransferable - quantity from a decimal amount
func NewTransferable(id MosaicId, properties Properties, amount float64) Transferable {
	return Transferable{
		Id:         id,
		Properties: properties,
		Quantity:   toQuantity(amount, properties.Divisibility),
	}
}

// Amount - quantity as a decimal amount
func (t Transferable) Amount() float64 {
	return float64(t.Quantity) / math.Pow10(t.Properties.Divisibility)
}

// Mosaic - the wire relevant part
func (t Transferable) Mosaic() Mosaic {
	return Mosaic{Id: t.Id, Quantity: t.Quantity}
}

func toQuantity(amount float64, divisibility int) uint64 {
	if amount <= 0 {
		return 0
	}
	return uint64(math.Round(amount * math.Pow10(divisibility)))
}
