// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/json"

	"github.com/nemclient/nemcore/message"
	"github.com/nemclient/nemcore/mosaic"
)

// DTO - any encoded transaction
type DTO interface {
	Header() *CommonDTO
}

// CommonDTO - fields present in every transaction
type CommonDTO struct {
	TimeStamp int64   `json:"timeStamp"`
	Signature string  `json:"signature,omitempty"`
	Fee       uint64  `json:"fee"`
	Type      TagType `json:"type"`
	Deadline  int64   `json:"deadline"`
	Version   int32   `json:"version"`
	Signer    string  `json:"signer,omitempty"`
}

// Header - access the common fields
func (c *CommonDTO) Header() *CommonDTO {
	return c
}

// HashDTO - wrapped hash
type HashDTO struct {
	Data string `json:"data"`
}

// TransferDTO - encoded transfer
type TransferDTO struct {
	CommonDTO
	Amount    uint64        `json:"amount"`
	Recipient string        `json:"recipient"`
	Message   message.DTO   `json:"message"`
	Mosaics   *[]mosaic.DTO `json:"mosaics,omitempty"` // absent in XEM mode
}

// ImportanceTransferDTO - encoded importance transfer
type ImportanceTransferDTO struct {
	CommonDTO
	RemoteAccount string         `json:"remoteAccount"`
	Mode          ImportanceMode `json:"mode"`
}

// ProvisionNamespaceDTO - encoded namespace provision
type ProvisionNamespaceDTO struct {
	CommonDTO
	RentalFeeSink string  `json:"rentalFeeSink"`
	RentalFee     uint64  `json:"rentalFee"`
	NewPart       string  `json:"newPart"`
	Parent        *string `json:"parent"` // null for a root namespace
}

// MosaicDefinitionCreationDTO - encoded mosaic definition creation
type MosaicDefinitionCreationDTO struct {
	CommonDTO
	CreationFee      uint64               `json:"creationFee"`
	CreationFeeSink  string               `json:"creationFeeSink"`
	MosaicDefinition mosaic.DefinitionDTO `json:"mosaicDefinition"`
}

// MosaicSupplyChangeDTO - encoded supply change
type MosaicSupplyChangeDTO struct {
	CommonDTO
	SupplyType SupplyType   `json:"supplyType"`
	Delta      uint64       `json:"delta"`
	MosaicId   mosaic.IdDTO `json:"mosaicId"`
}

// ModificationDTO - one cosignatory change
type ModificationDTO struct {
	ModificationType   ModificationType `json:"modificationType"`
	CosignatoryAccount string           `json:"cosignatoryAccount"`
}

// MinCosignatoriesDTO - relative change of required cosignatories
type MinCosignatoriesDTO struct {
	RelativeChange int `json:"relativeChange"`
}

// MultisigAggregateModificationDTO - encoded aggregate modification
type MultisigAggregateModificationDTO struct {
	CommonDTO
	Modifications    []ModificationDTO    `json:"modifications"`
	MinCosignatories *MinCosignatoriesDTO `json:"minCosignatories,omitempty"`
}

// MultisigSignatureDTO - encoded cosignature
type MultisigSignatureDTO struct {
	CommonDTO
	OtherHash    HashDTO `json:"otherHash"`
	OtherAccount string  `json:"otherAccount"`
}

// MultisigDTO - encoded multisig wrapper
type MultisigDTO struct {
	CommonDTO
	OtherTrans DTO                     `json:"otherTrans"`
	Signatures []*MultisigSignatureDTO `json:"signatures,omitempty"`
}

// TransactionDTO - any transaction as received from the wire
//
// the union of all variant fields, selected by Type
type TransactionDTO struct {
	CommonDTO

	// transfer
	Amount    uint64       `json:"amount"`
	Recipient string       `json:"recipient"`
	Message   *message.DTO `json:"message"`
	Mosaics   []mosaic.DTO `json:"mosaics"`

	// importance transfer
	RemoteAccount string         `json:"remoteAccount"`
	Mode          ImportanceMode `json:"mode"`

	// provision namespace
	RentalFeeSink string  `json:"rentalFeeSink"`
	RentalFee     uint64  `json:"rentalFee"`
	NewPart       string  `json:"newPart"`
	Parent        *string `json:"parent"`

	// mosaic definition creation
	CreationFee      uint64                `json:"creationFee"`
	CreationFeeSink  string                `json:"creationFeeSink"`
	MosaicDefinition *mosaic.DefinitionDTO `json:"mosaicDefinition"`

	// mosaic supply change
	SupplyType SupplyType    `json:"supplyType"`
	Delta      uint64        `json:"delta"`
	MosaicId   *mosaic.IdDTO `json:"mosaicId"`

	// multisig aggregate modification
	Modifications    []ModificationDTO    `json:"modifications"`
	MinCosignatories *MinCosignatoriesDTO `json:"minCosignatories"`

	// multisig signature
	OtherHash    *HashDTO `json:"otherHash"`
	OtherAccount string   `json:"otherAccount"`

	// multisig
	OtherTrans *TransactionDTO  `json:"otherTrans"`
	Signatures []TransactionDTO `json:"signatures"`
}

// ConfirmedMetaDTO - meta data of a transaction included in a block
type ConfirmedMetaDTO struct {
	Height    uint64  `json:"height"`
	Id        int64   `json:"id"`
	Hash      HashDTO `json:"hash"`
	InnerHash HashDTO `json:"innerHash"`
}

// ConfirmedDTO - confirmed transaction with meta data
type ConfirmedDTO struct {
	Meta        ConfirmedMetaDTO `json:"meta"`
	Transaction TransactionDTO   `json:"transaction"`
}

// ConfirmedPageDTO - a list response from the node
type ConfirmedPageDTO struct {
	Data []ConfirmedDTO `json:"data"`
}

// UnconfirmedMetaDTO - meta data of an unconfirmed transaction
type UnconfirmedMetaDTO struct {
	Data *string `json:"data"` // hash of the inner transaction of a pending multisig
}

// UnconfirmedDTO - unconfirmed transaction with meta data
type UnconfirmedDTO struct {
	Meta        UnconfirmedMetaDTO `json:"meta"`
	Transaction TransactionDTO     `json:"transaction"`
}

// ToWire - re-read an encoded DTO as it would arrive from the node
func ToWire(dto DTO) (*TransactionDTO, error) {
	b, err := json.Marshal(dto)
	if nil != err {
		return nil, err
	}
	wire := &TransactionDTO{}
	if err := json.Unmarshal(b, wire); nil != err {
		return nil, err
	}
	return wire, nil
}
