// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/nemclient/nemcore/account"
	"github.com/nemclient/nemcore/fault"
	"github.com/nemclient/nemcore/message"
	"github.com/nemclient/nemcore/mosaic"
)

// transfer versions
const (
	transferVersion       = 1
	mosaicTransferVersion = 2
)

// TransferPayload - what a transfer moves, either PlainXEM or WithMosaics
type TransferPayload interface {
	isTransferPayload()
}

// PlainXEM - only XEM is transferred
type PlainXEM struct {
	XEM mosaic.XEM
}

// WithMosaics - a list of mosaics, the amount multiplies every quantity
type WithMosaics struct {
	Multiplier mosaic.XEM
	Mosaics    []mosaic.Mosaic
}

func (PlainXEM) isTransferPayload()    {}
func (WithMosaics) isTransferPayload() {}

// TransferTransaction - transfer XEM or mosaics to a recipient
type TransferTransaction struct {
	Base
	Recipient *account.Address
	Message   message.Message
	Payload   TransferPayload
}

// CreateTransfer - transfer XEM
func CreateTransfer(timeWindow TimeWindow, recipient *account.Address, xem mosaic.XEM, m message.Message) (*TransferTransaction, error) {
	if nil == m {
		m = message.Empty
	}
	return newTransfer(timeWindow, transferVersion, TransferFee(xem, m), recipient, PlainXEM{XEM: xem}, m, nil)
}

// CreateTransferWithMosaics - transfer mosaics, fee depends on each mosaic's supply
func CreateTransferWithMosaics(timeWindow TimeWindow, recipient *account.Address, mosaics []mosaic.Transferable, m message.Message) (*TransferTransaction, error) {
	if nil == m {
		m = message.Empty
	}
	list := make([]mosaic.Mosaic, len(mosaics))
	for i, item := range mosaics {
		list[i] = item.Mosaic()
	}
	payload := WithMosaics{
		Multiplier: mosaic.XEMFromAbsolute(mosaic.MicroXEM),
		Mosaics:    list,
	}
	return newTransfer(timeWindow, mosaicTransferVersion, MosaicTransferFee(mosaics, m), recipient, payload, m, nil)
}

func newTransfer(timeWindow TimeWindow, version int32, fee uint64, recipient *account.Address, payload TransferPayload, m message.Message, signer *account.PublicAccount) (*TransferTransaction, error) {
	if nil == recipient {
		return nil, fault.ErrInvalidAddress
	}
	if err := checkRecipient(recipient, m); nil != err {
		return nil, err
	}
	b, err := newBase(TransferTag, version, timeWindow, fee, signer)
	if nil != err {
		return nil, err
	}
	return &TransferTransaction{
		Base:      b,
		Recipient: recipient,
		Message:   m,
		Payload:   payload,
	}, nil
}

// an encrypted message is only readable by the account it was made for
func checkRecipient(recipient *account.Address, m message.Message) error {
	encrypted, ok := m.(*message.Encrypted)
	if !ok || nil == encrypted.Recipient() {
		return nil
	}
	if !encrypted.Recipient().Address.Equal(recipient) {
		return &fault.RecipientMismatchError{
			Expected: recipient.Plain(),
			Actual:   encrypted.Recipient().Address.Plain(),
		}
	}
	return nil
}

// XEM - the XEM amount, only for plain transfers
func (tx *TransferTransaction) XEM() (mosaic.XEM, error) {
	p, ok := tx.Payload.(PlainXEM)
	if !ok {
		return mosaic.XEM{}, fault.ErrWrongTransactionMode
	}
	return p.XEM, nil
}

// Mosaics - the mosaic list, only for mosaic transfers
func (tx *TransferTransaction) Mosaics() ([]mosaic.Mosaic, error) {
	p, ok := tx.Payload.(WithMosaics)
	if !ok {
		return nil, fault.ErrWrongTransactionMode
	}
	return p.Mosaics, nil
}

// MosaicIds - ids of the transferred mosaics, only for mosaic transfers
func (tx *TransferTransaction) MosaicIds() ([]mosaic.MosaicId, error) {
	mosaics, err := tx.Mosaics()
	if nil != err {
		return nil, err
	}
	ids := make([]mosaic.MosaicId, len(mosaics))
	for i, m := range mosaics {
		ids[i] = m.Id
	}
	return ids, nil
}

// ContainsMosaics - true for a mosaic transfer
func (tx *TransferTransaction) ContainsMosaics() bool {
	_, ok := tx.Payload.(WithMosaics)
	return ok
}

// ToDTO - encode
func (tx *TransferTransaction) ToDTO() DTO {
	dto := &TransferDTO{
		CommonDTO: tx.commonDTO(),
		Recipient: tx.Recipient.Plain(),
		Message:   tx.Message.ToDTO(),
	}
	switch p := tx.Payload.(type) {
	case PlainXEM:
		dto.Amount = p.XEM.Quantity()
	case WithMosaics:
		dto.Amount = p.Multiplier.Quantity()
		list := make([]mosaic.DTO, len(p.Mosaics))
		for i, m := range p.Mosaics {
			list[i] = m.ToDTO()
		}
		dto.Mosaics = &list
	}
	return dto
}
