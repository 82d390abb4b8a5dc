// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/json"
	"math"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/nemclient/nemcore/account"
	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/fault"
	"github.com/nemclient/nemcore/message"
	"github.com/nemclient/nemcore/mosaic"
)

// how the transfer amount of a particular wire shape is read
type amountReader func(amount uint64) (mosaic.XEM, error)

// confirmed and embedded transfers carry micro XEM
func absoluteAmount(amount uint64) (mosaic.XEM, error) {
	return mosaic.XEMFromAbsolute(amount), nil
}

// unconfirmed transfers are read as whole XEM, the micro XEM quantity
// must still fit in 64 bits
func wholeAmount(amount uint64) (mosaic.XEM, error) {
	if amount > math.MaxUint64/mosaic.MicroXEM {
		return mosaic.XEM{}, fault.ErrInvalidAmount
	}
	return mosaic.XEMFromAbsolute(amount * mosaic.MicroXEM), nil
}

// context for one decode call
type decoder struct {
	network     chain.Network
	amount      amountReader
	info        *TransactionInfo
	innerHash   string
	pendingHash *string
}

// DecodeConfirmed - decode a transaction included in a block
func DecodeConfirmed(network chain.Network, dto *ConfirmedDTO) (Transaction, error) {
	d := decoder{
		network: network,
		amount:  absoluteAmount,
		info: &TransactionInfo{
			Height: dto.Meta.Height,
			Id:     dto.Meta.Id,
			Hash:   dto.Meta.Hash.Data,
		},
		innerHash: dto.Meta.InnerHash.Data,
	}
	return d.decode(&dto.Transaction)
}

// DecodeUnconfirmed - decode a transaction waiting in the unconfirmed list
//
// the meta data hash is only kept for multisig transactions, it marks
// them as pending to sign
func DecodeUnconfirmed(network chain.Network, dto *UnconfirmedDTO) (Transaction, error) {
	d := decoder{
		network: network,
		amount:  wholeAmount,
	}
	if nil != dto.Meta.Data && "" != *dto.Meta.Data {
		d.pendingHash = dto.Meta.Data
	}
	return d.decode(&dto.Transaction)
}

// DecodeEmbedded - decode a transaction without meta data, as wrapped
// by a multisig transaction
func DecodeEmbedded(network chain.Network, dto *TransactionDTO) (Transaction, error) {
	d := decoder{
		network: network,
		amount:  absoluteAmount,
	}
	return d.decode(dto)
}

// DecodeConfirmedPage - decode every entry of a node list response
func DecodeConfirmedPage(network chain.Network, page *ConfirmedPageDTO) ([]Transaction, error) {
	transactions := make([]Transaction, 0, len(page.Data))
	for i := range page.Data {
		tx, err := DecodeConfirmed(network, &page.Data[i])
		if nil != err {
			return nil, errors.Wrapf(err, "page entry: %d", i)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// ParseConfirmed - decode confirmed transaction JSON
func ParseConfirmed(network chain.Network, data []byte) (Transaction, error) {
	var dto ConfirmedDTO
	if err := json.Unmarshal(data, &dto); nil != err {
		return nil, errors.Wrap(err, "parse confirmed")
	}
	return DecodeConfirmed(network, &dto)
}

// ParseUnconfirmed - decode unconfirmed transaction JSON
func ParseUnconfirmed(network chain.Network, data []byte) (Transaction, error) {
	var dto UnconfirmedDTO
	if err := json.Unmarshal(data, &dto); nil != err {
		return nil, errors.Wrap(err, "parse unconfirmed")
	}
	return DecodeUnconfirmed(network, &dto)
}

// ParseEmbedded - decode transaction JSON without meta data
func ParseEmbedded(network chain.Network, data []byte) (Transaction, error) {
	var dto TransactionDTO
	if err := json.Unmarshal(data, &dto); nil != err {
		return nil, errors.Wrap(err, "parse embedded")
	}
	return DecodeEmbedded(network, &dto)
}

// ParseConfirmedPage - decode a node list response
func ParseConfirmedPage(network chain.Network, data []byte) ([]Transaction, error) {
	var page ConfirmedPageDTO
	if err := json.Unmarshal(data, &page); nil != err {
		return nil, errors.Wrap(err, "parse page")
	}
	return DecodeConfirmedPage(network, &page)
}

// DecodeConfirmedMap - decode a generic map as delivered by a listener
func DecodeConfirmedMap(network chain.Network, m map[string]interface{}) (Transaction, error) {
	var dto ConfirmedDTO
	if err := decodeMap(m, &dto); nil != err {
		return nil, err
	}
	return DecodeConfirmed(network, &dto)
}

// DecodeUnconfirmedMap - decode a generic map as delivered by a listener
func DecodeUnconfirmedMap(network chain.Network, m map[string]interface{}) (Transaction, error) {
	var dto UnconfirmedDTO
	if err := decodeMap(m, &dto); nil != err {
		return nil, err
	}
	return DecodeUnconfirmed(network, &dto)
}

func decodeMap(m map[string]interface{}, result interface{}) error {
	md, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Squash:  true,
		Result:  result,
	})
	if nil != err {
		return err
	}
	if err := md.Decode(m); nil != err {
		return errors.Wrap(err, "decode map")
	}
	return nil
}

// dispatch on the type code
func (d *decoder) decode(dto *TransactionDTO) (Transaction, error) {
	switch dto.Type {
	case TransferTag:
		return d.transfer(dto)
	case ImportanceTransferTag:
		return d.importanceTransfer(dto)
	case ProvisionNamespaceTag:
		return d.provisionNamespace(dto)
	case MosaicDefinitionCreationTag:
		return d.mosaicDefinitionCreation(dto)
	case MosaicSupplyChangeTag:
		return d.mosaicSupplyChange(dto)
	case MultisigTag:
		return d.multisig(dto)
	case MultisigAggregateModificationTag:
		return d.multisigAggregateModification(dto)
	default:
		return nil, &fault.UnimplementedTransactionTypeError{Type: int(dto.Type)}
	}
}

// the wire always carries a signer, locally built inner transactions may not
func (d *decoder) signer(key string) (*account.PublicAccount, error) {
	if "" == key {
		return nil, nil
	}
	if !account.ValidPublicKey(key) {
		return nil, fault.ErrInvalidSigner
	}
	return account.NewPublicAccount(key, d.network)
}

func (d *decoder) base(dto *TransactionDTO) (Base, error) {
	signer, err := d.signer(dto.Signer)
	if nil != err {
		return Base{}, err
	}
	return decodedBase(dto.Type, &dto.CommonDTO, signer, d.info)
}

func (d *decoder) transfer(dto *TransactionDTO) (Transaction, error) {
	b, err := d.base(dto)
	if nil != err {
		return nil, err
	}
	recipient, err := account.NewAddress(dto.Recipient)
	if nil != err {
		return nil, errors.Wrapf(err, "recipient: %q", dto.Recipient)
	}
	m, err := message.FromDTO(dto.Message)
	if nil != err {
		return nil, errors.Wrap(err, "message")
	}

	amount, err := d.amount(dto.Amount)
	if nil != err {
		return nil, errors.Wrapf(err, "amount: %d", dto.Amount)
	}

	var payload TransferPayload
	if nil == dto.Mosaics {
		payload = PlainXEM{XEM: amount}
	} else {
		list := make([]mosaic.Mosaic, len(dto.Mosaics))
		for i, item := range dto.Mosaics {
			list[i] = mosaic.FromDTO(item)
		}
		payload = WithMosaics{
			Multiplier: amount,
			Mosaics:    list,
		}
	}

	return &TransferTransaction{
		Base:      b,
		Recipient: recipient,
		Message:   m,
		Payload:   payload,
	}, nil
}

func (d *decoder) importanceTransfer(dto *TransactionDTO) (Transaction, error) {
	b, err := d.base(dto)
	if nil != err {
		return nil, err
	}
	remote, err := account.NewPublicAccount(dto.RemoteAccount, d.network)
	if nil != err {
		return nil, errors.Wrap(err, "remote account")
	}
	return &ImportanceTransferTransaction{
		Base:          b,
		RemoteAccount: remote,
		Mode:          dto.Mode,
	}, nil
}

func (d *decoder) provisionNamespace(dto *TransactionDTO) (Transaction, error) {
	b, err := d.base(dto)
	if nil != err {
		return nil, err
	}
	sink, err := account.NewAddress(dto.RentalFeeSink)
	if nil != err {
		return nil, errors.Wrapf(err, "rental fee sink: %q", dto.RentalFeeSink)
	}
	return &ProvisionNamespaceTransaction{
		Base:          b,
		RentalFeeSink: sink,
		RentalFee:     dto.RentalFee,
		NewPart:       dto.NewPart,
		Parent:        dto.Parent,
	}, nil
}

func (d *decoder) mosaicDefinitionCreation(dto *TransactionDTO) (Transaction, error) {
	b, err := d.base(dto)
	if nil != err {
		return nil, err
	}
	if nil == dto.MosaicDefinition {
		return nil, fault.ErrInvalidMosaicId
	}
	definition, err := mosaic.DefinitionFromDTO(dto.MosaicDefinition, d.network)
	if nil != err {
		return nil, errors.Wrap(err, "mosaic definition")
	}
	sink, err := account.NewAddress(dto.CreationFeeSink)
	if nil != err {
		return nil, errors.Wrapf(err, "creation fee sink: %q", dto.CreationFeeSink)
	}
	return &MosaicDefinitionCreationTransaction{
		Base:             b,
		CreationFee:      dto.CreationFee,
		CreationFeeSink:  sink,
		MosaicDefinition: definition,
	}, nil
}

func (d *decoder) mosaicSupplyChange(dto *TransactionDTO) (Transaction, error) {
	b, err := d.base(dto)
	if nil != err {
		return nil, err
	}
	if nil == dto.MosaicId {
		return nil, fault.ErrInvalidMosaicId
	}
	return &MosaicSupplyChangeTransaction{
		Base:       b,
		MosaicId:   mosaic.IdFromDTO(*dto.MosaicId),
		SupplyType: dto.SupplyType,
		Delta:      dto.Delta,
	}, nil
}

func (d *decoder) multisigAggregateModification(dto *TransactionDTO) (Transaction, error) {
	b, err := d.base(dto)
	if nil != err {
		return nil, err
	}
	modifications, err := modificationsFromDTO(dto.Modifications, d.network)
	if nil != err {
		return nil, errors.Wrap(err, "modifications")
	}
	var relativeChange *int
	if nil != dto.MinCosignatories {
		change := dto.MinCosignatories.RelativeChange
		relativeChange = &change
	}
	return &MultisigAggregateModificationTransaction{
		Base:           b,
		Modifications:  modifications,
		RelativeChange: relativeChange,
	}, nil
}

func (d *decoder) multisig(dto *TransactionDTO) (Transaction, error) {
	b, err := d.base(dto)
	if nil != err {
		return nil, err
	}
	if nil == dto.OtherTrans {
		return nil, fault.ErrMissingInnerTransaction
	}
	inner, err := DecodeEmbedded(d.network, dto.OtherTrans)
	if nil != err {
		return nil, errors.Wrap(err, "inner transaction")
	}

	signatures := make([]*MultisigSignatureTransaction, len(dto.Signatures))
	for i := range dto.Signatures {
		s, err := d.multisigSignature(&dto.Signatures[i])
		if nil != err {
			return nil, errors.Wrapf(err, "signature: %d", i)
		}
		signatures[i] = s
	}

	return &MultisigTransaction{
		Base:             b,
		OtherTransaction: inner,
		Signatures:       signatures,
		pendingHash:      d.pendingHash,
		innerHash:        d.innerHash,
	}, nil
}

// cosignatures have no block position of their own
func (d *decoder) multisigSignature(dto *TransactionDTO) (*MultisigSignatureTransaction, error) {
	signer, err := d.signer(dto.Signer)
	if nil != err {
		return nil, err
	}
	b, err := decodedBase(MultisigSignatureTag, &dto.CommonDTO, signer, nil)
	if nil != err {
		return nil, err
	}
	otherAccount, err := account.NewAddress(dto.OtherAccount)
	if nil != err {
		return nil, errors.Wrapf(err, "other account: %q", dto.OtherAccount)
	}
	hash := ""
	if nil != dto.OtherHash {
		hash = dto.OtherHash.Data
	}
	return &MultisigSignatureTransaction{
		Base:         b,
		OtherAccount: otherAccount,
		OtherHash:    hash,
	}, nil
}
