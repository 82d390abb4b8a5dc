// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/nemclient/nemcore/account"
	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/fault"
)

// HasTimeWindow - transactions bounded in time
type HasTimeWindow interface {
	TimeWindow() TimeWindow
}

// FeeBearing - transactions paying a fee
type FeeBearing interface {
	Fee() uint64
}

// Signable - transactions that can be prepared for a signer and encoded
type Signable interface {
	Signer() *account.PublicAccount
	SetSigner(signer *account.PublicAccount) error
	Signature() string
	SetNetworkType(network chain.Network) error
	ToDTO() DTO
}

// Transaction - generic transaction interface
//
// the set of implementations is closed: every variant embeds Base
type Transaction interface {
	HasTimeWindow
	FeeBearing
	Signable
	Type() TagType
	Version() int32
	NetworkVersion() (int32, bool)
	Info() (*TransactionInfo, error)
	IsConfirmed() bool
	base() *Base
}

// TransactionInfo - block position of a confirmed transaction
type TransactionInfo struct {
	Height uint64
	Id     int64
	Hash   string
}

// MultisigTransactionInfo - confirmed multisig, includes the inner hash
type MultisigTransactionInfo struct {
	TransactionInfo
	InnerHash string
}

// Base - fields common to all transactions
type Base struct {
	tagType        TagType
	version        int32
	networkVersion *int32
	timeWindow     TimeWindow
	signature      string
	signer         *account.PublicAccount
	fee            uint64
	info           *TransactionInfo
}

func newBase(tagType TagType, version int32, timeWindow TimeWindow, fee uint64, signer *account.PublicAccount) (Base, error) {
	if err := checkSigner(signer); nil != err {
		return Base{}, err
	}
	return Base{
		tagType:    tagType,
		version:    version,
		timeWindow: timeWindow,
		signer:     signer,
		fee:        fee,
	}, nil
}

// decoded transactions carry everything the wire provided, a version
// with network bits is split into version and network version
func decodedBase(tagType TagType, common *CommonDTO, signer *account.PublicAccount, info *TransactionInfo) (Base, error) {
	version := common.Version
	var networkVersion *int32
	if 0 != uint32(version)>>24 {
		v := version
		networkVersion = &v
		version = int32(uint32(version) & 0x00ffffff)
	}
	b, err := newBase(tagType, version, TimeWindowFromDTO(common.TimeStamp, common.Deadline), common.Fee, signer)
	if nil != err {
		return Base{}, err
	}
	b.networkVersion = networkVersion
	b.signature = common.Signature
	b.info = info
	return b, nil
}

func checkSigner(signer *account.PublicAccount) error {
	if nil == signer {
		return nil
	}
	if 64 != len(signer.PublicKey) && 66 != len(signer.PublicKey) {
		return fault.ErrInvalidSigner
	}
	return nil
}

func (b *Base) base() *Base { return b }

// Type - transaction type code
func (b *Base) Type() TagType { return b.tagType }

// Version - transaction version without network bits
func (b *Base) Version() int32 { return b.version }

// NetworkVersion - version combined with network tag, set by SetNetworkType
func (b *Base) NetworkVersion() (int32, bool) {
	if nil == b.networkVersion {
		return 0, false
	}
	return *b.networkVersion, true
}

// TimeWindow - validity period
func (b *Base) TimeWindow() TimeWindow { return b.timeWindow }

// Fee - fee in micro XEM
func (b *Base) Fee() uint64 { return b.fee }

// Signature - hex signature, empty until signed
func (b *Base) Signature() string { return b.signature }

// Signer - account that signs, may be nil before signing
func (b *Base) Signer() *account.PublicAccount { return b.signer }

// SetSigner - attach the signer just before signing
func (b *Base) SetSigner(signer *account.PublicAccount) error {
	if nil == signer {
		return fault.ErrMissingSigner
	}
	if err := checkSigner(signer); nil != err {
		return err
	}
	b.signer = signer
	return nil
}

// SetNetworkType - tag the version with the network bits
func (b *Base) SetNetworkType(network chain.Network) error {
	v, err := network.NetworkVersion(b.version)
	if nil != err {
		return err
	}
	b.networkVersion = &v
	return nil
}

// IsConfirmed - transaction info is only present once in a block
func (b *Base) IsConfirmed() bool { return nil != b.info }

// Info - block position, ErrNotConfirmed when not in a block
func (b *Base) Info() (*TransactionInfo, error) {
	if nil == b.info {
		return nil, fault.ErrNotConfirmed
	}
	return b.info, nil
}

// common part of every encoder
func (b *Base) commonDTO() CommonDTO {
	version := b.version
	if nil != b.networkVersion {
		version = *b.networkVersion
	}
	signer := ""
	if nil != b.signer {
		signer = b.signer.PublicKey
	}
	return CommonDTO{
		TimeStamp: b.timeWindow.TimeStampDTO(),
		Signature: b.signature,
		Fee:       b.fee,
		Type:      b.tagType,
		Deadline:  b.timeWindow.DeadlineDTO(),
		Version:   version,
		Signer:    signer,
	}
}
