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

// ProvisionNamespaceTransaction - rent a root namespace or create a sub-namespace
type ProvisionNamespaceTransaction struct {
	Base
	RentalFeeSink *account.Address
	RentalFee     uint64
	NewPart       string
	Parent        *string // nil for a root namespace
}

// CreateProvisionNamespace - rental fee and sink depend on the network
// and on whether a parent is given
func CreateProvisionNamespace(network chain.Network, timeWindow TimeWindow, newPart string, parent *string) (*ProvisionNamespaceTransaction, error) {
	sink, err := NamespaceRentalFeeSink(network)
	if nil != err {
		return nil, err
	}
	rentalFee := uint64(RootNamespaceRentalFee)
	if nil != parent {
		rentalFee = SubNamespaceRentalFee
	}
	return newProvisionNamespace(timeWindow, 1, ProvisionNamespaceFee, sink, rentalFee, newPart, parent, nil)
}

func newProvisionNamespace(timeWindow TimeWindow, version int32, fee uint64, sink *account.Address, rentalFee uint64, newPart string, parent *string, signer *account.PublicAccount) (*ProvisionNamespaceTransaction, error) {
	if nil == sink {
		return nil, fault.ErrInvalidAddress
	}
	b, err := newBase(ProvisionNamespaceTag, version, timeWindow, fee, signer)
	if nil != err {
		return nil, err
	}
	return &ProvisionNamespaceTransaction{
		Base:          b,
		RentalFeeSink: sink,
		RentalFee:     rentalFee,
		NewPart:       newPart,
		Parent:        parent,
	}, nil
}

// IsRoot - no parent namespace
func (tx *ProvisionNamespaceTransaction) IsRoot() bool {
	return nil == tx.Parent
}

// FullName - parent.newPart
func (tx *ProvisionNamespaceTransaction) FullName() string {
	if nil == tx.Parent {
		return tx.NewPart
	}
	return *tx.Parent + "." + tx.NewPart
}

// ToDTO - encode, parent is null for a root namespace
func (tx *ProvisionNamespaceTransaction) ToDTO() DTO {
	return &ProvisionNamespaceDTO{
		CommonDTO:     tx.commonDTO(),
		RentalFeeSink: tx.RentalFeeSink.Plain(),
		RentalFee:     tx.RentalFee,
		NewPart:       tx.NewPart,
		Parent:        tx.Parent,
	}
}
