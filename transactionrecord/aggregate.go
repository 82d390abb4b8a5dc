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

const aggregateModificationVersion = 2

// ModificationType - add or remove a cosignatory
type ModificationType int

// cosignatory modification types
const (
	CosignatoryAdd    ModificationType = 1
	CosignatoryDelete ModificationType = 2
)

func (m ModificationType) String() string {
	switch m {
	case CosignatoryAdd:
		return "add"
	case CosignatoryDelete:
		return "delete"
	default:
		return "*unknown*"
	}
}

// CosignatoryModification - one change to the cosignatory list
type CosignatoryModification struct {
	Type        ModificationType
	Cosignatory *account.PublicAccount
}

// MultisigAggregateModificationTransaction - convert an account to multisig
// or change its cosignatories
type MultisigAggregateModificationTransaction struct {
	Base
	Modifications  []CosignatoryModification
	RelativeChange *int // change of minimum cosignatories, nil for none
}

// CreateMultisigAggregateModification - version 2 with optional relative change
func CreateMultisigAggregateModification(timeWindow TimeWindow, modifications []CosignatoryModification, relativeChange *int) (*MultisigAggregateModificationTransaction, error) {
	return newMultisigAggregateModification(timeWindow, aggregateModificationVersion, MultisigAggregateModificationFee, modifications, relativeChange, nil)
}

func newMultisigAggregateModification(timeWindow TimeWindow, version int32, fee uint64, modifications []CosignatoryModification, relativeChange *int, signer *account.PublicAccount) (*MultisigAggregateModificationTransaction, error) {
	for _, m := range modifications {
		if nil == m.Cosignatory || !m.Cosignatory.HasPublicKey() {
			return nil, fault.ErrInvalidPublicKey
		}
	}
	b, err := newBase(MultisigAggregateModificationTag, version, timeWindow, fee, signer)
	if nil != err {
		return nil, err
	}
	return &MultisigAggregateModificationTransaction{
		Base:           b,
		Modifications:  modifications,
		RelativeChange: relativeChange,
	}, nil
}

// ToDTO - encode, minCosignatories is dropped when there is no relative change
func (tx *MultisigAggregateModificationTransaction) ToDTO() DTO {
	list := make([]ModificationDTO, len(tx.Modifications))
	for i, m := range tx.Modifications {
		list[i] = ModificationDTO{
			ModificationType:   m.Type,
			CosignatoryAccount: m.Cosignatory.PublicKey,
		}
	}
	dto := &MultisigAggregateModificationDTO{
		CommonDTO:     tx.commonDTO(),
		Modifications: list,
	}
	if nil != tx.RelativeChange {
		dto.MinCosignatories = &MinCosignatoriesDTO{RelativeChange: *tx.RelativeChange}
	}
	return dto
}

func modificationsFromDTO(list []ModificationDTO, network chain.Network) ([]CosignatoryModification, error) {
	modifications := make([]CosignatoryModification, len(list))
	for i, m := range list {
		cosignatory, err := account.NewPublicAccount(m.CosignatoryAccount, network)
		if nil != err {
			return nil, err
		}
		modifications[i] = CosignatoryModification{
			Type:        m.ModificationType,
			Cosignatory: cosignatory,
		}
	}
	return modifications, nil
}
