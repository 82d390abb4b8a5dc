// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

// TagType - type code for transactions
//
// the code is a category bit combined with a subtype
type TagType int

// categories
const (
	transferCategory   = 0x0100
	assetCategory      = 0x0200
	snapshotCategory   = 0x0400
	importanceCategory = 0x0800
	multisigCategory   = 0x1000
	namespaceCategory  = 0x2000
	mosaicCategory     = 0x4000
)

// enumerate the possible transaction types
const (
	TransferTag                      = TagType(transferCategory | 0x01)
	AssetNewTag                      = TagType(assetCategory | 0x01)
	AssetAskTag                      = TagType(assetCategory | 0x02)
	AssetBidTag                      = TagType(assetCategory | 0x03)
	SnapshotTag                      = TagType(snapshotCategory | 0x01)
	ImportanceTransferTag            = TagType(importanceCategory | 0x01)
	MultisigAggregateModificationTag = TagType(multisigCategory | 0x01)
	MultisigSignatureTag             = TagType(multisigCategory | 0x02)
	MultisigTag                      = TagType(multisigCategory | 0x04)
	ProvisionNamespaceTag            = TagType(namespaceCategory | 0x01)
	MosaicDefinitionCreationTag      = TagType(mosaicCategory | 0x01)
	MosaicSupplyChangeTag            = TagType(mosaicCategory | 0x02)
)

// MultisigEmbeddableTypes - types that can be wrapped by a multisig transaction
//
// order matches the network reference implementation
func MultisigEmbeddableTypes() []TagType {
	return []TagType{
		TransferTag,
		AssetNewTag,
		AssetAskTag,
		AssetBidTag,
		ImportanceTransferTag,
		MultisigAggregateModificationTag,
		ProvisionNamespaceTag,
		MosaicDefinitionCreationTag,
		MosaicSupplyChangeTag,
	}
}

// BlockEmbeddableTypes - types that can appear directly in a block
func BlockEmbeddableTypes() []TagType {
	return append(MultisigEmbeddableTypes(), MultisigTag)
}

// ActiveTypes - all types in use
func ActiveTypes() []TagType {
	return append(BlockEmbeddableTypes(), MultisigSignatureTag)
}

// IsMultisigEmbeddable - can be wrapped
func (t TagType) IsMultisigEmbeddable() bool {
	for _, e := range MultisigEmbeddableTypes() {
		if e == t {
			return true
		}
	}
	return false
}

// String - the name of a transaction type
func (t TagType) String() string {
	switch t {
	case TransferTag:
		return "Transfer"
	case AssetNewTag:
		return "AssetNew"
	case AssetAskTag:
		return "AssetAsk"
	case AssetBidTag:
		return "AssetBid"
	case SnapshotTag:
		return "Snapshot"
	case ImportanceTransferTag:
		return "ImportanceTransfer"
	case MultisigAggregateModificationTag:
		return "MultisigAggregateModification"
	case MultisigSignatureTag:
		return "MultisigSignature"
	case MultisigTag:
		return "Multisig"
	case ProvisionNamespaceTag:
		return "ProvisionNamespace"
	case MosaicDefinitionCreationTag:
		return "MosaicDefinitionCreation"
	case MosaicSupplyChangeTag:
		return "MosaicSupplyChange"
	default:
		return "*unknown*"
	}
}
