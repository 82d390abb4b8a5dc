// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mosaic

import (
	"github.com/nemclient/nemcore/account"
	"github.com/nemclient/nemcore/chain"
)

// Definition - a mosaic definition
type Definition struct {
	Creator     *account.PublicAccount
	Id          MosaicId
	Description string
	Properties  Properties
	Levy        *Levy
	MetaId      *int64
}

// DefinitionDTO - wire form of a definition
//
// Levy is encoded as null when absent; on decode it holds whatever
// the JSON contained (nil, a map, or a *LevyDTO built locally)
type DefinitionDTO struct {
	Creator     string        `json:"creator,omitempty"`
	Id          IdDTO         `json:"id"`
	Description string        `json:"description"`
	Properties  []PropertyDTO `json:"properties"`
	Levy        interface{}   `json:"levy"`
}

// ToDTO - wire form
func (d *Definition) ToDTO() DefinitionDTO {
	dto := DefinitionDTO{
		Id:          d.Id.ToDTO(),
		Description: d.Description,
		Properties:  d.Properties.ToDTO(),
	}
	if nil != d.Creator {
		dto.Creator = d.Creator.PublicKey
	}
	if nil != d.Levy {
		dto.Levy = d.Levy.ToDTO()
	}
	return dto
}

// DefinitionFromDTO - from wire form
func DefinitionFromDTO(dto *DefinitionDTO, network chain.Network) (*Definition, error) {
	creator, err := account.NewPublicAccount(dto.Creator, network)
	if nil != err {
		return nil, err
	}
	properties, err := PropertiesFromDTO(dto.Properties)
	if nil != err {
		return nil, err
	}
	levy, err := levyFromWire(dto.Levy)
	if nil != err {
		return nil, err
	}
	return &Definition{
		Creator:     creator,
		Id:          IdFromDTO(dto.Id),
		Description: dto.Description,
		Properties:  properties,
		Levy:        levy,
	}, nil
}
