// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mosaic

import (
	"github.com/mitchellh/mapstructure"

	"github.com/nemclient/nemcore/account"
	"github.com/nemclient/nemcore/fault"
)

// LevyType - how the levy fee is applied
type LevyType int

// levy types
const (
	Absolute   LevyType = 1
	Percentile LevyType = 2
)

// Levy - fee charged on every transfer of a mosaic
type Levy struct {
	Type      LevyType
	Recipient *account.Address
	MosaicId  MosaicId
	Fee       uint64
}

// LevyDTO - wire form of a levy
type LevyDTO struct {
	Type      LevyType `json:"type"`
	Recipient string   `json:"recipient"`
	MosaicId  IdDTO    `json:"mosaicId"`
	Fee       uint64   `json:"fee"`
}

// ToDTO - wire form
func (levy *Levy) ToDTO() *LevyDTO {
	return &LevyDTO{
		Type:      levy.Type,
		Recipient: levy.Recipient.Plain(),
		MosaicId:  levy.MosaicId.ToDTO(),
		Fee:       levy.Fee,
	}
}

// LevyFromDTO - from wire form
func LevyFromDTO(dto *LevyDTO) (*Levy, error) {
	if Absolute != dto.Type && Percentile != dto.Type {
		return nil, fault.ErrInvalidLevyType
	}
	recipient, err := account.NewAddress(dto.Recipient)
	if nil != err {
		return nil, err
	}
	return &Levy{
		Type:      dto.Type,
		Recipient: recipient,
		MosaicId:  IdFromDTO(dto.MosaicId),
		Fee:       dto.Fee,
	}, nil
}

// decode the levy field of a definition
//
// the node sends {} for "no levy" while null is sent in requests; an
// object without a mosaicId is therefore treated as absent
func levyFromWire(v interface{}) (*Levy, error) {
	switch l := v.(type) {
	case nil:
		return nil, nil

	case *LevyDTO:
		if nil == l {
			return nil, nil
		}
		return LevyFromDTO(l)

	case LevyDTO:
		return LevyFromDTO(&l)

	case map[string]interface{}:
		if nil == l["mosaicId"] {
			return nil, nil
		}
		var dto LevyDTO
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName: "json",
			Result:  &dto,
		})
		if nil != err {
			return nil, err
		}
		if err := decoder.Decode(l); nil != err {
			return nil, err
		}
		return LevyFromDTO(&dto)

	default:
		return nil, fault.ErrInvalidLevyType
	}
}
