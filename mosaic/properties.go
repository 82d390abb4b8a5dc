// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mosaic

import (
	"strconv"

	"github.com/nemclient/nemcore/fault"
)

// limits and defaults
const (
	MaximumDivisibility  = 6
	MaximumInitialSupply = 9000000000
	DefaultInitialSupply = 1000
)

// names used in the wire property list
const (
	divisibilityName  = "divisibility"
	initialSupplyName = "initialSupply"
	supplyMutableName = "supplyMutable"
	transferableName  = "transferable"
)

// Properties - mosaic definition properties
type Properties struct {
	Divisibility  int
	InitialSupply uint64
	Transferable  bool
	SupplyMutable bool
}

// PropertyDTO - one name/value pair, values are always strings
type PropertyDTO struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DefaultProperties - divisibility 0, supply 1000, transferable, fixed supply
func DefaultProperties() Properties {
	return Properties{
		Divisibility:  0,
		InitialSupply: DefaultInitialSupply,
		Transferable:  true,
		SupplyMutable: false,
	}
}

// NewProperties - create validated properties
func NewProperties(divisibility int, initialSupply uint64, transferable bool, supplyMutable bool) (Properties, error) {
	p := Properties{
		Divisibility:  divisibility,
		InitialSupply: initialSupply,
		Transferable:  transferable,
		SupplyMutable: supplyMutable,
	}
	if err := p.Validate(); nil != err {
		return Properties{}, err
	}
	return p, nil
}

// Validate - check limits
func (p Properties) Validate() error {
	if p.Divisibility < 0 || p.Divisibility > MaximumDivisibility {
		return fault.ErrInvalidDivisibility
	}
	if p.InitialSupply > MaximumInitialSupply {
		return fault.ErrInvalidInitialSupply
	}
	return nil
}

// ToDTO - fixed order list of string properties
func (p Properties) ToDTO() []PropertyDTO {
	return []PropertyDTO{
		{Name: divisibilityName, Value: strconv.Itoa(p.Divisibility)},
		{Name: initialSupplyName, Value: strconv.FormatUint(p.InitialSupply, 10)},
		{Name: supplyMutableName, Value: strconv.FormatBool(p.SupplyMutable)},
		{Name: transferableName, Value: strconv.FormatBool(p.Transferable)},
	}
}

// PropertiesFromDTO - missing names keep their defaults, unknown names are ignored
func PropertiesFromDTO(list []PropertyDTO) (Properties, error) {
	p := DefaultProperties()
	for _, item := range list {
		var err error
		switch item.Name {
		case divisibilityName:
			p.Divisibility, err = strconv.Atoi(item.Value)
		case initialSupplyName:
			p.InitialSupply, err = strconv.ParseUint(item.Value, 10, 64)
		case supplyMutableName:
			p.SupplyMutable, err = strconv.ParseBool(item.Value)
		case transferableName:
			p.Transferable, err = strconv.ParseBool(item.Value)
		}
		if nil != err {
			return Properties{}, err
		}
	}
	return p, nil
}
