// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"
	"strings"

	"github.com/nemclient/nemcore/fault"
)

// Network - network type, the value is the address version byte
type Network byte

// all known networks
const (
	Unknown  Network = 0x00
	MainNet  Network = 0x68
	TestNet  Network = 0x98
	MijinNet Network = 0x60
)

// names of all networks
const (
	MainNetName  = "mainnet"
	TestNetName  = "testnet"
	MijinNetName = "mijin"
)

// Valid - validate a network name
func Valid(name string) bool {
	_, err := fromString(name)
	return nil == err
}

// FromName - convert a network name to a network
func FromName(name string) (Network, error) {
	return fromString(name)
}

// VersionTag - the high byte of the wire version field
//
// only main and test net can sign transactions
func (network Network) VersionTag() (uint32, error) {
	switch network {
	case MainNet, TestNet:
		return uint32(network) << 24, nil
	default:
		return 0, fault.ErrUnsupportedNetwork
	}
}

// NetworkVersion - combine the version tag with a transaction version
//
// the node API presents the combined value as a signed 32 bit integer
func (network Network) NetworkVersion(version int32) (int32, error) {
	tag, err := network.VersionTag()
	if nil != err {
		return 0, err
	}
	return int32(tag | uint32(version)), nil
}

// FromVersion - extract the network from a wire version field
func FromVersion(version int32) Network {
	switch n := Network(uint32(version) >> 24); n {
	case MainNet, TestNet, MijinNet:
		return n
	default:
		return Unknown
	}
}

// AddressPrefix - first character of a plain address
func (network Network) AddressPrefix() byte {
	switch network {
	case MainNet:
		return 'N'
	case TestNet:
		return 'T'
	case MijinNet:
		return 'M'
	default:
		return '?'
	}
}

// FromAddressPrefix - determine network from the first character of an address
func FromAddressPrefix(c byte) Network {
	switch c {
	case 'N', 'n':
		return MainNet
	case 'T', 't':
		return TestNet
	case 'M', 'm':
		return MijinNet
	default:
		return Unknown
	}
}

// IsTesting - true for any network that is not the main network
func (network Network) IsTesting() bool {
	return MainNet != network
}

func (network Network) String() string {
	switch network {
	case MainNet:
		return MainNetName
	case TestNet:
		return TestNetName
	case MijinNet:
		return MijinNetName
	default:
		return "*unknown*"
	}
}

// GoString - for debugging
func (network Network) GoString() string {
	return fmt.Sprintf("<Network#0x%02x:%q>", byte(network), network.String())
}

// convert a string to a network
func fromString(in string) (Network, error) {
	switch strings.ToLower(in) {
	case MainNetName, "main_net", "main":
		return MainNet, nil
	case TestNetName, "test_net", "test", "testing":
		return TestNet, nil
	case MijinNetName, "mijin_test":
		return MijinNet, nil
	default:
		return Unknown, fault.ErrInvalidNetwork
	}
}

// Scan - convert a network string for fmt.Sscan
func (network *Network) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= 'A' && c <= 'Z' {
			return true
		}
		if c >= 'a' && c <= 'z' {
			return true
		}
		return '_' == c
	})
	if nil != err {
		return err
	}
	n, err := fromString(string(token))
	if nil != err {
		return err
	}
	*network = n
	return nil
}

// MarshalText - convert a network into JSON
func (network Network) MarshalText() ([]byte, error) {
	if Unknown == FromVersion(int32(uint32(network)<<24)) {
		return nil, fault.ErrInvalidNetwork
	}
	return []byte(network.String()), nil
}

// UnmarshalText - convert a network name from JSON
func (network *Network) UnmarshalText(s []byte) error {
	n, err := fromString(string(s))
	if nil != err {
		return err
	}
	*network = n
	return nil
}
