// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/base32"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/fault"
)

// miscellaneous constants
const (
	addressLength        = 40 // base32 characters
	addressDecodedLength = 25 // version + ripemd160 + checksum
	checksumLength       = 4
)

// Address - a plain base32 account address
type Address struct {
	plain   string
	network chain.Network
}

// NewAddress - parse plain or pretty (dash separated) address
//
// only the length and alphabet are checked; use IsValid to verify
// the checksum
func NewAddress(s string) (*Address, error) {
	plain := strings.ToUpper(strings.Replace(strings.TrimSpace(s), "-", "", -1))
	if addressLength != len(plain) {
		return nil, fault.ErrInvalidAddress
	}
	if _, err := base32.StdEncoding.DecodeString(plain); nil != err {
		return nil, fault.ErrInvalidAddress
	}
	return &Address{
		plain:   plain,
		network: chain.FromAddressPrefix(plain[0]),
	}, nil
}

// AddressFromPublicKey - derive the address of a hex public key
//
// version byte . ripemd160(keccak256(key)) . keccak256(previous)[:4]
func AddressFromPublicKey(publicKey string, network chain.Network) (*Address, error) {
	if !ValidPublicKey(publicKey) {
		return nil, fault.ErrInvalidPublicKey
	}
	if chain.Unknown == network {
		return nil, fault.ErrInvalidNetwork
	}
	key, err := hex.DecodeString(publicKey)
	if nil != err {
		return nil, fault.ErrInvalidPublicKey
	}

	k := sha3.NewLegacyKeccak256()
	k.Write(key)

	r := ripemd160.New()
	r.Write(k.Sum(nil))

	versioned := append([]byte{byte(network)}, r.Sum(nil)...)
	encoded := base32.StdEncoding.EncodeToString(append(versioned, checksum(versioned)...))

	return &Address{
		plain:   encoded,
		network: network,
	}, nil
}

func checksum(versioned []byte) []byte {
	k := sha3.NewLegacyKeccak256()
	k.Write(versioned)
	return k.Sum(nil)[:checksumLength]
}

// Plain - the 40 character form
func (address *Address) Plain() string {
	return address.plain
}

// Pretty - dash separated groups of six
func (address *Address) Pretty() string {
	var b strings.Builder
	for i := 0; i < len(address.plain); i += 6 {
		if 0 != i {
			b.WriteByte('-')
		}
		end := i + 6
		if end > len(address.plain) {
			end = len(address.plain)
		}
		b.WriteString(address.plain[i:end])
	}
	return b.String()
}

// Network - network selected by the address prefix
func (address *Address) Network() chain.Network {
	return address.network
}

// IsValid - check version byte and checksum
func (address *Address) IsValid() bool {
	decoded, err := base32.StdEncoding.DecodeString(address.plain)
	if nil != err || addressDecodedLength != len(decoded) {
		return false
	}
	if chain.FromAddressPrefix(address.plain[0]) != chain.Network(decoded[0]) {
		return false
	}
	split := addressDecodedLength - checksumLength
	return bytes.Equal(checksum(decoded[:split]), decoded[split:])
}

// Equal - compare plain forms
func (address *Address) Equal(other *Address) bool {
	if nil == address || nil == other {
		return address == other
	}
	return address.plain == other.plain
}

func (address Address) String() string {
	return address.plain
}

// MarshalText - convert an address to its plain JSON form
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.plain), nil
}

// UnmarshalText - convert plain or pretty text to an address
func (address *Address) UnmarshalText(s []byte) error {
	a, err := NewAddress(string(s))
	if nil != err {
		return err
	}
	*address = *a
	return nil
}
