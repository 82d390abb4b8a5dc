// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"strings"

	"github.com/nemclient/nemcore/chain"
)

// PublicAccount - public key and the address derived from it
type PublicAccount struct {
	Address   *Address
	PublicKey string
}

// ValidPublicKey - 64 hex characters, or 66 with a leading sign byte
func ValidPublicKey(publicKey string) bool {
	if 64 != len(publicKey) && 66 != len(publicKey) {
		return false
	}
	_, err := hex.DecodeString(publicKey)
	return nil == err
}

// NewPublicAccount - create from a hex public key
func NewPublicAccount(publicKey string, network chain.Network) (*PublicAccount, error) {
	publicKey = strings.ToLower(publicKey)
	address, err := AddressFromPublicKey(publicKey, network)
	if nil != err {
		return nil, err
	}
	return &PublicAccount{
		Address:   address,
		PublicKey: publicKey,
	}, nil
}

// HasPublicKey - an account known only by address has no key
func (account *PublicAccount) HasPublicKey() bool {
	return nil != account && "" != account.PublicKey
}

// Equal - same key and address
func (account *PublicAccount) Equal(other *PublicAccount) bool {
	if nil == account || nil == other {
		return account == other
	}
	return account.PublicKey == other.PublicKey && account.Address.Equal(other.Address)
}

func (account *PublicAccount) String() string {
	return account.Address.Plain()
}
