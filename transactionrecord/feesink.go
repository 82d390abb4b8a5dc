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

// addresses receiving rental and creation fees
var (
	namespaceRentalSinks = map[chain.Network]string{
		chain.MainNet: "NAMESPACEWH4MKFMBCVFERDPOOP4FK7MTBXDPZZA",
		chain.TestNet: "TAMESPACEWH4MKFMBCVFERDPOOP4FK7MTDJEYP35",
	}
	mosaicCreationSinks = map[chain.Network]string{
		chain.MainNet: "NBMOSAICOD4F54EE5CDMR23CCBGOAM2XSIUX6TRS",
		chain.TestNet: "TBMOSAICOD4F54EE5CDMR23CCBGOAM2XSJBR5OLC",
	}
)

// NamespaceRentalFeeSink - receives namespace rental fees
func NamespaceRentalFeeSink(network chain.Network) (*account.Address, error) {
	return sink(namespaceRentalSinks, network)
}

// MosaicCreationFeeSink - receives mosaic creation fees
func MosaicCreationFeeSink(network chain.Network) (*account.Address, error) {
	return sink(mosaicCreationSinks, network)
}

func sink(table map[chain.Network]string, network chain.Network) (*account.Address, error) {
	plain, ok := table[network]
	if !ok {
		return nil, fault.ErrUnsupportedNetwork
	}
	return account.NewAddress(plain)
}
