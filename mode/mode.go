// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - process wide current network
//
// the transaction code never reads this; it exists for callers that
// want a bootstrap once, read everywhere style and pass the result of
// Network() into the factories and decoders
package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/fault"
)

var globalData struct {
	sync.RWMutex
	log     *logger.L
	network chain.Network

	// set once during initialise
	initialised bool
}

// Initialise - bootstrap the current network
func Initialise(network chain.Network) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("mode")
	globalData.log.Info("starting…")

	switch network {
	case chain.MainNet, chain.TestNet:
	default:
		globalData.log.Criticalf("mode cannot handle network: %#v", network)
		return fault.ErrUnsupportedNetwork
	}

	globalData.network = network
	globalData.initialised = true

	globalData.log.Infof("network: %s", network)

	return nil
}

// Finalise - reset so that Initialise can be called again
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")

	globalData.network = chain.Unknown
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Network - the current network
func Network() (chain.Network, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return chain.Unknown, fault.ErrNotInitialised
	}
	return globalData.network, nil
}

// IsTesting - true when not on the main network
func IsTesting() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.initialised && globalData.network.IsTesting()
}

// String - current network represented as a string
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return "*uninitialised*"
	}
	return globalData.network.String()
}
