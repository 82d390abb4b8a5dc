// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pending

import (
	"sort"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"

	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/fault"
	"github.com/nemclient/nemcore/transactionrecord"
)

const (
	DefaultExpiry   = time.Hour
	cleanupInterval = time.Minute
)

// Store - pending multisig transactions keyed by inner transaction hash
type Store struct {
	log     *logger.L
	network chain.Network
	expiry  time.Duration
	cache   *cache.Cache
	now     func() time.Time
}

// New - create an empty store, a non-positive expiry selects the default
func New(network chain.Network, expiry time.Duration) (*Store, error) {
	log := logger.New("pending")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if expiry <= 0 {
		expiry = DefaultExpiry
	}

	s := &Store{
		log:     log,
		network: network,
		expiry:  expiry,
		cache:   cache.New(expiry, cleanupInterval),
		now:     time.Now,
	}
	s.cache.OnEvicted(func(hash string, _ interface{}) {
		log.Debugf("released: %s", hash)
	})

	log.Infof("network: %s  expiry: %s", network, expiry)
	return s, nil
}

// Network - network used to decode incoming transactions
func (s *Store) Network() chain.Network {
	return s.network
}

// Add - store a transaction that is pending to sign
//
// it is kept no longer than its own deadline
func (s *Store) Add(tx *transactionrecord.MultisigTransaction) (string, error) {
	hash, ok := tx.PendingHash()
	if !ok || !tx.IsPendingToSign() {
		return "", fault.ErrNotPendingToSign
	}

	remaining := tx.TimeWindow().Deadline.Sub(s.now())
	if remaining <= 0 {
		return "", fault.ErrTransactionExpired
	}
	ttl := s.expiry
	if remaining < ttl {
		ttl = remaining
	}

	if err := s.cache.Add(hash, tx, ttl); nil != err {
		return "", fault.ErrAlreadyPending
	}
	s.log.Infof("added: %s  ttl: %s", hash, ttl)
	return hash, nil
}

// AddJSON - decode an unconfirmed transaction and store it
func (s *Store) AddJSON(data []byte) (string, error) {
	tx, err := transactionrecord.ParseUnconfirmed(s.network, data)
	if nil != err {
		return "", err
	}
	multisig, ok := tx.(*transactionrecord.MultisigTransaction)
	if !ok {
		return "", fault.ErrNotMultisigTransaction
	}
	return s.Add(multisig)
}

// Get - fetch a pending transaction
func (s *Store) Get(hash string) (*transactionrecord.MultisigTransaction, error) {
	item, found := s.cache.Get(hash)
	if !found {
		return nil, fault.ErrPendingNotFound
	}
	return item.(*transactionrecord.MultisigTransaction), nil
}

// Remove - drop a transaction, false if it was not present
func (s *Store) Remove(hash string) bool {
	if _, found := s.cache.Get(hash); !found {
		return false
	}
	s.cache.Delete(hash)
	return true
}

// Hashes - sorted hashes of all live transactions
func (s *Store) Hashes() []string {
	items := s.cache.Items()
	hashes := make([]string, 0, len(items))
	for hash := range items {
		hashes = append(hashes, hash)
	}
	sort.Strings(hashes)
	return hashes
}

// Count - number of stored transactions, may include expired ones not yet cleaned up
func (s *Store) Count() int {
	return s.cache.ItemCount()
}

// Cosign - build the cosignature for a stored transaction
func (s *Store) Cosign(hash string, timeWindow transactionrecord.TimeWindow) (*transactionrecord.MultisigSignatureTransaction, error) {
	tx, err := s.Get(hash)
	if nil != err {
		return nil, err
	}
	return transactionrecord.CosignMultisig(timeWindow, tx)
}

// Flush - remove everything
func (s *Store) Flush() {
	s.cache.Flush()
}
