// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"time"

	"github.com/nemclient/nemcore/account"
	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/configuration"
	"github.com/nemclient/nemcore/fault"
	"github.com/nemclient/nemcore/mosaic"
	"github.com/nemclient/nemcore/transactionrecord"
)

// DTO kinds accepted by decode
const (
	kindConfirmed   = "confirmed"
	kindUnconfirmed = "unconfirmed"
	kindEmbedded    = "embedded"
)

// summary - printable view of a decoded transaction
type summary struct {
	Type           string                            `json:"type"`
	Code           int                               `json:"code"`
	Version        int32                             `json:"version"`
	NetworkVersion *int32                            `json:"networkVersion,omitempty"`
	TimeStamp      time.Time                         `json:"timeStamp"`
	Deadline       time.Time                         `json:"deadline"`
	Fee            uint64                            `json:"fee"`
	Signer         string                            `json:"signer,omitempty"`
	Signature      string                            `json:"signature,omitempty"`
	Height         uint64                            `json:"height,omitempty"`
	Hash           string                            `json:"hash,omitempty"`
	InnerHash      string                            `json:"innerHash,omitempty"`
	PendingHash    string                            `json:"pendingHash,omitempty"`
	Cosignatures   int                               `json:"cosignatures,omitempty"`
	Inner          *summary                          `json:"inner,omitempty"`
	Record         *transactionrecord.TransactionDTO `json:"record,omitempty"`
}

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	_, err = fmt.Fprintf(handle, "%s\n", b)
	return err
}

// configuration from a file, or the defaults when no file is given
func readConfiguration(fileName string) (*configuration.Configuration, error) {
	if "" == fileName {
		return configuration.Default(), nil
	}
	return configuration.Get(fileName)
}

// command line network overrides the configured one
func selectNetwork(name string, config *configuration.Configuration) (chain.Network, error) {
	if "" == name {
		return config.ChainNetwork(), nil
	}
	network, err := chain.FromName(strings.ToLower(name))
	if nil != err {
		return chain.Unknown, err
	}
	if _, err := network.VersionTag(); nil != err {
		return chain.Unknown, err
	}
	return network, nil
}

func checkAmount(amount float64) (mosaic.XEM, error) {
	if amount < 0 {
		return mosaic.XEM{}, ErrInvalidAmount
	}
	return mosaic.NewXEM(amount), nil
}

func checkRecipient(s string, network chain.Network) (*account.Address, error) {
	if "" == s {
		return nil, ErrMissingRecipient
	}
	address, err := account.NewAddress(s)
	if nil != err {
		return nil, err
	}
	if address.Network() != network {
		return nil, fault.ErrInvalidNetwork
	}
	return address, nil
}

func readFile(fileName string) ([]byte, error) {
	if "" == fileName {
		return nil, ErrMissingFile
	}
	return ioutil.ReadFile(fileName)
}

// decode a DTO file according to its kind
func decodeKind(kind string, network chain.Network, data []byte) (transactionrecord.Transaction, error) {
	switch strings.ToLower(kind) {
	case kindConfirmed:
		return transactionrecord.ParseConfirmed(network, data)
	case kindUnconfirmed:
		return transactionrecord.ParseUnconfirmed(network, data)
	case kindEmbedded:
		return transactionrecord.ParseEmbedded(network, data)
	default:
		return nil, ErrInvalidKind
	}
}

// write the transaction DTO, or the signed transaction if a private
// key is present
func output(w io.Writer, tx transactionrecord.Transaction, network chain.Network, privateKey string) error {
	if "" == privateKey {
		if err := tx.SetNetworkType(network); nil != err {
			return err
		}
		return printJson(w, tx.ToDTO())
	}

	keyPair, err := account.KeyPairFromPrivateKey(privateKey, network)
	if nil != err {
		return err
	}
	signed, err := transactionrecord.Sign(tx, keyPair.Public, network, transactionrecord.KeyPairSigner{KeyPair: keyPair})
	if nil != err {
		return err
	}
	return printJson(w, signed)
}

func summarise(tx transactionrecord.Transaction) (*summary, error) {
	record, err := transactionrecord.ToWire(tx.ToDTO())
	if nil != err {
		return nil, err
	}

	tw := tx.TimeWindow()
	s := &summary{
		Type:      tx.Type().String(),
		Code:      int(tx.Type()),
		Version:   tx.Version(),
		TimeStamp: tw.TimeStamp,
		Deadline:  tw.Deadline,
		Fee:       tx.Fee(),
		Signature: tx.Signature(),
		Record:    record,
	}
	if v, ok := tx.NetworkVersion(); ok {
		s.NetworkVersion = &v
	}
	if signer := tx.Signer(); nil != signer {
		s.Signer = signer.PublicKey
	}
	if info, err := tx.Info(); nil == err {
		s.Height = info.Height
		s.Hash = info.Hash
	}

	multisig, ok := tx.(*transactionrecord.MultisigTransaction)
	if !ok {
		return s, nil
	}
	if info, err := multisig.MultisigInfo(); nil == err {
		s.InnerHash = info.InnerHash
	}
	if hash, ok := multisig.PendingHash(); ok {
		s.PendingHash = hash
	}
	s.Cosignatures = len(multisig.Signatures)
	if nil != multisig.OtherTransaction {
		inner, err := summarise(multisig.OtherTransaction)
		if nil != err {
			return nil, err
		}
		inner.Record = nil
		s.Inner = inner
	}
	return s, nil
}
