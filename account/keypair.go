// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/fault"
)

// KeyPair - private key and its public account
//
// signs with standard Ed25519; key derivation compatible with the
// NEM network is provided by an external signer
type KeyPair struct {
	PrivateKey ed25519.PrivateKey
	Public     *PublicAccount
}

// NewKeyPair - create a new random key pair
func NewKeyPair(network chain.Network) (*KeyPair, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return keyPair(privateKey, network)
}

// KeyPairFromPrivateKey - hex encoded 32 byte seed or 64 byte private key
func KeyPairFromPrivateKey(privateKeyHex string, network chain.Network) (*KeyPair, error) {
	key, err := hex.DecodeString(privateKeyHex)
	if nil != err {
		return nil, fault.ErrInvalidPublicKey
	}
	switch len(key) {
	case ed25519.SeedSize:
		return keyPair(ed25519.NewKeyFromSeed(key), network)
	case ed25519.PrivateKeySize:
		regenerated := ed25519.NewKeyFromSeed(key[:ed25519.SeedSize])
		if !bytes.Equal(regenerated, key) {
			return nil, fault.ErrInvalidPublicKey
		}
		return keyPair(regenerated, network)
	default:
		return nil, fault.ErrInvalidPublicKey
	}
}

func keyPair(privateKey ed25519.PrivateKey, network chain.Network) (*KeyPair, error) {
	publicKey := privateKey.Public().(ed25519.PublicKey)
	public, err := NewPublicAccount(hex.EncodeToString(publicKey), network)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		PrivateKey: privateKey,
		Public:     public,
	}, nil
}

// PrivateKeyHex - the 32 byte seed as hex
func (keyPair *KeyPair) PrivateKeyHex() string {
	return hex.EncodeToString(keyPair.PrivateKey.Seed())
}

// Sign - sign a message
func (keyPair *KeyPair) Sign(message []byte) Signature {
	return ed25519.Sign(keyPair.PrivateKey, message)
}

// Verify - check a signature against a hex public key
func Verify(publicKey string, message []byte, signature Signature) bool {
	key, err := hex.DecodeString(publicKey)
	if nil != err || ed25519.PublicKeySize != len(key) {
		return false
	}
	if ed25519.SignatureSize != len(signature) {
		return false
	}
	return ed25519.Verify(key, message, signature)
}
