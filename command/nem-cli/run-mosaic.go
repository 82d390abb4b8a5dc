// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/nemclient/nemcore/account"
	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/mosaic"
	"github.com/nemclient/nemcore/transactionrecord"
)

func runMosaic(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := c.String("id")
	if "" == s {
		return ErrMissingMosaicId
	}
	id, err := mosaic.ParseMosaicId(s)
	if nil != err {
		return err
	}

	properties, err := mosaic.NewProperties(
		c.Int("divisibility"),
		c.Uint64("supply"),
		c.BoolT("transferable"),
		c.Bool("mutable"),
	)
	if nil != err {
		return err
	}

	privateKey := c.String("private-key")
	creator, err := mosaicCreator(c.String("creator"), privateKey, m.network)
	if nil != err {
		return err
	}

	definition := &mosaic.Definition{
		Creator:     creator,
		Id:          id,
		Description: c.String("description"),
		Properties:  properties,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "mosaic: %s\n", id)
		fmt.Fprintf(m.e, "creator: %s\n", creator)
	}

	tw, err := transactionrecord.CreateTimeWindow(m.config.Deadline())
	if nil != err {
		return err
	}

	tx, err := transactionrecord.CreateMosaicDefinition(m.network, tw, definition)
	if nil != err {
		return err
	}
	m.log.Infof("mosaic definition: %s", id)

	return output(m.w, tx, m.network, privateKey)
}

// the signing key decides the creator when present
func mosaicCreator(publicKey string, privateKey string, network chain.Network) (*account.PublicAccount, error) {
	if "" != privateKey {
		keyPair, err := account.KeyPairFromPrivateKey(privateKey, network)
		if nil != err {
			return nil, err
		}
		return keyPair.Public, nil
	}
	if "" == publicKey {
		return nil, ErrMissingCreator
	}
	return account.NewPublicAccount(publicKey, network)
}
