// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/nemclient/nemcore/transactionrecord"
)

func runCosign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")
	data, err := readFile(fileName)
	if nil != err {
		return err
	}

	var dto transactionrecord.UnconfirmedDTO
	if err := json.Unmarshal(data, &dto); nil != err {
		return err
	}

	tw, err := transactionrecord.CreateTimeWindow(m.config.Deadline())
	if nil != err {
		return err
	}

	tx, err := transactionrecord.MultisigSignatureFromUnconfirmed(tw, m.network, &dto)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "multisig: %s\n", tx.OtherAccount)
		fmt.Fprintf(m.e, "hash: %s\n", tx.OtherHash)
	}
	m.log.Infof("cosign: %s  for: %s", tx.OtherHash, tx.OtherAccount)

	return output(m.w, tx, m.network, c.String("private-key"))
}
