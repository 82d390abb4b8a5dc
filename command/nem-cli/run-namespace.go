// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/nemclient/nemcore/transactionrecord"
)

func runNamespace(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		return ErrMissingName
	}

	var parent *string
	if p := c.String("parent"); "" != p {
		parent = &p
	}

	tw, err := transactionrecord.CreateTimeWindow(m.config.Deadline())
	if nil != err {
		return err
	}

	tx, err := transactionrecord.CreateProvisionNamespace(m.network, tw, name, parent)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "namespace: %s  root: %t\n", tx.FullName(), tx.IsRoot())
		fmt.Fprintf(m.e, "rental: %d to: %s\n", tx.RentalFee, tx.RentalFeeSink)
	}
	m.log.Infof("namespace: %s", tx.FullName())

	return output(m.w, tx, m.network, c.String("private-key"))
}
