// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/nemclient/nemcore/message"
	"github.com/nemclient/nemcore/transactionrecord"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	recipient, err := checkRecipient(c.String("recipient"), m.network)
	if nil != err {
		return err
	}

	xem, err := checkAmount(c.Float64("amount"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "recipient: %s\n", recipient)
		fmt.Fprintf(m.e, "amount: %f\n", xem.Amount())
	}

	tw, err := transactionrecord.CreateTimeWindow(m.config.Deadline())
	if nil != err {
		return err
	}

	tx, err := transactionrecord.CreateTransfer(tw, recipient, xem, message.NewPlain(c.String("message")))
	if nil != err {
		return err
	}
	m.log.Infof("transfer to: %s  fee: %d", recipient, tx.Fee())

	return output(m.w, tx, m.network, c.String("private-key"))
}
