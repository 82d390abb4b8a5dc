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

type feeResult struct {
	Fee    uint64  `json:"fee"`
	Amount float64 `json:"xem"`
}

func runFee(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	xem, err := checkAmount(c.Float64("amount"))
	if nil != err {
		return err
	}
	text := c.String("message")

	if m.verbose {
		fmt.Fprintf(m.e, "amount: %f\n", xem.Amount())
		fmt.Fprintf(m.e, "message: %q\n", text)
	}

	fee := transactionrecord.TransferFee(xem, message.NewPlain(text))
	return printJson(m.w, feeResult{
		Fee:    fee,
		Amount: float64(fee) / 1e6,
	})
}
