// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.Args().Get(0)
	data, err := readFile(fileName)
	if nil != err {
		return err
	}

	kind := c.String("kind")
	if m.verbose {
		fmt.Fprintf(m.e, "file: %q  kind: %s\n", fileName, kind)
	}

	tx, err := decodeKind(kind, m.network, data)
	if nil != err {
		m.log.Errorf("decode: %q  error: %s", fileName, err)
		return err
	}

	s, err := summarise(tx)
	if nil != err {
		return err
	}
	return printJson(m.w, s)
}
