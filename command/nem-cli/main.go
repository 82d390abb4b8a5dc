// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/configuration"
	"github.com/nemclient/nemcore/mode"
)

type metadata struct {
	config  *configuration.Configuration
	network chain.Network
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "nem-cli"
	app.Usage = "build, decode and cosign NEM transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "read settings from Lua `FILE`",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: "override configured `NETWORK` [mainnet|testnet]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "fee",
			Usage:     "compute the fee of a XEM transfer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Float64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*whole XEM `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: "plain `TEXT` message",
				},
			},
			Action: runFee,
		},
		{
			Name:      "transfer",
			Usage:     "create a XEM transfer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*recipient `ADDRESS`",
				},
				cli.Float64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*whole XEM `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: "plain `TEXT` message",
				},
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: "sign with hex private `KEY`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "namespace",
			Usage:     "create a provision namespace transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: "*new namespace part `NAME`",
				},
				cli.StringFlag{
					Name:  "parent, p",
					Value: "",
					Usage: "`PARENT` namespace, root if omitted",
				},
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: "sign with hex private `KEY`",
				},
			},
			Action: runNamespace,
		},
		{
			Name:      "mosaic",
			Usage:     "create a mosaic definition transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*mosaic `NAMESPACE:NAME`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "mosaic `TEXT`",
				},
				cli.IntFlag{
					Name:  "divisibility",
					Value: 0,
					Usage: "decimal `PLACES` 0..6",
				},
				cli.Uint64Flag{
					Name:  "supply, s",
					Value: 1000,
					Usage: "initial `SUPPLY`",
				},
				cli.BoolTFlag{
					Name:  "transferable",
					Usage: "allow transfer between third parties",
				},
				cli.BoolFlag{
					Name:  "mutable",
					Usage: "allow supply change",
				},
				cli.StringFlag{
					Name:  "creator",
					Value: "",
					Usage: "creator public `KEY` when not signing",
				},
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: "sign with hex private `KEY`",
				},
			},
			Action: runMosaic,
		},
		{
			Name:      "decode",
			Usage:     "decode a transaction DTO file",
			ArgsUsage: "FILE\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, K",
					Value: kindConfirmed,
					Usage: "DTO `KIND` [confirmed|unconfirmed|embedded]",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "cosign",
			Usage:     "create a signature for an unconfirmed multisig",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*unconfirmed multisig DTO `FILE`",
				},
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: "sign with hex private `KEY`",
				},
			},
			Action: runCosign,
		},
		{
			Name:      "watch",
			Usage:     "follow an inbox of multisig transactions waiting for signature",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "inbox, I",
					Value: "",
					Usage: "inbox `DIRECTORY` [default from configuration]",
				},
			},
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display nem-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		config, err := readConfiguration(c.GlobalString("config"))
		if nil != err {
			return err
		}

		network, err := selectNetwork(c.GlobalString("network"), config)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "network: %s\n", network)
			fmt.Fprintf(e, "deadline: %s\n", config.Deadline())
		}

		logging, err := config.LoggerConfiguration()
		if nil != err {
			return err
		}
		if err := logger.Initialise(logging); nil != err {
			return err
		}

		if err := mode.Initialise(network); nil != err {
			logger.Finalise()
			return err
		}

		c.App.Metadata["config"] = &metadata{
			config:  config,
			network: network,
			verbose: verbose,
			log:     logger.New(app.Name),
			e:       e,
			w:       w,
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"]; !ok {
			return nil
		}
		_ = mode.Finalise()
		logger.Finalise()
		return nil
	}

	return app
}
