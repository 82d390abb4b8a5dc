// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/nemclient/nemcore/pending"
)

// hashes buffered between the watcher and the printer
const addedQueueSize = 16

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	inbox := c.String("inbox")
	if "" == inbox {
		inbox = m.config.Inbox
	}
	if "" == inbox {
		return ErrMissingInbox
	}

	store, err := pending.New(m.network, m.config.Expiry())
	if nil != err {
		return err
	}
	defer store.Flush()

	added := make(chan string, addedQueueSize)
	watcher, err := pending.NewWatcher(inbox, store, added)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	if m.verbose {
		fmt.Fprintf(m.e, "watching: %s\n", inbox)
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	for {
		select {
		case sig := <-ch:
			m.log.Infof("received signal: %v", sig)
			if m.verbose {
				fmt.Fprintf(m.e, "\nreceived signal: %v\n", sig)
			}
			return printJson(m.w, watcher.Statistics())

		case hash := <-added:
			tx, err := store.Get(hash)
			if nil != err {
				// expired before it could be shown
				continue
			}
			fmt.Fprintf(m.w, "%s  deadline: %s  pending: %d\n", hash, tx.TimeWindow().Deadline, store.Count())
		}
	}
}
