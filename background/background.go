// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run long lived loops that stop together
package background

import (
	"sync"
)

// Process - a loop that must return once shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a running set of processes
type T struct {
	sync.Mutex
	shutdown chan struct{}
	wg       sync.WaitGroup
	stopped  bool
}

// Start - run every process in its own goroutine
func Start(processes Processes, args interface{}) *T {
	t := &T{
		shutdown: make(chan struct{}),
	}
	for _, p := range processes {
		t.wg.Add(1)
		go func(p Process) {
			defer t.wg.Done()
			p.Run(args, t.shutdown)
		}(p)
	}
	return t
}

// Stop - signal all processes and wait for them to return, safe to call twice
func (t *T) Stop() {
	t.Lock()
	if !t.stopped {
		t.stopped = true
		close(t.shutdown)
	}
	t.Unlock()
	t.wg.Wait()
}
