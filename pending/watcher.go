// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pending

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/nemclient/nemcore/background"
	"github.com/nemclient/nemcore/counter"
	"github.com/nemclient/nemcore/fault"
)

const inboxExtension = ".json"

// Watcher - load unconfirmed multisig files written to an inbox directory
type Watcher struct {
	log        *logger.L
	store      *Store
	watcher    *fsnotify.Watcher
	directory  string
	added      chan<- string
	background *background.T

	loaded    counter.Counter
	rejected  counter.Counter
	discarded counter.Counter
}

// Statistics - inbox file counts since the watcher was created
type Statistics struct {
	Loaded    uint64 `json:"loaded"`
	Rejected  uint64 `json:"rejected"`
	Discarded uint64 `json:"discarded"`
}

// NewWatcher - hashes of added transactions are sent to added if it is
// not nil and not full
func NewWatcher(directory string, store *Store, added chan<- string) (*Watcher, error) {
	log := logger.New("watcher")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	path, err := filepath.Abs(filepath.Clean(directory))
	if nil != err {
		log.Errorf("directory: %q  error: %s", directory, err)
		return nil, err
	}
	info, err := os.Stat(path)
	if nil != err {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fault.ErrNotADirectory
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	return &Watcher{
		log:       log,
		store:     store,
		watcher:   watcher,
		directory: path,
		added:     added,
	}, nil
}

// Start - load files already present then follow changes
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.directory); nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	files, err := ioutil.ReadDir(w.directory)
	if nil != err {
		return err
	}
	for _, f := range files {
		if !f.IsDir() {
			w.load(filepath.Join(w.directory, f.Name()))
		}
	}

	w.background = background.Start(background.Processes{w}, nil)
	return nil
}

// Stop - end the event loop and release the watcher
func (w *Watcher) Stop() error {
	if nil != w.background {
		w.background.Stop()
	}
	return w.watcher.Close()
}

// Run - event loop
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	w.log.Infof("watching: %s", w.directory)
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if isInboxEvent(event) {
				w.load(event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
	w.log.Info("stopped")
}

func (w *Watcher) load(path string) {
	if inboxExtension != strings.ToLower(filepath.Ext(path)) {
		return
	}
	data, err := ioutil.ReadFile(path)
	if nil != err {
		w.log.Warnf("read: %s  error: %s", path, err)
		return
	}

	hash, err := w.store.AddJSON(data)
	if fault.ErrAlreadyPending == err {
		w.log.Debugf("already pending: %s", path)
		return
	}
	if nil != err {
		// a file still being written is retried on its next write event
		w.rejected.Increment()
		w.log.Warnf("load: %s  error: %s", path, err)
		return
	}

	w.loaded.Increment()
	w.log.Infof("pending: %s  from: %s", hash, path)
	w.notify(hash)
}

func (w *Watcher) notify(hash string) {
	if nil == w.added {
		return
	}
	if len(w.added) == cap(w.added) {
		w.discarded.Increment()
		w.log.Infof("added channel full, discard: %s", hash)
		return
	}
	w.added <- hash
}

// Statistics - current counts
func (w *Watcher) Statistics() Statistics {
	return Statistics{
		Loaded:    w.loaded.Value(),
		Rejected:  w.rejected.Value(),
		Discarded: w.discarded.Value(),
	}
}

func isInboxEvent(event fsnotify.Event) bool {
	return event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Write == fsnotify.Write
}
