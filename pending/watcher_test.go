// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pending

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemclient/nemcore/fault"
)

func makeInbox(t *testing.T) string {
	inbox, err := ioutil.TempDir("", "inbox")
	require.Nil(t, err)
	return inbox
}

func waitHash(t *testing.T, added <-chan string) string {
	select {
	case hash := <-added:
		return hash
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for inbox file")
	}
	return ""
}

func TestWatcherLoadsExistingAndNewFiles(t *testing.T) {
	inbox := makeInbox(t)
	defer os.RemoveAll(inbox)

	err := ioutil.WriteFile(filepath.Join(inbox, "first.json"), []byte(unconfirmedMultisigJSON(firstHash)), 0600)
	require.Nil(t, err)
	err = ioutil.WriteFile(filepath.Join(inbox, "ignored.txt"), []byte(unconfirmedMultisigJSON(secondHash)), 0600)
	require.Nil(t, err)

	s := makeStore(t, time.Minute)
	added := make(chan string, 10)
	w, err := NewWatcher(inbox, s, added)
	require.Nil(t, err)
	require.Nil(t, w.Start())
	defer w.Stop()

	assert.Equal(t, firstHash, waitHash(t, added))

	err = ioutil.WriteFile(filepath.Join(inbox, "second.json"), []byte(unconfirmedMultisigJSON(secondHash)), 0600)
	require.Nil(t, err)
	assert.Equal(t, secondHash, waitHash(t, added))

	assert.Equal(t, []string{firstHash, secondHash}, s.Hashes())
}

func TestWatcherSkipsBadFiles(t *testing.T) {
	inbox := makeInbox(t)
	defer os.RemoveAll(inbox)

	s := makeStore(t, time.Minute)
	added := make(chan string, 10)
	w, err := NewWatcher(inbox, s, added)
	require.Nil(t, err)
	require.Nil(t, w.Start())
	defer w.Stop()

	err = ioutil.WriteFile(filepath.Join(inbox, "transfer.json"), []byte(unconfirmedTransferJSON()), 0600)
	require.Nil(t, err)
	err = ioutil.WriteFile(filepath.Join(inbox, "multisig.json"), []byte(unconfirmedMultisigJSON(firstHash)), 0600)
	require.Nil(t, err)

	assert.Equal(t, firstHash, waitHash(t, added))
	assert.Equal(t, []string{firstHash}, s.Hashes())

	statistics := w.Statistics()
	assert.Equal(t, uint64(1), statistics.Loaded, "loaded")
	assert.True(t, statistics.Rejected >= 1, "transfer rejected")
}

func TestWatcherDiscardsWhenFull(t *testing.T) {
	added := make(chan string, 1)
	w := &Watcher{
		log:   logger.New("watcher"),
		added: added,
	}

	w.notify(firstHash)
	w.notify(secondHash)

	assert.Equal(t, firstHash, <-added)
	assert.Equal(t, uint64(1), w.Statistics().Discarded, "discarded")
}

func TestNewWatcherErrors(t *testing.T) {
	s := makeStore(t, time.Minute)

	_, err := NewWatcher(filepath.Join(dir, "no-such-inbox"), s, nil)
	assert.True(t, os.IsNotExist(err))

	f, err := ioutil.TempFile("", "inbox-file")
	require.Nil(t, err)
	f.Close()
	defer os.Remove(f.Name())

	_, err = NewWatcher(f.Name(), s, nil)
	assert.Equal(t, fault.ErrNotADirectory, err)
}

func TestInboxEvent(t *testing.T) {
	assert.True(t, isInboxEvent(fsnotify.Event{Name: "a.json", Op: fsnotify.Create}))
	assert.True(t, isInboxEvent(fsnotify.Event{Name: "a.json", Op: fsnotify.Write}))
	assert.False(t, isInboxEvent(fsnotify.Event{Name: "a.json", Op: fsnotify.Remove}))
	assert.False(t, isInboxEvent(fsnotify.Event{Name: "a.json", Op: fsnotify.Chmod}))
}
