// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemclient/nemcore/chain"
	"github.com/nemclient/nemcore/configuration"
	"github.com/nemclient/nemcore/fault"
)

const fullConfiguration = `
local directory = "data"
return {
    network = "MainNet",
    deadline_hours = 6,
    inbox = directory .. "/inbox",
    cache_expiry = 600,
    logging = {
        directory = "logs",
        file = "client.log",
        size = 4096,
        count = 3,
        console = true,
        levels = {
            DEFAULT = "warn",
            pending = "debug",
        },
    },
}
`

func writeConfiguration(t *testing.T, source string) (string, func()) {
	directory, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err)
	fileName := filepath.Join(directory, "nem-cli.conf")
	require.Nil(t, ioutil.WriteFile(fileName, []byte(source), 0600))
	return fileName, func() { os.RemoveAll(directory) }
}

func TestGet(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, fullConfiguration)
	defer cleanup()

	options, err := configuration.Get(fileName)
	require.Nil(t, err)

	directory := filepath.Dir(fileName)
	assert.Equal(t, chain.MainNet, options.ChainNetwork())
	assert.Equal(t, 6*time.Hour, options.Deadline())
	assert.Equal(t, 10*time.Minute, options.Expiry())
	assert.Equal(t, filepath.Join(directory, "data", "inbox"), options.Inbox)
	assert.Equal(t, filepath.Join(directory, "logs"), options.Logging.Directory)
	assert.Equal(t, "client.log", options.Logging.File)
	assert.Equal(t, 4096, options.Logging.Size)
	assert.Equal(t, 3, options.Logging.Count)
	assert.True(t, options.Logging.Console)
	assert.Equal(t, "debug", options.Logging.Levels["pending"])

	logging, err := options.LoggerConfiguration()
	require.Nil(t, err)
	assert.Equal(t, options.Logging.Directory, logging.Directory)
	info, err := os.Stat(logging.Directory)
	require.Nil(t, err)
	assert.True(t, info.IsDir())
}

func TestGetDefaults(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return {}`)
	defer cleanup()

	options, err := configuration.Get(fileName)
	require.Nil(t, err)
	assert.Equal(t, chain.TestNet, options.ChainNetwork())
	assert.Equal(t, 2*time.Hour, options.Deadline())
	assert.Equal(t, time.Hour, options.Expiry())
	assert.Equal(t, "", options.Inbox)
	assert.Equal(t, "nem-cli.log", options.Logging.File)

	d := configuration.Default()
	assert.Equal(t, chain.TestNet, d.ChainNetwork())
	assert.Equal(t, 2*time.Hour, d.Deadline())
}

func TestGetInvalid(t *testing.T) {
	items := []struct {
		source string
		err    error
	}{
		{`return { network = "mijin" }`, fault.ErrUnsupportedNetwork},
		{`return { deadline_hours = 25 }`, fault.ErrInvalidDeadline},
		{`return { deadline_hours = -1 }`, fault.ErrInvalidDeadline},
		{`return { cache_expiry = -5 }`, fault.ErrInvalidCacheExpiry},
		{`return { logging = { file = "a/b.log" } }`, fault.ErrInvalidLogFile},
		{`return "text"`, fault.ErrConfigurationNotTable},
	}
	for i, item := range items {
		fileName, cleanup := writeConfiguration(t, item.source)
		_, err := configuration.Get(fileName)
		assert.Equal(t, item.err, err, "%d: %s", i, item.source)
		cleanup()
	}

	fileName, cleanup := writeConfiguration(t, `return { network = "nonet" }`)
	defer cleanup()
	_, err := configuration.Get(fileName)
	assert.NotNil(t, err)

	_, err = configuration.Get(filepath.Join(os.TempDir(), "no-such-configuration.conf"))
	assert.NotNil(t, err)
}

func TestParseConfigurationString(t *testing.T) {
	type simple struct {
		Name  string `gluamapper:"name"`
		Count int    `gluamapper:"count"`
	}

	var s simple
	err := configuration.ParseConfigurationString(`return { name = "x" .. "y", count = 2 + 3 }`, &s)
	require.Nil(t, err)
	assert.Equal(t, simple{Name: "xy", Count: 5}, s)

	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationString(`return {}`, s))
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationString(`return {}`, nil))

	err = configuration.ParseConfigurationString(`return {`, &s)
	assert.NotNil(t, err)
}
