// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli"
)

func flagUsage(t *testing.T, flag cli.Flag) string {
	switch f := flag.(type) {
	case cli.BoolFlag:
		return f.Usage
	case cli.BoolTFlag:
		return f.Usage
	case cli.StringFlag:
		return f.Usage
	case cli.IntFlag:
		return f.Usage
	case cli.Uint64Flag:
		return f.Usage
	case cli.Float64Flag:
		return f.Usage
	default:
		t.Fatalf("unexpected flag type: %T", flag)
		return ""
	}
}

// usage text is either marked required with '*' or starts with the text
func TestFlagUsage(t *testing.T) {
	app := newApp()

	check := func(where string, flags []cli.Flag) {
		for _, flag := range flags {
			usage := flagUsage(t, flag)
			assert.NotEqual(t, "", usage, "%s: %s", where, flag.GetName())
			assert.False(t, strings.HasPrefix(usage, " "), "%s: %s: %q", where, flag.GetName(), usage)
		}
	}

	check("global", app.Flags)
	for _, command := range app.Commands {
		check(command.Name, command.Flags)
	}
}

func TestCommandNames(t *testing.T) {
	app := newApp()

	names := make([]string, 0, len(app.Commands))
	for _, command := range app.Commands {
		names = append(names, command.Name)
	}
	assert.Equal(t, []string{"fee", "transfer", "namespace", "mosaic", "decode", "cosign", "watch", "version"}, names)
}
