// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  The file must
// return a table, for example:
//
//	return {
//	    network = "testnet",
//	    deadline_hours = 2,
//	    inbox = "inbox",
//	    cache_expiry = 3600,
//	    logging = {
//	        directory = "log",
//	        file = "nem-cli.log",
//	        size = 1048576,
//	        count = 10,
//	        console = false,
//	        levels = {
//	            DEFAULT = "info",
//	        },
//	    },
//	}
package configuration
