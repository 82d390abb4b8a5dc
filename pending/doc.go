// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pending - multisig transactions waiting for a cosignature
//
// transactions are kept until they are removed, their deadline passes
// or the store expiry elapses, whichever comes first.  A Watcher feeds
// the store from unconfirmed transaction files dropped in an inbox
// directory.
package pending
