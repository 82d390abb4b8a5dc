// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// errors that need to carry the offending values (a transaction type
// code, a pair of addresses) are small structs that unwrap to one of
// the single instances, so errors.Is works for both
package fault
