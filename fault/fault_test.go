// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"

	"github.com/nemclient/nemcore/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrRecordOne   = fault.RecordError("record one")
	ErrRecordTwo   = fault.RecordError("record two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
		record   bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, true, false, false},
		{ErrProcessOne, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, true, false},
		{ErrRecordOne, false, false, false, false, true},
		{ErrRecordTwo, false, false, false, false, true},
		{pkgerrors.Wrap(ErrInvalidOne, "wrapped"), false, true, false, false, false},
		{&fault.RecipientMismatchError{Expected: "A", Actual: "B"}, false, true, false, false, false},
		{&fault.UnimplementedTransactionTypeError{Type: 400000}, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

func TestContextErrors(t *testing.T) {
	err := pkgerrors.Wrap(&fault.UnimplementedTransactionTypeError{Type: 400000}, "decode")
	if !errors.Is(err, fault.ErrUnimplementedTransactionType) {
		t.Errorf("expected unimplemented type, got: %v", err)
	}
	var typeErr *fault.UnimplementedTransactionTypeError
	if !errors.As(err, &typeErr) || 400000 != typeErr.Type {
		t.Errorf("type code not preserved: %v", err)
	}
	if "decode: unimplemented transaction type: 400000" != err.Error() {
		t.Errorf("unexpected message: %q", err.Error())
	}

	mismatch := &fault.RecipientMismatchError{Expected: "TA", Actual: "TB"}
	if !errors.Is(mismatch, fault.ErrRecipientMismatch) {
		t.Errorf("expected recipient mismatch, got: %v", mismatch)
	}
}
