// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"time"

	"github.com/nemclient/nemcore/fault"
)

// time constants
const (
	GenesisEpoch    = 1427587585 // unix seconds of the nemesis block
	DefaultDeadline = 2 * time.Hour
	MaximumDeadline = 24 * time.Hour
)

// TimeWindow - validity period of a transaction, second resolution
type TimeWindow struct {
	TimeStamp time.Time
	Deadline  time.Time
}

// NewTimeWindow - window starting at now and lasting for deadline
func NewTimeWindow(now time.Time, deadline time.Duration) (TimeWindow, error) {
	if deadline <= 0 || deadline > MaximumDeadline {
		return TimeWindow{}, fault.ErrInvalidDeadline
	}
	start := now.Unix()
	return TimeWindow{
		TimeStamp: time.Unix(start, 0).UTC(),
		Deadline:  time.Unix(start+int64(deadline/time.Second), 0).UTC(),
	}, nil
}

// CreateTimeWindow - window starting at the current time
func CreateTimeWindow(deadline time.Duration) (TimeWindow, error) {
	return NewTimeWindow(time.Now(), deadline)
}

// TimeWindowFromDTO - network seconds from the wire, trusted as valid
func TimeWindowFromDTO(timeStamp int64, deadline int64) TimeWindow {
	return TimeWindow{
		TimeStamp: time.Unix(GenesisEpoch+timeStamp, 0).UTC(),
		Deadline:  time.Unix(GenesisEpoch+deadline, 0).UTC(),
	}
}

// TimeStampDTO - network seconds of the time stamp
func (tw TimeWindow) TimeStampDTO() int64 {
	return tw.TimeStamp.Unix() - GenesisEpoch
}

// DeadlineDTO - network seconds of the deadline
func (tw TimeWindow) DeadlineDTO() int64 {
	return tw.Deadline.Unix() - GenesisEpoch
}

// Expired - deadline has passed
func (tw TimeWindow) Expired(now time.Time) bool {
	return !now.Before(tw.Deadline)
}
