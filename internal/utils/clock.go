// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "time"

// TimestampLayout is the fixed-width UTC millisecond ISO-8601 layout used for
// every stored timestamp. Fixed width keeps lexicographic order equal to
// chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports T. Used in tests.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

// FormatTimestamp renders t in UTC using TimestampLayout, e.g.
// "2024-05-01T09:30:00.000Z".
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NowTimestamp is FormatTimestamp(c.Now()).
func NowTimestamp(c Clock) string {
	return FormatTimestamp(c.Now())
}
