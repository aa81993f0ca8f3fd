// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendarutil_test

import (
	"testing"
	"time"

	"cloudeng.io/calendarutil"
)

func TestTimestampMS(t *testing.T) {
	for _, tc := range []struct {
		val string
		ms  int64
	}{
		{"01 Jan 1970 00:00:00 UTC", 0},
		{"01 Jan 1970 00:00:01 UTC", 1000},
		{"31 Dec 1969", -24 * 60 * 60 * 1000},
		{"1970-01-01", 0},
		{"01-01-1970", 0},
		{"2024-02-01T15:00:00.000Z", 1706799600000},
		{"2024-02-01 15:00:00", 1706799600000},
	} {
		ms, err := calendarutil.TimestampMS(tc.val)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := ms, tc.ms; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	for _, val := range []string{"", "not a date", "2024-13-01", "32 Jan 2024"} {
		if _, err := calendarutil.TimestampMS(val); err == nil {
			t.Errorf("failed to return an error: %v", val)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	when, err := calendarutil.ParseDateTime("2024-02-01T15:00:00.000Z")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := when, time.Date(2024, 2, 1, 15, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	when, err = calendarutil.ParseDateTime("13-09-2024")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := when, time.Date(2024, 9, 13, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
