// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendarutil_test

import (
	"testing"
	"time"

	"cloudeng.io/calendarutil"
)

func TestQuarter(t *testing.T) {
	for month, quarter := range map[calendarutil.Month]int{
		1: 1, 2: 1, 3: 1, 4: 1,
		5: 2, 6: 2,
		7: 3, 8: 3,
		9: 4, 10: 4, 11: 4, 12: 4,
	} {
		if got, want := calendarutil.QuarterOfMonth(month), quarter; got != want {
			t.Errorf("%v: got %v, want %v", month, got, want)
		}
		when := time.Date(2024, time.Month(month), 15, 0, 0, 0, 0, time.UTC)
		if got, want := calendarutil.Quarter(when), quarter; got != want {
			t.Errorf("%v: got %v, want %v", when, got, want)
		}
	}
}
