// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule_test

import (
	"testing"
	"time"

	"cloudeng.io/calendarutil"
	"cloudeng.io/calendarutil/schedule"
)

func TestScheduler(t *testing.T) {
	s := schedule.NewScheduler(newCalendarDate(2024, 1, 1),
		schedule.Weekly{Day: time.Friday},
		schedule.MonthDay{Day: 13},
	)
	type occurrence struct {
		when calendarutil.CalendarDate
		name string
	}
	var got []occurrence
	for cd, name := range s.Upcoming(4) {
		got = append(got, occurrence{cd, name})
	}
	want := []occurrence{
		{newCalendarDate(2024, 1, 5), "every Friday"},
		{newCalendarDate(2024, 1, 12), "every Friday"},
		{newCalendarDate(2024, 1, 13), "day 13 of every month"},
		{newCalendarDate(2024, 1, 19), "every Friday"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got[i], want[i])
		}
	}

	// The stream continues past the initial horizon.
	when, _, ok := s.Next()
	if !ok {
		t.Fatalf("expected a next occurrence")
	}
	if got, want := when, newCalendarDate(2024, 1, 26); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSchedulerNoRules(t *testing.T) {
	s := schedule.NewScheduler(newCalendarDate(2024, 1, 1))
	if got, want := s.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, _, ok := s.Next(); ok {
		t.Errorf("expected no occurrence")
	}
	n := 0
	for range s.Upcoming(3) {
		n++
	}
	if got, want := n, 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
