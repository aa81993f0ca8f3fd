// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendarutil_test

import (
	"testing"

	"cloudeng.io/calendarutil"
)

func TestPeriodParse(t *testing.T) {
	var p calendarutil.Period
	if err := p.Parse("2024-01-01", "2024-01-15"); err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := p.Start, newCalendarDate(2024, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.End, newCalendarDate(2024, 1, 15); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Time of day in the boundaries is discarded.
	if err := p.Parse("2024-01-01T23:59:59Z", "2024-01-15T00:00:01Z"); err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := p.Days(), 15; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if err := p.Parse("not a date", "2024-01-15"); err == nil {
		t.Errorf("failed to return an error")
	}
	if err := p.Parse("2024-01-01", "not a date"); err == nil {
		t.Errorf("failed to return an error")
	}
}

func TestPeriodContains(t *testing.T) {
	p := calendarutil.NewPeriod(newCalendarDate(2024, 1, 5), newCalendarDate(2024, 1, 10))
	for _, tc := range []struct {
		when     calendarutil.CalendarDate
		contains bool
	}{
		{newCalendarDate(2024, 1, 5), true}, // inclusive at the start
		{newCalendarDate(2024, 1, 7), true},
		{newCalendarDate(2024, 1, 10), true}, // inclusive at the end
		{newCalendarDate(2024, 1, 4), false},
		{newCalendarDate(2024, 1, 11), false},
		{newCalendarDate(2023, 1, 7), false},
	} {
		if got, want := p.Contains(tc.when), tc.contains; got != want {
			t.Errorf("%v: got %v, want %v", tc.when, got, want)
		}
	}

	ok, err := p.ContainsDate("2024-01-05T18:30:00Z")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if !ok {
		t.Errorf("expected the start boundary to be included")
	}
	if _, err := p.ContainsDate("nope"); err == nil {
		t.Errorf("failed to return an error")
	}
}

func TestPeriodDays(t *testing.T) {
	for _, tc := range []struct {
		start, end string
		days       int
	}{
		{"2024-01-01", "2024-01-01", 1},
		{"2024-01-01", "2024-01-10", 10},
		{"2024-02-01", "2024-03-01", 30},
		{"2023-02-01", "2023-03-01", 29},
		{"2023-12-25", "2024-01-05", 12},
	} {
		days, err := calendarutil.DaysInPeriod(tc.start, tc.end)
		if err != nil {
			t.Errorf("failed: %v %v: %v", tc.start, tc.end, err)
			continue
		}
		if got, want := days, tc.days; got != want {
			t.Errorf("%v - %v: got %v, want %v", tc.start, tc.end, got, want)
		}
	}

	// A reversed period degrades to a non-positive count, not an error;
	// the boundaries are never reordered.
	p := calendarutil.NewPeriod(newCalendarDate(2024, 1, 10), newCalendarDate(2024, 1, 1))
	if got, want := p.Days(), -8; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	p = calendarutil.NewPeriod(newCalendarDate(2024, 1, 2), newCalendarDate(2024, 1, 1))
	if got, want := p.Days(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPeriodListParse(t *testing.T) {
	var pl calendarutil.PeriodList
	if err := pl.Parse([]string{"01-01-2024,15-01-2024", "01-06-2024,30-06-2024"}); err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := len(pl), 2; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := pl[1].Days(), 30; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// All invalid entries are reported, not just the first.
	err := pl.Parse([]string{"bad", "01-01-2024,xx", "01-01-2024,15-01-2024"})
	if err == nil {
		t.Fatalf("failed to return an error")
	}
}
