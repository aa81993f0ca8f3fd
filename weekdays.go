// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendarutil

import "time"

// NextWeekday returns the smallest time strictly later than t that falls
// on the given day of the week, preserving t's clock fields and location.
// If t already falls on the given day the result is 7 days later.
func NextWeekday(t time.Time, day time.Weekday) time.Time {
	d := int(day-t.Weekday()+7) % 7
	if d == 0 {
		d = 7
	}
	return t.AddDate(0, 0, d)
}

// NextFriday returns the smallest time strictly later than t that falls
// on a Friday. A Friday input returns the Friday 7 days later, never the
// same day.
func NextFriday(t time.Time) time.Time {
	return NextWeekday(t, time.Friday)
}

// NextFridayThe13th returns the first time on or after t that is the 13th
// day of a month and falls on a Friday, preserving t's clock fields and
// location. If t itself is a Friday the 13th it is returned unchanged.
func NextFridayThe13th(t time.Time) time.Time {
	start := NewCalendarDate(t)
	if start.Day > 13 {
		start.Month++
		if start.Month > 12 {
			start.Month = 1
			start.Year++
		}
	}
	for cd := range NthOfEachMonth(start, 13) {
		if cd.Weekday() == time.Friday {
			return time.Date(cd.Year, time.Month(cd.Month), cd.Day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
		}
	}
	panic("unreachable")
}

// WeekendsInMonth returns the number of days in the given month that fall
// on a Saturday or Sunday.
func WeekendsInMonth(year int, month Month) int {
	first := CalendarDate{Year: year, Month: month, Day: 1}
	last := CalendarDate{Year: year, Month: month, Day: DaysInMonth(year, month)}
	n := 0
	for range NewCalendarDateRange(first, last).DatesConstrained(Constraints{Weekends: true}) {
		n++
	}
	return n
}

// WeekNumber returns the 1-based week number of the given time within its
// year. Weeks begin on Monday: the count starts at 1 on Jan 1 and
// increments on each Monday encountered walking forward to the date.
// This is not ISO-8601 week numbering.
func WeekNumber(t time.Time) int {
	cd := NewCalendarDate(t)
	jan1 := CalendarDate{Year: cd.Year, Month: 1, Day: 1}
	week := 1
	for d := range NewCalendarDateRange(jan1, cd).Dates() {
		if d == jan1 {
			continue
		}
		if d.Weekday() == time.Monday {
			week++
		}
	}
	return week
}
