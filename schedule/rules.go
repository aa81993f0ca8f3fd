// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule

import (
	"fmt"
	"time"

	"cloudeng.io/calendarutil"
)

// Rule represents a recurring date pattern.
type Rule interface {
	Name() string
	// Next returns the first occurrence of the rule strictly after the
	// given date.
	Next(after calendarutil.CalendarDate) calendarutil.CalendarDate
}

// Weekly recurs on every occurrence of a given day of the week.
type Weekly struct {
	Day time.Weekday
}

func (w Weekly) Name() string {
	return "every " + w.Day.String()
}

func (w Weekly) Next(after calendarutil.CalendarDate) calendarutil.CalendarDate {
	d := int(w.Day-after.Weekday()+7) % 7
	if d == 0 {
		d = 7
	}
	cd := after
	for i := 0; i < d; i++ {
		cd = cd.Tomorrow()
	}
	return cd
}

// MonthDay recurs on the Day'th of every month. Days that exceed those
// of a given month are treated as the last day of that month.
type MonthDay struct {
	Day int
}

func (m MonthDay) Name() string {
	return fmt.Sprintf("day %d of every month", m.Day)
}

func (m MonthDay) Next(after calendarutil.CalendarDate) calendarutil.CalendarDate {
	start := after.Tomorrow()
	for cd := range calendarutil.NthOfEachMonth(start, m.Day) {
		if cd.Before(start) {
			continue
		}
		return cd
	}
	panic("unreachable")
}

// WeekdayOnMonthDay recurs on the Day'th of a month only when it falls
// on the given day of the week, eg. Day 13 with Weekday Friday recurs on
// every Friday the 13th.
type WeekdayOnMonthDay struct {
	Day     int
	Weekday time.Weekday
}

func (w WeekdayOnMonthDay) Name() string {
	return fmt.Sprintf("%s the %d", w.Weekday, w.Day)
}

func (w WeekdayOnMonthDay) Next(after calendarutil.CalendarDate) calendarutil.CalendarDate {
	start := after.Tomorrow()
	for cd := range calendarutil.NthOfEachMonth(start, w.Day) {
		if cd.Before(start) {
			continue
		}
		if cd.Weekday() == w.Weekday {
			return cd
		}
	}
	panic("unreachable")
}
