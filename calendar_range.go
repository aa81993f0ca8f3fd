// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendarutil

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// CalendarDateRange represents a range of dates, inclusive of both the
// from and to dates. A range whose to date is earlier than its from date
// is empty.
type CalendarDateRange struct {
	From, To CalendarDate
}

// NewCalendarDateRange returns a CalendarDateRange for the from/to dates.
// If the from date is later than the to date then they are swapped.
func NewCalendarDateRange(from, to CalendarDate) CalendarDateRange {
	if to.Before(from) {
		from, to = to, from
	}
	return CalendarDateRange{From: from, To: to}
}

func (cdr CalendarDateRange) String() string {
	return fmt.Sprintf("%s - %s", cdr.From, cdr.To)
}

// NumDays returns the number of days in the range, inclusive of both
// the from and to dates. It is zero or negative for empty ranges.
func (cdr CalendarDateRange) NumDays() int {
	days := int(cdr.To.Midnight().Sub(cdr.From.Midnight()) / (24 * time.Hour))
	return days + 1
}

// Dates returns an iterator that yields each date in the range.
func (cdr CalendarDateRange) Dates() iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		for cd := cdr.From; cd.BeforeOrOn(cdr.To); cd = cd.Tomorrow() {
			if !yield(cd) {
				return
			}
		}
	}
}

// DatesConstrained returns an iterator that yields each date in the range
// that satisfies the given constraints.
func (cdr CalendarDateRange) DatesConstrained(dc Constraints) iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		for cd := range cdr.Dates() {
			if !dc.Include(cd) {
				continue
			}
			if !yield(cd) {
				return
			}
		}
	}
}

// Parse a range in the format '<from>:<to>' where from and to are dates
// in the formats accepted by CalendarDate.Parse. The from date must not
// be later than the to date.
func (cdr *CalendarDateRange) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>'", val)
	}
	var from, to CalendarDate
	if err := from.Parse(parts[0]); err != nil {
		return fmt.Errorf("invalid from: %s: %v", parts[0], err)
	}
	if err := to.Parse(parts[1]); err != nil {
		return fmt.Errorf("invalid to: %s: %v", parts[1], err)
	}
	if to.Before(from) {
		return fmt.Errorf("from is later than to: %s %s", from, to)
	}
	cdr.From, cdr.To = from, to
	return nil
}

// NthOfEachMonth returns an iterator that yields the day'th date of each
// month, starting with the month of from and advancing one month at a
// time. Days that exceed those of a given month are treated as the last
// day of that month. The iterator is unbounded; the caller terminates it.
func NthOfEachMonth(from CalendarDate, day int) iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		year, month := from.Year, from.Month
		for {
			d := day
			if d < 1 {
				d = 1
			}
			if dim := DaysInMonth(year, month); d > dim {
				d = dim
			}
			if !yield(CalendarDate{Year: year, Month: month, Day: d}) {
				return
			}
			month++
			if month > 12 {
				month = 1
				year++
			}
		}
	}
}
