// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendarutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CalendarDate represents a date with a year, month and day. It is an
// immutable value; operations that advance a date return a new value.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns the CalendarDate for the given time using its
// location's calendar fields.
func NewCalendarDate(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: Month(t.Month()), Day: t.Day()}
}

// String renders the date in the DD-MM-YYYY wire format used by schedules.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", cd.Day, time.Month(cd.Month), cd.Year)
}

// Time returns the time.Time for the date with the given time of day
// in the given location.
func (cd CalendarDate) Time(tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, tod.Hour(), tod.Minute(), tod.Second(), 0, loc)
}

// Midnight returns the time.Time for midnight UTC on the date.
func (cd CalendarDate) Midnight() time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week for the date.
func (cd CalendarDate) Weekday() time.Weekday {
	return cd.Midnight().Weekday()
}

// Tomorrow returns the date of the next day. Dec 31 wraps to Jan 1 of
// the following year.
func (cd CalendarDate) Tomorrow() CalendarDate {
	if cd.Month == 12 && cd.Day >= 31 {
		return CalendarDate{Year: cd.Year + 1, Month: 1, Day: 1}
	}
	if cd.Day >= DaysInMonth(cd.Year, cd.Month) {
		return CalendarDate{Year: cd.Year, Month: cd.Month + 1, Day: 1}
	}
	return CalendarDate{Year: cd.Year, Month: cd.Month, Day: cd.Day + 1}
}

// Before returns true if cd is earlier than a.
func (cd CalendarDate) Before(a CalendarDate) bool {
	if cd.Year != a.Year {
		return cd.Year < a.Year
	}
	if cd.Month != a.Month {
		return cd.Month < a.Month
	}
	return cd.Day < a.Day
}

// BeforeOrOn returns true if cd is earlier than or equal to a.
func (cd CalendarDate) BeforeOrOn(a CalendarDate) bool {
	return cd == a || cd.Before(a)
}

const expectedCalendarDateFormats = "DD-MM-YYYY or YYYY-MM-DD"

// Parse a date in the formats 'DD-MM-YYYY' or 'YYYY-MM-DD' with error
// checking for valid month and day.
func (cd *CalendarDate) Parse(val string) error {
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, expected %s", val, expectedCalendarDateFormats)
	}
	dayIdx, yearIdx := 0, 2
	if len(parts[0]) == 4 {
		dayIdx, yearIdx = 2, 0
	}
	year, err := strconv.Atoi(parts[yearIdx])
	if err != nil {
		return fmt.Errorf("invalid year %q in %q", parts[yearIdx], val)
	}
	month, err := ParseNumericMonth(parts[1])
	if err != nil {
		return fmt.Errorf("invalid month %q in %q", parts[1], val)
	}
	day, err := strconv.Atoi(parts[dayIdx])
	if err != nil || day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("invalid day %q for %v %v", parts[dayIdx], month, year)
	}
	*cd = CalendarDate{Year: year, Month: month, Day: day}
	return nil
}

type CalendarDateList []CalendarDate

// Parse a comma separated list of CalendarDates.
func (cdl *CalendarDateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	d := make(CalendarDateList, 0, len(parts))
	for _, part := range parts {
		var cd CalendarDate
		if err := cd.Parse(strings.TrimSpace(part)); err != nil {
			return err
		}
		d = append(d, cd)
	}
	*cdl = d
	return nil
}

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, cd := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(cd.String())
	}
	return out.String()
}

func (cdl CalendarDateList) Contains(cd CalendarDate) bool {
	for _, d := range cdl {
		if d == cd {
			return true
		}
	}
	return false
}
