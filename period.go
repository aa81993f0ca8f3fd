// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendarutil

import (
	"fmt"
	"strings"

	"cloudeng.io/errors"
)

// Period represents an inclusive range of calendar days bounded by a
// start and end date. Any time of day in the boundary strings is
// discarded; membership and day counts are at calendar-day resolution
// with both boundaries normalized to midnight UTC. A period whose end is
// earlier than its start is degenerate: it contains no dates and its day
// count is zero or negative.
type Period struct {
	Start, End CalendarDate
}

// NewPeriod returns the Period bounded by the start and end dates.
func NewPeriod(start, end CalendarDate) Period {
	return Period{Start: start, End: end}
}

// Parse the start and end boundaries from date/time strings in any of
// the formats accepted by ParseDateTime.
func (p *Period) Parse(start, end string) error {
	st, err := ParseDateTime(start)
	if err != nil {
		return fmt.Errorf("invalid start: %v", err)
	}
	et, err := ParseDateTime(end)
	if err != nil {
		return fmt.Errorf("invalid end: %v", err)
	}
	p.Start, p.End = NewCalendarDate(st.UTC()), NewCalendarDate(et.UTC())
	return nil
}

func (p Period) String() string {
	return fmt.Sprintf("%s - %s", p.Start, p.End)
}

// Contains returns true if the given date falls within the period,
// inclusive of both boundaries.
func (p Period) Contains(cd CalendarDate) bool {
	return p.Start.BeforeOrOn(cd) && cd.BeforeOrOn(p.End)
}

// ContainsDate parses a date/time string and reports whether the day it
// falls on is within the period, inclusive of both boundaries.
func (p Period) ContainsDate(val string) (bool, error) {
	t, err := ParseDateTime(val)
	if err != nil {
		return false, err
	}
	return p.Contains(NewCalendarDate(t.UTC())), nil
}

// Days returns the number of days in the period, inclusive of both
// boundaries, so a period whose start and end are the same day has one
// day. The count is zero or negative for degenerate periods. The
// boundaries are used as-is, never reordered.
func (p Period) Days() int {
	return CalendarDateRange{From: p.Start, To: p.End}.NumDays()
}

// DaysInPeriod parses the start and end date/time strings and returns
// the inclusive number of days between them.
func DaysInPeriod(start, end string) (int, error) {
	var p Period
	if err := p.Parse(start, end); err != nil {
		return 0, err
	}
	return p.Days(), nil
}

type PeriodList []Period

// Parse a list of periods, each in the format '<start>,<end>' with
// date-only boundaries as accepted by CalendarDate.Parse. All entries
// are parsed and the errors, if any, aggregated.
func (pl *PeriodList) Parse(vals []string) error {
	if len(vals) == 0 {
		return nil
	}
	errs := errors.M{}
	periods := make(PeriodList, 0, len(vals))
	for _, val := range vals {
		parts := strings.Split(val, ",")
		if len(parts) != 2 {
			errs.Append(fmt.Errorf("invalid period %q, expected '<start>,<end>'", val))
			continue
		}
		var start, end CalendarDate
		if err := start.Parse(strings.TrimSpace(parts[0])); err != nil {
			errs.Append(fmt.Errorf("invalid start in %q: %v", val, err))
			continue
		}
		if err := end.Parse(strings.TrimSpace(parts[1])); err != nil {
			errs.Append(fmt.Errorf("invalid end in %q: %v", val, err))
			continue
		}
		periods = append(periods, NewPeriod(start, end))
	}
	if err := errs.Err(); err != nil {
		return err
	}
	*pl = periods
	return nil
}
