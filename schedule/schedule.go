// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package schedule provides support for generating work/off day
// schedules over a date range and for merging recurring date rules
// into a single ordered stream of occurrences.
package schedule

import (
	"fmt"
	"iter"

	"cloudeng.io/calendarutil"
	"cloudeng.io/errors"
)

// Cycle represents a repeating pattern of Work consecutive working days
// followed by Off consecutive days off.
type Cycle struct {
	Work int
	Off  int
}

// Validate returns an error describing every invalid field of the cycle.
func (c Cycle) Validate() error {
	errs := errors.M{}
	if c.Work < 1 {
		errs.Append(fmt.Errorf("work days must be at least 1: %d", c.Work))
	}
	if c.Off < 0 {
		errs.Append(fmt.Errorf("off days may not be negative: %d", c.Off))
	}
	return errs.Err()
}

// Length returns the number of days in one full work/off cycle.
func (c Cycle) Length() int {
	return c.Work + c.Off
}

// WorkingDays returns an iterator that yields each date in the range
// that falls within a work block, applying the cycle from the first day
// of the range: the first Work days are working days, the following Off
// days are skipped, and so on until the range is exhausted.
func (c Cycle) WorkingDays(cdr calendarutil.CalendarDateRange) iter.Seq[calendarutil.CalendarDate] {
	period := c.Length()
	return func(yield func(calendarutil.CalendarDate) bool) {
		i := 0
		for cd := range cdr.Dates() {
			if i%period < c.Work {
				if !yield(cd) {
					return
				}
			}
			i++
		}
	}
}

// WorkingDaysConstrained is like WorkingDays but only yields working
// days that also satisfy the given constraints. Excluded days still
// consume their position in the work/off cycle.
func (c Cycle) WorkingDaysConstrained(cdr calendarutil.CalendarDateRange, dc calendarutil.Constraints) iter.Seq[calendarutil.CalendarDate] {
	return func(yield func(calendarutil.CalendarDate) bool) {
		for cd := range c.WorkingDays(cdr) {
			if !dc.Include(cd) {
				continue
			}
			if !yield(cd) {
				return
			}
		}
	}
}

// WorkSchedule returns the working days between the start and end dates
// (inclusive, in DD-MM-YYYY format) for a cycle of workDays consecutive
// working days followed by offDays consecutive days off, rendered in
// DD-MM-YYYY format. A start date later than the end date yields an
// empty schedule.
func WorkSchedule(start, end string, workDays, offDays int) ([]string, error) {
	cycle := Cycle{Work: workDays, Off: offDays}
	if err := cycle.Validate(); err != nil {
		return nil, err
	}
	var from, to calendarutil.CalendarDate
	if err := from.Parse(start); err != nil {
		return nil, fmt.Errorf("invalid start: %v", err)
	}
	if err := to.Parse(end); err != nil {
		return nil, fmt.Errorf("invalid end: %v", err)
	}
	var days []string
	for cd := range cycle.WorkingDays(calendarutil.CalendarDateRange{From: from, To: to}) {
		days = append(days, cd.String())
	}
	return days, nil
}
