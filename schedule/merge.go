// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule

import (
	"iter"
	"time"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/calendarutil"
)

type scheduledRule struct {
	name string
	rule Rule
}

// Scheduler merges the occurrences of a set of rules into a single
// stream ordered by date. Occurrences start strictly after the date the
// scheduler was created with.
type Scheduler struct {
	h *heap.T[int64, scheduledRule]
}

// NewScheduler returns a Scheduler that yields the occurrences of the
// given rules strictly after the from date.
func NewScheduler(from calendarutil.CalendarDate, rules ...Rule) *Scheduler {
	s := &Scheduler{
		h: heap.NewMin(heap.WithSliceCap[int64, scheduledRule](len(rules))),
	}
	for _, r := range rules {
		s.h.Push(r.Next(from).Midnight().Unix(), scheduledRule{name: r.Name(), rule: r})
	}
	return s
}

// Len returns the number of rules being merged.
func (s *Scheduler) Len() int {
	return s.h.Len()
}

// Next returns the earliest upcoming occurrence across all rules,
// identified by the name of the rule that produced it, and advances that
// rule to its following occurrence. Ties between rules are returned in
// arbitrary order. The final return value is false if the scheduler has
// no rules.
func (s *Scheduler) Next() (calendarutil.CalendarDate, string, bool) {
	if s.h.Len() == 0 {
		return calendarutil.CalendarDate{}, "", false
	}
	secs, sr := s.h.Pop()
	when := calendarutil.NewCalendarDate(time.Unix(secs, 0).UTC())
	s.h.Push(sr.rule.Next(when).Midnight().Unix(), sr)
	return when, sr.name, true
}

// Upcoming returns an iterator that yields the next n occurrences in
// date order. It yields nothing for a scheduler with no rules.
func (s *Scheduler) Upcoming(n int) iter.Seq2[calendarutil.CalendarDate, string] {
	return func(yield func(calendarutil.CalendarDate, string) bool) {
		for i := 0; i < n; i++ {
			cd, name, ok := s.Next()
			if !ok {
				return
			}
			if !yield(cd, name) {
				return
			}
		}
	}
}
