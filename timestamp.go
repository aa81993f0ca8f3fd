// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendarutil

import (
	"fmt"
	"time"
)

// The date/time string formats accepted by ParseDateTime, tried in order.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05",
	"02 Jan 2006",
	"02-01-2006",
}

const expectedDateTimeFormats = "RFC3339, '2006-01-02[ 15:04:05]', '02 Jan 2006[ 15:04:05[ MST]]' or '02-01-2006'"

// ParseDateTime parses a date or date/time string in any of the accepted
// formats: RFC3339 (with optional fractional seconds), 'YYYY-MM-DD' with
// an optional 'hh:mm:ss' suffix, 'DD Mon YYYY' with optional time and
// timezone abbreviation, or 'DD-MM-YYYY'.
func ParseDateTime(val string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date/time %q, expected %s", val, expectedDateTimeFormats)
}

// TimestampMS parses a date/time string and returns its offset from the
// epoch in milliseconds. The offset is negative for dates before 1970.
func TimestampMS(val string) (int64, error) {
	t, err := ParseDateTime(val)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}
