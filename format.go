// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendarutil

import "time"

// usDateTimeLayout renders 'M/D/YYYY, h:mm:ss AM/PM' with no leading
// zeros on the month, day and hour and a 12-hour clock where midnight
// is 12:00:00 AM and noon is 12:00:00 PM.
const usDateTimeLayout = "1/2/2006, 3:04:05 PM"

// FormatTime renders the given time's UTC fields in the
// 'M/D/YYYY, h:mm:ss AM/PM' format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(usDateTimeLayout)
}

// FormatDate parses a date/time string in any of the formats accepted by
// ParseDateTime and renders its UTC fields in the
// 'M/D/YYYY, h:mm:ss AM/PM' format.
func FormatDate(val string) (string, error) {
	t, err := ParseDateTime(val)
	if err != nil {
		return "", err
	}
	return FormatTime(t), nil
}

// DayName parses a date/time string and returns the English name of its
// day of the week, eg. 'Thursday'.
func DayName(val string) (string, error) {
	t, err := ParseDateTime(val)
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}
