// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendarutil

import "time"

// QuarterOfMonth returns the quarter for the given month using the
// reference bucketing: Jan-Apr are quarter 1, May-Jun quarter 2,
// Jul-Aug quarter 3 and Sep-Dec quarter 4. Note that the buckets are
// intentionally non-uniform and do not match standard calendar quarters.
func QuarterOfMonth(month Month) int {
	switch m := int(month) - 1; {
	case m <= 3:
		return 1
	case m <= 5:
		return 2
	case m <= 7:
		return 3
	default:
		return 4
	}
}

// Quarter returns the quarter, 1-4, that the given time's month falls in
// as per QuarterOfMonth.
func Quarter(t time.Time) int {
	return QuarterOfMonth(Month(t.Month()))
}
