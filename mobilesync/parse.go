// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import (
	"strconv"
	"strings"
	"time"
)

// nullTimestamp is the sentinel the feed sends for "no date".
const nullTimestamp = "0000-00-00T00:00:00"

// ParseNumber converts a wire number field to a float64. The second result
// reports whether a value was present: the feed sends absent numerics as
// empty strings, and absent is not the same as zero. Unparseable values are
// treated as absent.
func ParseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseBoolean converts a wire boolean field. Only the literal string
// "true" (any case) is true; everything else, including absent, is false.
func ParseBoolean(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// ParseTimestamp converts a wire date plus an optional HHMMSS time-of-day
// string. The ok result is false when the feed sent no usable date. When
// timeStr carries at least six digits, hours, minutes and seconds are read
// from fixed offsets 0, 2 and 4 and overlaid on the date. Wall-clock values
// are kept as-is in UTC; the feed carries no zone information.
func ParseTimestamp(dateStr, timeStr string) (time.Time, bool) {
	if dateStr == "" || dateStr == nullTimestamp {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02T15:04:05", dateStr)
	if err != nil {
		if t, err = time.Parse("2006-01-02", dateStr); err != nil {
			return time.Time{}, false
		}
	}
	if len(timeStr) >= 6 {
		hh, errH := strconv.Atoi(timeStr[0:2])
		mm, errM := strconv.Atoi(timeStr[2:4])
		ss, errS := strconv.Atoi(timeStr[4:6])
		if errH == nil && errM == nil && errS == nil {
			t = time.Date(t.Year(), t.Month(), t.Day(), hh, mm, ss, 0, time.UTC)
		}
	}
	return t, true
}
