// Package datetime holds small helpers around time.Time used by search
// filters and audit columns.
package datetime

import (
	"time"
)

// TruncateToSeconds drops the sub-second part of t, keeping its location.
func TruncateToSeconds(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}

// RationalizeSearchDates returns the end of a search range. When from and
// thru are the same instant the range is widened to a full day.
func RationalizeSearchDates(thru, from time.Time) time.Time {
	if from.Equal(thru) {
		return thru.AddDate(0, 0, 1)
	}

	return thru
}

// FormatOrEmpty formats t with layout, or returns "" when t is nil.
func FormatOrEmpty(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}

	return t.Format(layout)
}

// DateOrToday returns midnight of date, or midnight of now when date is nil.
func DateOrToday(date *time.Time, now time.Time) time.Time {
	d := now
	if date != nil {
		d = *date
	}

	return StartOfDay(d)
}

// StartOfDay returns midnight of the day of t in its location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
