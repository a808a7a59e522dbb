package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Midnight drops the clock component so dates read from timestamps
// compare equal to dates constructed with NewDate.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

func SameDate(t1, t2 time.Time) bool {
	return t1.Format(layout) == t2.Format(layout)
}

func IsWeekday(t time.Time) bool {
	return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
}

// Weekdays returns every Mon-Fri date in [start, end], inclusive.
func Weekdays(start, end time.Time) []time.Time {
	days := []time.Time{}
	for d := Midnight(start); DateLte(d, end); d = d.AddDate(0, 0, 1) {
		if IsWeekday(d) {
			days = append(days, d)
		}
	}
	return days
}
