package utils

import "time"

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Tomorrow returns midnight of the day after t.
func Tomorrow(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// LastDayOfMonth returns the number of days in t's month.
func LastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// InMonthEndWindow reports whether t falls on the last or second-to-last
// calendar day of its month.
func InMonthEndWindow(t time.Time) bool {
	return t.Day() >= LastDayOfMonth(t)-1
}

// MonthKey returns a stable "2006-01" key for t's month, used to re-arm
// month-scoped dismissals at the month boundary.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// SameMonth reports whether a and b fall in the same month and year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
