package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 30, 0, 0, time.UTC)
}

func TestInMonthEndWindow(t *testing.T) {
	tests := []struct {
		name     string
		day      time.Time
		expected bool
	}{
		{"last day of january", date(2025, time.January, 31), true},
		{"second to last day of january", date(2025, time.January, 30), true},
		{"third to last day of january", date(2025, time.January, 29), false},
		{"first of month", date(2025, time.January, 1), false},
		{"mid month", date(2025, time.June, 15), false},
		{"february 28 non-leap", date(2025, time.February, 28), true},
		{"february 27 non-leap", date(2025, time.February, 27), true},
		{"february 26 non-leap", date(2025, time.February, 26), false},
		{"february 28 leap year", date(2024, time.February, 28), true},
		{"february 27 leap year", date(2024, time.February, 27), false},
		{"april 29", date(2025, time.April, 29), true},
		{"april 30", date(2025, time.April, 30), true},
		{"december 30", date(2025, time.December, 30), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InMonthEndWindow(tt.day); got != tt.expected {
				t.Errorf("InMonthEndWindow(%s) = %v, expected %v",
					tt.day.Format("2006-01-02"), got, tt.expected)
			}
		})
	}
}

func TestLastDayOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		day      time.Time
		expected int
	}{
		{"january", date(2025, time.January, 10), 31},
		{"april", date(2025, time.April, 10), 30},
		{"february non-leap", date(2025, time.February, 10), 28},
		{"february leap", date(2024, time.February, 10), 29},
		{"december", date(2025, time.December, 1), 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastDayOfMonth(tt.day); got != tt.expected {
				t.Errorf("LastDayOfMonth(%s) = %d, expected %d",
					tt.day.Format("2006-01"), got, tt.expected)
			}
		})
	}
}

func TestSameDate(t *testing.T) {
	a := time.Date(2025, time.March, 5, 0, 1, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 5, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, time.March, 6, 0, 0, 0, 0, time.UTC)

	if !SameDate(a, b) {
		t.Error("expected same date for different times on the same day")
	}
	if SameDate(b, c) {
		t.Error("expected different dates across midnight")
	}
}

func TestTomorrow(t *testing.T) {
	now := time.Date(2025, time.January, 31, 18, 45, 12, 0, time.UTC)
	got := Tomorrow(now)
	want := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Tomorrow(%s) = %s, expected %s", now, got, want)
	}
}

func TestMonthKey(t *testing.T) {
	if got := MonthKey(date(2025, time.September, 3)); got != "2025-09" {
		t.Errorf("MonthKey = %q, expected %q", got, "2025-09")
	}
}

func TestSameMonth(t *testing.T) {
	a := date(2025, time.May, 1)
	b := date(2025, time.May, 31)
	c := date(2024, time.May, 15)

	if !SameMonth(a, b) {
		t.Error("expected same month for days within one month")
	}
	if SameMonth(a, c) {
		t.Error("expected different months across years")
	}
}
