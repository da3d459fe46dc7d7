package model

import "testing"

func TestIsWeekDay(t *testing.T) {
	for _, d := range WeekDays {
		if !IsWeekDay(d) {
			t.Errorf("IsWeekDay(%q) = false", d)
		}
	}

	for _, d := range []string{"", "monday", "Someday", "Senin"} {
		if IsWeekDay(d) {
			t.Errorf("IsWeekDay(%q) = true, want false", d)
		}
	}
}
