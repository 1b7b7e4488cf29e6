package utils

import (
	"testing"
	"time"
)

func TestSameDate(t *testing.T) {
	morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	night := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	if !SameDate(morning, night) {
		t.Error("same calendar day should match regardless of time")
	}
	if SameDate(night, nextDay) {
		t.Error("adjacent days should not match")
	}
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 45, 0, 0, time.UTC)

	got := DaysAgo(now, 7)
	want := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DaysAgo(now, 7) = %v, want %v", got, want)
	}
	if !DaysAgo(now, 0).Equal(DateOnly(now)) {
		t.Error("DaysAgo(now, 0) should be today at midnight")
	}
}

func TestDaysAgo_MonthBoundary(t *testing.T) {
	now := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	got := DaysAgo(now, 5)
	want := time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DaysAgo across month boundary = %v, want %v", got, want)
	}
}
