package controllers

import (
	"testing"
	"time"
)

func TestStartOfDayUsesLocalZone(t *testing.T) {
	zone := time.FixedZone("CAT", 2*60*60)

	// 01:30 local is still yesterday in UTC; the day boundary must
	// follow the clock's own zone
	late := time.Date(2026, 3, 14, 1, 30, 0, 0, zone)
	got := startOfDay(late)
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, zone)
	if !got.Equal(want) {
		t.Fatalf("startOfDay(%v) = %v, want %v", late, got, want)
	}

	evening := time.Date(2026, 3, 14, 23, 59, 0, 0, zone)
	if !startOfDay(evening).Equal(want) {
		t.Fatalf("evening of the same day must share its midnight, got %v", startOfDay(evening))
	}
}
