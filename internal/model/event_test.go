package model

import (
	"testing"
	"time"
)

func TestEventDateRange(t *testing.T) {
	t.Run("single timestamp", func(t *testing.T) {
		e := Event{Date: "2025-07-01T18:00:00Z"}
		start, end := e.DateRange()
		want := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)
		if !start.Equal(want) || !end.Equal(want) {
			t.Fatalf("got %v / %v", start, end)
		}
	})

	t.Run("delimited range", func(t *testing.T) {
		e := Event{Date: "2025-07-01T18:00:00Z|2025-07-02T02:00:00Z"}
		start, end := e.DateRange()
		if !end.After(start) {
			t.Fatalf("range not ordered: %v / %v", start, end)
		}
		if got := end.Sub(start); got != 8*time.Hour {
			t.Fatalf("span = %v, want 8h", got)
		}
	})

	t.Run("garbage yields zero values", func(t *testing.T) {
		e := Event{Date: "next friday"}
		start, end := e.DateRange()
		if !start.IsZero() || !end.IsZero() {
			t.Fatalf("expected zero times, got %v / %v", start, end)
		}
	})
}
