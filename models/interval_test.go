package models

import (
	"testing"
	"time"
)

func hour(h int) time.Time {
	return time.Date(2030, 3, 11, 0, 0, 0, 0, time.UTC).Add(time.Duration(h) * time.Hour)
}

func w(from, to int) TimeWindow {
	return TimeWindow{Start: hour(from), End: hour(to)}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	windows := []TimeWindow{w(9, 18), w(14, 15), w(13, 14), w(15, 16), w(8, 9), w(18, 20), w(10, 11), w(0, 24)}
	for _, a := range windows {
		for _, b := range windows {
			if Overlaps(a, b) != Overlaps(b, a) {
				t.Fatalf("Overlaps not symmetric for %v and %v", a, b)
			}
		}
	}
}

func TestCoversImpliesOverlaps(t *testing.T) {
	windows := []TimeWindow{w(9, 18), w(14, 15), w(13, 14), w(15, 16), w(8, 9), w(18, 20), w(10, 11), w(9, 10)}
	sawOverlapWithoutCover := false
	for _, p := range windows {
		for _, r := range windows {
			if Covers(p, r) && !Overlaps(p, r) {
				t.Fatalf("Covers(%v, %v) without overlap", p, r)
			}
			if Overlaps(p, r) && !Covers(p, r) {
				sawOverlapWithoutCover = true
			}
		}
	}
	if !sawOverlapWithoutCover {
		t.Fatal("expected at least one overlapping pair that is not covered")
	}
}

func TestConflictsIsAsymmetricAtBoundaries(t *testing.T) {
	booking := w(14, 15)
	tests := []struct {
		name      string
		candidate TimeWindow
		want      bool
	}{
		{"identical", w(14, 15), true},
		{"candidate ends at booking start", w(13, 14), false},
		{"candidate starts at booking end", w(15, 16), true},
		{"disjoint after", w(16, 17), false},
		{"disjoint before", w(11, 12), false},
		{"contains booking", w(13, 16), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Conflicts(booking, tc.candidate); got != tc.want {
				t.Fatalf("Conflicts(%v, %v) = %v, want %v", booking, tc.candidate, got, tc.want)
			}
		})
	}

	// Swapping roles changes the answer at the shared boundary.
	if Conflicts(w(13, 14), w(14, 15)) == Conflicts(w(14, 15), w(13, 14)) {
		t.Fatal("expected Conflicts to differ when arguments are swapped at a boundary")
	}
	// Overlap never treats touching windows as overlapping.
	if Overlaps(w(13, 14), w(14, 15)) {
		t.Fatal("adjacent windows must not overlap")
	}
}

func TestValidate(t *testing.T) {
	if err := w(9, 10).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, bad := range []TimeWindow{w(10, 10), w(11, 10), {}} {
		if err := bad.Validate(); err != ErrInvalidWindow {
			t.Fatalf("expected ErrInvalidWindow for %v, got %v", bad, err)
		}
	}
	if _, err := NewTimeWindow(hour(5), hour(4)); err != ErrInvalidWindow {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestSameDayUsesReferenceLocation(t *testing.T) {
	ref := time.Date(2030, 3, 11, 1, 0, 0, 0, time.UTC)
	if !SameDay(time.Date(2030, 3, 11, 23, 0, 0, 0, time.UTC), ref) {
		t.Fatal("expected same day")
	}
	if SameDay(time.Date(2030, 3, 10, 23, 0, 0, 0, time.UTC), ref) {
		t.Fatal("expected different day")
	}
	east := time.FixedZone("UTC+3", 3*3600)
	// 22:00 UTC on the 10th is 01:00 on the 11th at UTC+3.
	if !SameDay(time.Date(2030, 3, 10, 22, 0, 0, 0, time.UTC), ref.In(east)) {
		t.Fatal("expected comparison in the reference location")
	}
}

func TestFiltersMatch(t *testing.T) {
	a := Availability{PainterID: "painter-1", TimeWindow: w(9, 18)}
	request := w(10, 11)
	if !(AvailabilityFilter{Covering: &request}).Matches(a) {
		t.Fatal("expected covering availability to match")
	}
	if (AvailabilityFilter{PainterID: "painter-2"}).Matches(a) {
		t.Fatal("expected painter filter to exclude")
	}
	if (AvailabilityFilter{EndsAfter: hour(18)}).Matches(a) {
		t.Fatal("EndsAfter is strict")
	}

	b := Booking{PainterID: "painter-1", CustomerID: "c1", TimeWindow: w(14, 15), Status: BookingConfirmed}
	adjacent := w(15, 16)
	if !(BookingFilter{ConflictsWith: &adjacent}).Matches(b) {
		t.Fatal("expected conflict filter to use the asymmetric predicate")
	}
	if (BookingFilter{OverlapsWith: &adjacent}).Matches(b) {
		t.Fatal("expected overlap filter to be strict")
	}
	if (BookingFilter{CustomerID: "c2"}).Matches(b) {
		t.Fatal("expected customer filter to exclude")
	}
	if (BookingFilter{Status: BookingCancelled}).Matches(b) {
		t.Fatal("expected status filter to exclude")
	}
}
