package models

import (
	"errors"
	"time"
)

// ErrInvalidWindow is returned when a window does not satisfy Start < End.
var ErrInvalidWindow = errors.New("invalid time window: start must be before end")

// TimeWindow is a half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time `bson:"startTime" json:"startTime"`
	End   time.Time `bson:"endTime" json:"endTime"`
}

// NewTimeWindow builds a window and validates it.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	w := TimeWindow{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return TimeWindow{}, err
	}
	return w, nil
}

// Validate reports ErrInvalidWindow for empty or inverted windows.
func (w TimeWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() || !w.Start.Before(w.End) {
		return ErrInvalidWindow
	}
	return nil
}

// Duration returns End - Start.
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Overlaps reports whether the two windows share any instant.
func Overlaps(a, b TimeWindow) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Covers reports whether outer fully contains inner.
func Covers(outer, inner TimeWindow) bool {
	return !outer.Start.After(inner.Start) && !outer.End.Before(inner.End)
}

// Conflicts is the booking guard predicate. It is intentionally not symmetric:
// an existing booking that ends exactly when the candidate starts still counts,
// while one that starts exactly when the candidate ends does not.
func Conflicts(existing, candidate TimeWindow) bool {
	return existing.Start.Before(candidate.End) && !existing.End.Before(candidate.Start)
}

// SameDay reports whether t falls on the calendar day of ref, in ref's location.
func SameDay(t, ref time.Time) bool {
	t = t.In(ref.Location())
	ty, tm, td := t.Date()
	ry, rm, rd := ref.Date()
	return ty == ry && tm == rm && td == rd
}
