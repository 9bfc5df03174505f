package models

import (
	"errors"
	"time"
)

// ErrSlotTaken is returned by an atomic create when the painter already has a
// conflicting booking.
var ErrSlotTaken = errors.New("painter already has a conflicting booking")

// ErrCustomerOverlap is returned by an atomic create when the customer already
// holds a booking that overlaps the new one.
var ErrCustomerOverlap = errors.New("you already have a booking that overlaps with this time slot, please choose a different time")

// AvailabilityFilter narrows an availability query. Zero fields are ignored.
type AvailabilityFilter struct {
	PainterID string
	// Covering keeps windows that fully contain this window.
	Covering *TimeWindow
	// EndsAfter keeps windows whose end is strictly after this instant.
	EndsAfter time.Time
}

// Matches applies the filter to a single record.
func (f AvailabilityFilter) Matches(a Availability) bool {
	if f.PainterID != "" && a.PainterID != f.PainterID {
		return false
	}
	if f.Covering != nil && !Covers(a.TimeWindow, *f.Covering) {
		return false
	}
	if !f.EndsAfter.IsZero() && !a.End.After(f.EndsAfter) {
		return false
	}
	return true
}

// BookingFilter narrows a booking query. Zero fields are ignored.
type BookingFilter struct {
	PainterID  string
	CustomerID string
	Status     BookingStatus
	// ConflictsWith keeps bookings satisfying Conflicts(booking, window).
	ConflictsWith *TimeWindow
	// OverlapsWith keeps bookings strictly overlapping the window.
	OverlapsWith *TimeWindow
}

func (f BookingFilter) Matches(b Booking) bool {
	if f.PainterID != "" && b.PainterID != f.PainterID {
		return false
	}
	if f.CustomerID != "" && b.CustomerID != f.CustomerID {
		return false
	}
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.ConflictsWith != nil && !Conflicts(b.TimeWindow, *f.ConflictsWith) {
		return false
	}
	if f.OverlapsWith != nil && !Overlaps(b.TimeWindow, *f.OverlapsWith) {
		return false
	}
	return true
}
