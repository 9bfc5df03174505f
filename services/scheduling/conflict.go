package scheduling

import (
	"context"

	"painterbook/models"
)

// CheckConflict reports whether the painter holds any booking for which
// models.Conflicts(existing, window) is true.
func (e *DefaultMatchingEngine) CheckConflict(ctx context.Context, painterID string, window models.TimeWindow) (bool, error) {
	conflicting, err := e.Bookings.Query(ctx, models.BookingFilter{
		PainterID:     painterID,
		ConflictsWith: &window,
	})
	if err != nil {
		return false, err
	}
	return len(conflicting) > 0, nil
}

// bookingIndex caches each painter's bookings for the length of one scan so
// the conflict check per candidate slot does not go back to the store.
type bookingIndex struct {
	bookings  BookingQuerier
	byPainter map[string][]models.Booking
}

func newBookingIndex(bookings BookingQuerier) *bookingIndex {
	return &bookingIndex{bookings: bookings, byPainter: make(map[string][]models.Booking)}
}

func (idx *bookingIndex) hasConflict(ctx context.Context, painterID string, window models.TimeWindow) (bool, error) {
	list, ok := idx.byPainter[painterID]
	if !ok {
		var err error
		list, err = idx.bookings.Query(ctx, models.BookingFilter{PainterID: painterID})
		if err != nil {
			return false, err
		}
		idx.byPainter[painterID] = list
	}
	for _, b := range list {
		if models.Conflicts(b.TimeWindow, window) {
			return true, nil
		}
	}
	return false, nil
}
