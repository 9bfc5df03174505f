package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"painterbook/models"
	"painterbook/services/scheduling"

	"go.uber.org/zap"
)

// RequestBooking books the best free painter for window on behalf of
// customerID. When nobody is free it returns a *NoPainterError with
// alternatives. The customer overlap check up front is repeated inside the
// store's atomic create, so concurrent requests from one customer cannot both land.
func (s *DefaultBookingService) RequestBooking(ctx context.Context, customerID string, window models.TimeWindow) (*models.Booking, error) {
	if customerID == "" {
		return nil, ErrMissingCustomer
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	overlapping, err := s.Bookings.Query(ctx, models.BookingFilter{
		CustomerID:   customerID,
		OverlapsWith: &window,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check customer bookings: %w", err)
	}
	if len(overlapping) > 0 {
		return nil, ErrCustomerOverlap
	}

	for attempt := 1; attempt <= s.maxAttempts(); attempt++ {
		match, err := s.Engine.FindProviderFor(ctx, window)
		if errors.Is(err, scheduling.ErrNoProviderAvailable) {
			return nil, s.noPainter(ctx, customerID, window)
		}
		if err != nil {
			return nil, err
		}

		painterID := match.Availability.PainterID
		booking := &models.Booking{
			PainterID:   painterID,
			PainterName: scheduling.DerivePainterName(painterID),
			CustomerID:  customerID,
			TimeWindow:  window,
			Status:      models.BookingConfirmed,
		}

		err = s.Bookings.CreateIfFree(ctx, booking)
		if errors.Is(err, models.ErrCustomerOverlap) {
			return nil, ErrCustomerOverlap
		}
		if errors.Is(err, models.ErrSlotTaken) {
			s.logger().Warn("painter was taken before the booking landed, selecting again",
				zap.String("painterID", painterID),
				zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}

		s.logger().Info("booking confirmed",
			zap.String("bookingID", booking.ID),
			zap.String("painterID", painterID),
			zap.String("customerID", customerID),
			zap.Int("candidates", match.Candidates),
			zap.Float64("score", match.Score))

		if s.Reminders != nil {
			if err := s.Reminders.ScheduleReminder(ctx, *booking); err != nil {
				s.logger().Error("Failed to schedule painter reminder",
					zap.Error(err), zap.String("bookingID", booking.ID))
			}
		}
		return booking, nil
	}

	return nil, s.noPainter(ctx, customerID, window)
}

// noPainter builds the alternatives for a request nobody can take. Slots that
// exactly repeat one of the customer's own bookings are left out.
func (s *DefaultBookingService) noPainter(ctx context.Context, customerID string, window models.TimeWindow) error {
	own, err := s.Bookings.Query(ctx, models.BookingFilter{CustomerID: customerID})
	if err != nil {
		return fmt.Errorf("failed to load customer bookings: %w", err)
	}

	limit := s.suggestionLimit()
	suggestions, err := s.Engine.SuggestAlternatives(ctx, window, limit+len(own))
	if err != nil {
		return err
	}

	out := make([]models.BookingSuggestion, 0, limit)
	for _, suggestion := range suggestions {
		if len(out) == limit {
			break
		}
		if repeatsBooking(suggestion.TimeWindow, own) {
			continue
		}
		out = append(out, models.BookingSuggestion{
			Painter:   models.PainterRef{ID: suggestion.PainterID, Name: suggestion.PainterName},
			StartTime: suggestion.Start.UTC().Format(time.RFC3339Nano),
			EndTime:   suggestion.End.UTC().Format(time.RFC3339Nano),
			Message:   suggestionMessage(suggestion.Offset),
		})
	}

	s.logger().Info("no painter available, returning suggestions",
		zap.String("customerID", customerID),
		zap.Time("requestedStart", window.Start),
		zap.Int("suggestions", len(out)))
	return &NoPainterError{Suggestions: out}
}

func repeatsBooking(slot models.TimeWindow, bookings []models.Booking) bool {
	for _, b := range bookings {
		if b.Start.Equal(slot.Start) && b.End.Equal(slot.End) {
			return true
		}
	}
	return false
}

// CustomerBookings lists a customer's bookings by start time.
func (s *DefaultBookingService) CustomerBookings(ctx context.Context, customerID string) ([]models.Booking, error) {
	if customerID == "" {
		return nil, ErrMissingCustomer
	}
	return s.Bookings.Query(ctx, models.BookingFilter{CustomerID: customerID})
}

// PainterBookings lists a painter's bookings by start time.
func (s *DefaultBookingService) PainterBookings(ctx context.Context, painterID string) ([]models.Booking, error) {
	if painterID == "" {
		return nil, ErrMissingPainter
	}
	return s.Bookings.Query(ctx, models.BookingFilter{PainterID: painterID})
}
