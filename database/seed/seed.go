// Package seed loads the demo painters and one sample booking.
package seed

import (
	"context"
	"fmt"
	"time"

	"painterbook/models"

	"go.uber.org/zap"
)

type AvailabilityWriter interface {
	Create(ctx context.Context, availability *models.Availability) error
	DeleteAll(ctx context.Context) (int64, error)
}

type BookingWriter interface {
	Create(ctx context.Context, booking *models.Booking) error
	DeleteAll(ctx context.Context) (int64, error)
}

func clock(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}

// DemoData returns the demo windows relative to now: painter-1 and painter-2
// tomorrow, painter-1 and painter-3 the day after, and a confirmed booking for
// painter-1 tomorrow 14:00-15:00.
func DemoData(now time.Time) ([]models.Availability, models.Booking) {
	tomorrow := now.AddDate(0, 0, 1)
	dayAfter := now.AddDate(0, 0, 2)

	window := func(day time.Time, from, to int) models.TimeWindow {
		return models.TimeWindow{Start: clock(day, from), End: clock(day, to)}
	}

	availabilities := []models.Availability{
		{PainterID: "painter-1", TimeWindow: window(tomorrow, 9, 18)},
		{PainterID: "painter-2", TimeWindow: window(tomorrow, 11, 21)},
		{PainterID: "painter-1", TimeWindow: window(dayAfter, 14, 20)},
		{PainterID: "painter-3", TimeWindow: window(dayAfter, 10, 16)},
	}
	booking := models.Booking{
		PainterID:   "painter-1",
		PainterName: "Painter 1",
		CustomerID:  "demo-customer",
		TimeWindow:  window(tomorrow, 14, 15),
		Status:      models.BookingConfirmed,
	}
	return availabilities, booking
}

// Run clears both collections and writes the demo data.
func Run(ctx context.Context, availability AvailabilityWriter, bookings BookingWriter, now time.Time, logger *zap.Logger) error {
	if _, err := availability.DeleteAll(ctx); err != nil {
		return err
	}
	if _, err := bookings.DeleteAll(ctx); err != nil {
		return err
	}

	demo, sample := DemoData(now)
	for i := range demo {
		if err := availability.Create(ctx, &demo[i]); err != nil {
			return fmt.Errorf("seed availability for %s: %w", demo[i].PainterID, err)
		}
	}
	if err := bookings.Create(ctx, &sample); err != nil {
		return fmt.Errorf("seed sample booking: %w", err)
	}

	logger.Info("Demo data seeded",
		zap.String("tomorrow", now.AddDate(0, 0, 1).Format("Mon Jan 2 2006")),
		zap.String("dayAfter", now.AddDate(0, 0, 2).Format("Mon Jan 2 2006")),
		zap.Strings("painters", []string{"painter-1", "painter-2", "painter-3"}),
		zap.String("sampleBooking", "painter-1 tomorrow 14:00-15:00"))
	return nil
}
