package notification

import (
	"context"
	"fmt"
	"time"

	"painterbook/models"

	"go.uber.org/zap"
)

// NotificationService delivers booking related messages to painters and customers.
type NotificationService interface {
	SendPainterNotification(ctx context.Context, painterID, title, body string, data map[string]string) error
	NotifyUpcomingBooking(ctx context.Context, booking models.Booking) error
}

// LogNotificationService writes notifications to the structured log. It is
// the delivery channel until a push provider is configured.
type LogNotificationService struct {
	Logger *zap.Logger
}

func NewLogNotificationService(logger *zap.Logger) (*LogNotificationService, error) {
	if logger == nil {
		return nil, fmt.Errorf("notification service initialization error: logger is nil")
	}
	return &LogNotificationService{Logger: logger}, nil
}

func (s *LogNotificationService) SendPainterNotification(
	ctx context.Context,
	painterID, title, body string,
	data map[string]string,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if painterID == "" {
		return fmt.Errorf("SendPainterNotification: painter id is empty")
	}

	fields := []zap.Field{
		zap.String("painterID", painterID),
		zap.String("title", title),
		zap.String("body", body),
	}
	for k, v := range data {
		fields = append(fields, zap.String("data."+k, v))
	}
	s.Logger.Info("painter notification", fields...)
	return nil
}

// NotifyUpcomingBooking reminds the painter of a confirmed job.
func (s *LogNotificationService) NotifyUpcomingBooking(ctx context.Context, booking models.Booking) error {
	title := "Upcoming painting job"
	body := fmt.Sprintf("You have a job from %s to %s UTC.",
		booking.Start.UTC().Format("Mon 2 Jan 15:04"),
		booking.End.UTC().Format("15:04"))

	return s.SendPainterNotification(ctx, booking.PainterID, title, body, map[string]string{
		"type":       "booking_reminder",
		"role":       "painter",
		"bookingId":  booking.ID,
		"customerId": booking.CustomerID,
		"startTime":  booking.Start.UTC().Format(time.RFC3339),
	})
}
