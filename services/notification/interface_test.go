package notification

import (
	"context"
	"testing"
	"time"

	"painterbook/models"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNotifyUpcomingBookingLogsReminder(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc, err := NewLogNotificationService(zap.New(core))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	start := time.Date(2030, 3, 11, 10, 0, 0, 0, time.UTC)
	booking := models.Booking{
		ID:         "b-1",
		PainterID:  "painter-1",
		CustomerID: "customer-1",
		TimeWindow: models.TimeWindow{Start: start, End: start.Add(time.Hour)},
	}
	if err := svc.NotifyUpcomingBooking(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.FilterMessage("painter notification").All()
	if len(entries) != 1 {
		t.Fatalf("expected one notification, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["painterID"] != "painter-1" || fields["data.bookingId"] != "b-1" {
		t.Fatalf("unexpected fields %v", fields)
	}
	if fields["body"] != "You have a job from Mon 11 Mar 10:00 to 11:00 UTC." {
		t.Fatalf("unexpected body %q", fields["body"])
	}
}

func TestNotificationServiceRejectsBadInput(t *testing.T) {
	if _, err := NewLogNotificationService(nil); err == nil {
		t.Fatal("expected error for nil logger")
	}
	svc, _ := NewLogNotificationService(zap.NewNop())
	if err := svc.SendPainterNotification(context.Background(), "", "t", "b", nil); err == nil {
		t.Fatal("expected error for empty painter id")
	}
}
