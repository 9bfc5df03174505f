package cron

import (
	"context"
	"fmt"
	"time"

	"painterbook/config"
	"painterbook/models"
	"painterbook/services/notification"
	"painterbook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BookingLookup loads the booking a reminder refers to.
type BookingLookup interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}

// InitReminderWorker starts the asynq worker for painter reminders in the
// background and returns the server so the caller can shut it down.
func InitReminderWorker(bookings BookingLookup, notifSvc notification.NotificationService, logger *zap.Logger) *asynq.Server {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, NewReminderHandler(bookings, notifSvc, logger))

	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Warn("Reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Reminder worker gave up, reminders will not be delivered")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

// NewReminderHandler notifies the painter about an upcoming confirmed booking.
// Bookings that are gone or no longer confirmed are dropped without retry.
func NewReminderHandler(bookings BookingLookup, notifSvc notification.NotificationService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseReminderPayload(task)
		if err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		booking, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			logger.Warn("Reminder for unknown booking", zap.String("bookingID", p.BookingID), zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if booking.Status != models.BookingConfirmed {
			logger.Info("Skipping reminder for inactive booking",
				zap.String("bookingID", booking.ID), zap.String("status", string(booking.Status)))
			return nil
		}

		logger.Info("Triggering painter reminder",
			zap.String("bookingID", booking.ID), zap.String("painterID", booking.PainterID))
		if err := notifSvc.NotifyUpcomingBooking(ctx, *booking); err != nil {
			logger.Error("Failed to send reminder", zap.String("bookingID", booking.ID), zap.Error(err))
			return err
		}
		return nil
	}
}
