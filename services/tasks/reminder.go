package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"painterbook/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

// DefaultReminderLead is how long before the job the painter is reminded.
const DefaultReminderLead = time.Hour

// NewReminderTask builds the reminder task for a booking, due at fireAt.
// The task id is derived from the booking so a booking is reminded once.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID("reminder:" + payload.BookingID),
		asynq.MaxRetry(3),
	}

	return task, opts, nil
}

// ParseReminderPayload decodes a task built by NewReminderTask.
func ParseReminderPayload(task *asynq.Task) (models.ReminderPayload, error) {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid reminder payload: %w", err)
	}
	return p, nil
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqReminderScheduler queues painter reminders on the asynq queue.
type AsynqReminderScheduler struct {
	Client Enqueuer
	Lead   time.Duration
	Logger *zap.Logger
}

func NewAsynqReminderScheduler(client Enqueuer, lead time.Duration, logger *zap.Logger) *AsynqReminderScheduler {
	if lead <= 0 {
		lead = DefaultReminderLead
	}
	if logger == nil {
		logger = zap.L()
	}
	return &AsynqReminderScheduler{Client: client, Lead: lead, Logger: logger}
}

// ScheduleReminder enqueues the reminder Lead before booking start. A booking
// starting sooner than Lead is reminded right away.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, booking models.Booking) error {
	if s.Client == nil {
		return fmt.Errorf("AsynqClient is nil, reminder task cannot be enqueued")
	}

	fireAt := booking.Start.Add(-s.Lead)
	payload := models.ReminderPayload{
		BookingID:  booking.ID,
		PainterID:  booking.PainterID,
		CustomerID: booking.CustomerID,
		StartTime:  booking.Start.UTC().Format(time.RFC3339),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}

	info, err := s.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}

	s.Logger.Debug("reminder enqueued",
		zap.String("bookingID", booking.ID),
		zap.String("taskID", info.ID),
		zap.Time("fireAt", fireAt))
	return nil
}
