package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kino/models"

	"github.com/hibiken/asynq"
)

const TypeSessionReminder = "session:remind"

// ReminderScheduler queues a reminder to fire at the given time.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSessionReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID("remind:" + payload.TicketID),
		asynq.MaxRetry(3),
	}
	return task, opts, nil
}

// AsynqReminderScheduler enqueues reminders on the reminder queue database.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	if s.Client == nil {
		return fmt.Errorf("asynq client is nil, reminder for ticket %s cannot be enqueued", payload.TicketID)
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
