package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kino/config"
	ticketRepo "kino/database/repository/ticket"
	"kino/models"
	"kino/services/tasks"
	"kino/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt is the connection used by both the reminder client and worker.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// InitReminderWorker runs the reminder worker in the background. The caller
// owns the returned server and shuts it down on exit.
func InitReminderWorker(tickets ticketRepo.TicketRepository) *asynq.Server {
	logger := utils.GetLogger()
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSessionReminder, HandleReminderTask(tickets, time.Now))

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("reminder worker gave up, reminders will not be delivered")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleReminderTask records that the customer was reminded about the session.
func HandleReminderTask(tickets ticketRepo.TicketRepository, now func() time.Time) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		ticket, err := tickets.GetByID(ctx, p.TicketID)
		if err != nil {
			return err
		}
		if ticket == nil {
			logger.Warn("reminder for missing ticket", zap.String("ticketId", p.TicketID))
			return nil
		}
		if ticket.RemindedAt != nil {
			return nil
		}

		logger.Info("session reminder",
			zap.String("customerId", p.CustomerID),
			zap.String("movie", p.Movie),
			zap.String("startsAt", p.StartsAt),
			zap.Int("seats", ticket.Qt),
		)
		return tickets.MarkReminded(ctx, p.TicketID, now())
	}
}
