package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"kino/database/repository/memory"
	"kino/models"
	"kino/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
)

func TestHandleReminderTask(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Customers().Create(ctx, &models.Customer{ID: "c1", Username: "ann"}))
	_, err := store.Sessions().CreateMany(ctx, []models.MovieSession{{ID: "s1", HallID: "h", Qyt: 5, Price: 100}})
	require.NoError(t, err)
	require.NoError(t, store.Tickets().Purchase(ctx, &models.Ticket{ID: "t1", CustomerID: "c1", MovieSessionID: "s1", Qt: 2, Amount: 200}))

	remindedAt := time.Date(2030, time.March, 1, 17, 0, 0, 0, time.UTC)
	handler := HandleReminderTask(store.Tickets(), func() time.Time { return remindedAt })

	task, _, err := tasks.NewReminderTask(models.ReminderPayload{TicketID: "t1", CustomerID: "c1", Movie: "Dune"}, remindedAt)
	require.NoError(t, err)
	require.NoError(t, handler(ctx, task))

	ticket, err := store.Tickets().GetByID(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, ticket.RemindedAt)
	require.Equal(t, remindedAt, *ticket.RemindedAt)

	// Missing tickets are dropped, not retried.
	b, _ := json.Marshal(models.ReminderPayload{TicketID: "gone"})
	require.NoError(t, handler(ctx, asynq.NewTask(tasks.TypeSessionReminder, b)))

	err = handler(ctx, asynq.NewTask(tasks.TypeSessionReminder, []byte("{")))
	require.True(t, errors.Is(err, asynq.SkipRetry))
}
