package tasks

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"kino/models"

	"github.com/stretchr/testify/require"
)

func TestNewReminderTask(t *testing.T) {
	payload := models.ReminderPayload{TicketID: "t1", CustomerID: "c1", MovieSessionID: "s1", Movie: "Dune"}
	fireAt := time.Date(2030, time.March, 1, 17, 0, 0, 0, time.UTC)

	task, opts, err := NewReminderTask(payload, fireAt)
	require.NoError(t, err)
	require.Equal(t, TypeSessionReminder, task.Type())
	require.Len(t, opts, 3)

	var decoded models.ReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	require.Equal(t, payload, decoded)
}

func TestAsynqReminderScheduler_NilClient(t *testing.T) {
	s := &AsynqReminderScheduler{}
	err := s.ScheduleReminder(context.Background(), models.ReminderPayload{TicketID: "t1"}, time.Now())
	require.Error(t, err)
}
