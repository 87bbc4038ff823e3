package hall

import (
	"context"
	"testing"
	"time"

	"kino/database/repository/memory"
	"kino/models"
	"kino/services"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestCreateAndUpdateHall(t *testing.T) {
	store := memory.NewStore()
	svc := &DefaultHallService{Repo: store.Halls(), Sessions: store.Sessions(), Tickets: store.Tickets(), Clock: func() time.Time { return now }}
	ctx := context.Background()

	h, err := svc.CreateHall(ctx, models.HallRequest{HallName: "Red", HallSize: 50})
	require.NoError(t, err)
	require.NotEmpty(t, h.ID)

	updated, err := svc.UpdateHall(ctx, h.ID, models.HallRequest{HallName: "Crimson", HallSize: 60})
	require.NoError(t, err)
	require.Equal(t, "Crimson", updated.HallName)

	_, err = svc.UpdateHall(ctx, "missing", models.HallRequest{HallName: "X", HallSize: 1})
	require.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.CreateHall(ctx, models.HallRequest{HallName: "  ", HallSize: 1})
	require.ErrorIs(t, err, services.ErrInvalidInput)

	halls, err := svc.ListHalls(ctx)
	require.NoError(t, err)
	require.Len(t, halls, 1)
}

func TestUpdateHall_BlockedOnlyByTicketsForUnfinishedSessions(t *testing.T) {
	store := memory.NewStore()
	svc := &DefaultHallService{Repo: store.Halls(), Sessions: store.Sessions(), Tickets: store.Tickets(), Clock: func() time.Time { return now }}
	ctx := context.Background()

	h, err := svc.CreateHall(ctx, models.HallRequest{HallName: "Red", HallSize: 50})
	require.NoError(t, err)
	require.NoError(t, store.Customers().Create(ctx, &models.Customer{ID: "c1", Username: "ann"}))
	_, err = store.Sessions().CreateMany(ctx, []models.MovieSession{
		{ID: "old", HallID: h.ID, Qyt: 50, Price: 10, StartDatetime: now.Add(-4 * time.Hour), EndDatetime: now.Add(-2 * time.Hour)},
		{ID: "new", HallID: h.ID, Qyt: 50, Price: 10, StartDatetime: now.Add(2 * time.Hour), EndDatetime: now.Add(4 * time.Hour)},
	})
	require.NoError(t, err)

	require.NoError(t, store.Tickets().Purchase(ctx, &models.Ticket{ID: "t-old", CustomerID: "c1", MovieSessionID: "old", Qt: 1, Amount: 10}))
	_, err = svc.UpdateHall(ctx, h.ID, models.HallRequest{HallName: "Red", HallSize: 40})
	require.NoError(t, err)

	require.NoError(t, store.Tickets().Purchase(ctx, &models.Ticket{ID: "t-new", CustomerID: "c1", MovieSessionID: "new", Qt: 1, Amount: 10}))
	_, err = svc.UpdateHall(ctx, h.ID, models.HallRequest{HallName: "Red", HallSize: 30})
	require.ErrorIs(t, err, services.ErrNotAcceptable)
}
