package ticket

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	customerRepo "kino/database/repository/customer"
	"kino/database/repository/memory"
	"kino/models"
	"kino/services"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, time.March, 1, 12, 0, 0, 0, time.UTC)

type fakeGateway struct {
	err    error
	amount int
}

func (g *fakeGateway) CreateIntent(_ context.Context, ticketID string, amount int, _ string) (*PaymentIntent, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.amount = amount
	return &PaymentIntent{ID: "pi_" + ticketID, ClientSecret: "secret"}, nil
}

type fakeReminders struct {
	mu      sync.Mutex
	fireAts []time.Time
}

func (r *fakeReminders) ScheduleReminder(_ context.Context, _ models.ReminderPayload, fireAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fireAts = append(r.fireAts, fireAt)
	return nil
}

type failingCustomers struct {
	customerRepo.CustomerRepository
}

func (failingCustomers) GetByID(context.Context, string) (*models.Customer, error) {
	return nil, errors.New("mongo: connection reset")
}

func setup(t *testing.T, qyt int) (*DefaultTicketService, *memory.Store) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Customers().Create(ctx, &models.Customer{ID: "c1", Username: "ann"}))
	_, err := store.Sessions().CreateMany(ctx, []models.MovieSession{
		{ID: "live", HallID: "h", Movie: "Dune", Qyt: qyt, Price: 150, StartDatetime: now.Add(3 * time.Hour), EndDatetime: now.Add(5 * time.Hour)},
		{ID: "past", HallID: "h", Movie: "Dune", Qyt: qyt, Price: 150, StartDatetime: now.Add(-3 * time.Hour), EndDatetime: now.Add(-time.Hour)},
	})
	require.NoError(t, err)
	return &DefaultTicketService{
		Tickets:   store.Tickets(),
		Sessions:  store.Sessions(),
		Customers: store.Customers(),
		LeadTime:  time.Hour,
		Clock:     func() time.Time { return now },
	}, store
}

func TestPurchase(t *testing.T) {
	svc, store := setup(t, 10)
	gateway := &fakeGateway{}
	reminders := &fakeReminders{}
	svc.Payments = gateway
	svc.Reminders = reminders
	ctx := context.Background()

	receipt, err := svc.Purchase(ctx, Buyer{CustomerID: "c1"}, models.TicketRequest{MovieSessionID: "live", Qt: 3})
	require.NoError(t, err)
	require.Equal(t, 450, receipt.Ticket.Amount)
	require.Equal(t, 450, receipt.MoneySpent)
	require.Equal(t, "You buy 3 ticket/s! Spend 450 grn! Enjoy your movie", receipt.Message)
	require.Equal(t, "secret", receipt.ClientSecret)
	require.Equal(t, 450, gateway.amount)
	require.Equal(t, []time.Time{now.Add(2 * time.Hour)}, reminders.fireAts)

	session, err := store.Sessions().GetByID(ctx, "live")
	require.NoError(t, err)
	require.Equal(t, 7, session.Qyt)

	stored, err := store.Tickets().GetByID(ctx, receipt.Ticket.ID)
	require.NoError(t, err)
	require.Equal(t, "pi_"+receipt.Ticket.ID, stored.PaymentIntentID)
}

func TestPurchase_DefaultsToOneSeat(t *testing.T) {
	svc, _ := setup(t, 10)

	receipt, err := svc.Purchase(context.Background(), Buyer{CustomerID: "c1"}, models.TicketRequest{MovieSessionID: "live"})
	require.NoError(t, err)
	require.Equal(t, 1, receipt.Ticket.Qt)
	require.Equal(t, 150, receipt.MoneySpent)
}

func TestPurchase_Rejections(t *testing.T) {
	svc, store := setup(t, 2)
	ctx := context.Background()

	_, err := svc.Purchase(ctx, Buyer{CustomerID: "c1"}, models.TicketRequest{MovieSessionID: "live", Qt: 3})
	var exceeded *SeatsExceededError
	require.True(t, errors.As(err, &exceeded))
	require.Equal(t, 2, exceeded.Available)
	require.ErrorIs(t, err, services.ErrConflict)
	require.Equal(t, "You want more seats than session has!", err.Error())

	_, err = svc.Purchase(ctx, Buyer{CustomerID: "c1"}, models.TicketRequest{MovieSessionID: "past"})
	require.ErrorIs(t, err, ErrSessionEnded)

	_, err = svc.Purchase(ctx, Buyer{CustomerID: "c1"}, models.TicketRequest{MovieSessionID: "nope"})
	require.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.Purchase(ctx, Buyer{CustomerID: "admin", IsAdmin: true}, models.TicketRequest{MovieSessionID: "live"})
	require.ErrorIs(t, err, services.ErrForbidden)

	_, err = svc.Purchase(ctx, Buyer{CustomerID: "c1"}, models.TicketRequest{MovieSessionID: "live", Qt: -1})
	require.ErrorIs(t, err, services.ErrInvalidInput)

	customer, err := store.Customers().GetByID(ctx, "c1")
	require.NoError(t, err)
	require.Zero(t, customer.MoneySpent)
}

func TestPurchase_PaymentFailureKeepsTicket(t *testing.T) {
	svc, _ := setup(t, 5)
	svc.Payments = &fakeGateway{err: errors.New("card network down")}

	receipt, err := svc.Purchase(context.Background(), Buyer{CustomerID: "c1"}, models.TicketRequest{MovieSessionID: "live"})
	require.NoError(t, err)
	require.Empty(t, receipt.ClientSecret)
	require.Empty(t, receipt.Ticket.PaymentIntentID)
}

func TestPurchase_ConcurrentBuyersNeverOversell(t *testing.T) {
	svc, store := setup(t, 5)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	sold := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Purchase(ctx, Buyer{CustomerID: "c1"}, models.TicketRequest{MovieSessionID: "live"}); err == nil {
				mu.Lock()
				sold++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 5, sold)
	session, err := store.Sessions().GetByID(ctx, "live")
	require.NoError(t, err)
	require.Zero(t, session.Qyt)
}

func TestListTickets(t *testing.T) {
	svc, store := setup(t, 10)
	ctx := context.Background()
	require.NoError(t, store.Customers().Create(ctx, &models.Customer{ID: "c2", Username: "bob"}))

	_, err := svc.Purchase(ctx, Buyer{CustomerID: "c1"}, models.TicketRequest{MovieSessionID: "live"})
	require.NoError(t, err)
	_, err = svc.Purchase(ctx, Buyer{CustomerID: "c2"}, models.TicketRequest{MovieSessionID: "live"})
	require.NoError(t, err)

	own, err := svc.ListTickets(ctx, Buyer{CustomerID: "c1"})
	require.NoError(t, err)
	require.Len(t, own, 1)

	all, err := svc.ListTickets(ctx, Buyer{CustomerID: "admin", IsAdmin: true})
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestPurchase_CustomerLookupFailureStillReturnsReceipt(t *testing.T) {
	svc, store := setup(t, 5)
	svc.Customers = failingCustomers{CustomerRepository: store.Customers()}
	ctx := context.Background()

	receipt, err := svc.Purchase(ctx, Buyer{CustomerID: "c1"}, models.TicketRequest{MovieSessionID: "live", Qt: 2})
	require.NoError(t, err)
	require.Equal(t, 300, receipt.Ticket.Amount)
	require.Zero(t, receipt.MoneySpent)

	session, err := store.Sessions().GetByID(ctx, "live")
	require.NoError(t, err)
	require.Equal(t, 3, session.Qyt)
}
