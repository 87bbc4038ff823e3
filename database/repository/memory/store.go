// Package memory holds map-backed implementations of the repository, token
// store and lock interfaces. They back the service and handler tests and a
// local run without Mongo or Redis.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	customerRepo "kino/database/repository/customer"
	ticketRepo "kino/database/repository/ticket"
	"kino/models"
	"kino/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store keeps every collection behind one mutex so ticket purchases are atomic.
type Store struct {
	mu        sync.Mutex
	customers map[string]models.Customer
	halls     map[string]models.CinemaHall
	sessions  map[string]models.MovieSession
	tickets   map[string]models.Ticket
	tokens    map[string]time.Time
	locks     map[string]time.Time
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{
		customers: map[string]models.Customer{},
		halls:     map[string]models.CinemaHall{},
		sessions:  map[string]models.MovieSession{},
		tickets:   map[string]models.Ticket{},
		tokens:    map[string]time.Time{},
		locks:     map[string]time.Time{},
		now:       time.Now,
	}
}

func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{s} }
func (s *Store) Halls() *HallRepo         { return &HallRepo{s} }
func (s *Store) Sessions() *SessionRepo   { return &SessionRepo{s} }
func (s *Store) Tickets() *TicketRepo     { return &TicketRepo{s} }
func (s *Store) TokenStore() *TokenStore  { return &TokenStore{s} }
func (s *Store) Locker() *Locker          { return &Locker{s} }

// CustomerRepo implements customerRepo.CustomerRepository.
type CustomerRepo struct{ s *Store }

func (r *CustomerRepo) Create(_ context.Context, c *models.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.customers {
		if existing.Username == c.Username {
			return customerRepo.ErrDuplicateUsername
		}
	}
	r.s.customers[c.ID] = *c
	return nil
}

func (r *CustomerRepo) GetByID(_ context.Context, id string) (*models.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CustomerRepo) GetByUsername(_ context.Context, username string) (*models.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.Username == username {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *CustomerRepo) GetAll(_ context.Context) ([]models.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		c.PasswordHash = ""
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// HallRepo implements hallRepo.HallRepository.
type HallRepo struct{ s *Store }

func (r *HallRepo) Create(_ context.Context, h *models.CinemaHall) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.halls[h.ID] = *h
	return nil
}

func (r *HallRepo) GetByID(_ context.Context, id string) (*models.CinemaHall, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h, ok := r.s.halls[id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (r *HallRepo) GetAll(_ context.Context) ([]models.CinemaHall, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.CinemaHall, 0, len(r.s.halls))
	for _, h := range r.s.halls {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HallName < out[j].HallName })
	return out, nil
}

func (r *HallRepo) Update(_ context.Context, h *models.CinemaHall) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.halls[h.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.s.halls[h.ID] = *h
	return nil
}

// SessionRepo implements sessionRepo.MovieSessionRepository.
type SessionRepo struct{ s *Store }

func (r *SessionRepo) CreateMany(_ context.Context, sessions []models.MovieSession) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := make([]string, len(sessions))
	for i := range sessions {
		if sessions[i].ID == "" {
			sessions[i].ID = uuid.New().String()
		}
		r.s.sessions[sessions[i].ID] = sessions[i]
		ids[i] = sessions[i].ID
	}
	return ids, nil
}

func (r *SessionRepo) GetByID(_ context.Context, id string) (*models.MovieSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ms, ok := r.s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &ms, nil
}

func (r *SessionRepo) filter(keep func(models.MovieSession) bool) []models.MovieSession {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.MovieSession{}
	for _, ms := range r.s.sessions {
		if keep(ms) {
			out = append(out, ms)
		}
	}
	sortSessions(out, "startDatetime", false)
	return out
}

func (r *SessionRepo) FindInHallWindow(_ context.Context, hallID string, from, to time.Time) ([]models.MovieSession, error) {
	return r.filter(func(ms models.MovieSession) bool {
		return ms.HallID == hallID && !ms.StartDatetime.After(to) && !ms.EndDatetime.Before(from)
	}), nil
}

func (r *SessionRepo) ListActiveByHall(_ context.Context, hallID string, now time.Time) ([]models.MovieSession, error) {
	return r.filter(func(ms models.MovieSession) bool {
		return ms.HallID == hallID && !ms.EndDatetime.Before(now)
	}), nil
}

func (r *SessionRepo) List(_ context.Context, f models.SessionListFilter) ([]models.MovieSession, error) {
	out := r.filter(func(ms models.MovieSession) bool {
		if f.Day != nil {
			dayStart := time.Date(f.Day.Year(), f.Day.Month(), f.Day.Day(), 0, 0, 0, 0, f.Day.Location())
			return !ms.StartDatetime.Before(dayStart) && ms.StartDatetime.Before(dayStart.AddDate(0, 0, 1))
		}
		return !ms.EndDatetime.Before(f.EndsAfter)
	})
	sortSessions(out, f.SortField, f.SortDesc)
	return out, nil
}

func sortSessions(out []models.MovieSession, field string, desc bool) {
	less := func(a, b models.MovieSession) int {
		switch field {
		case "price":
			return a.Price - b.Price
		case "movie":
			return strings.Compare(a.Movie, b.Movie)
		case "endDatetime":
			return a.EndDatetime.Compare(b.EndDatetime)
		}
		return a.StartDatetime.Compare(b.StartDatetime)
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := less(out[i], out[j])
		if desc {
			c = -c
		}
		if c == 0 {
			return out[i].StartDatetime.Before(out[j].StartDatetime)
		}
		return c < 0
	})
}

func (r *SessionRepo) Update(_ context.Context, ms *models.MovieSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sessions[ms.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.s.sessions[ms.ID] = *ms
	return nil
}

func (r *SessionRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sessions[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.s.sessions, id)
	return nil
}

// TicketRepo implements ticketRepo.TicketRepository.
type TicketRepo struct{ s *Store }

func (r *TicketRepo) Purchase(_ context.Context, t *models.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ms, ok := r.s.sessions[t.MovieSessionID]
	if !ok || ms.Qyt < t.Qt {
		return ticketRepo.ErrInsufficientSeats
	}
	c, ok := r.s.customers[t.CustomerID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	ms.Qyt -= t.Qt
	c.MoneySpent += t.Amount
	r.s.sessions[ms.ID] = ms
	r.s.customers[c.ID] = c
	r.s.tickets[t.ID] = *t
	return nil
}

func (r *TicketRepo) GetByID(_ context.Context, id string) (*models.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tickets[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *TicketRepo) list(keep func(models.Ticket) bool) []models.Ticket {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Ticket{}
	for _, t := range r.s.tickets {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (r *TicketRepo) ListByCustomer(_ context.Context, customerID string) ([]models.Ticket, error) {
	return r.list(func(t models.Ticket) bool { return t.CustomerID == customerID }), nil
}

func (r *TicketRepo) ListAll(_ context.Context) ([]models.Ticket, error) {
	return r.list(func(models.Ticket) bool { return true }), nil
}

func (r *TicketRepo) ExistsForSessions(_ context.Context, sessionIDs []string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tickets {
		for _, id := range sessionIDs {
			if t.MovieSessionID == id {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *TicketRepo) update(id string, fn func(*models.Ticket)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tickets[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	fn(&t)
	r.s.tickets[id] = t
	return nil
}

func (r *TicketRepo) SetPaymentIntent(_ context.Context, ticketID, paymentIntentID string) error {
	return r.update(ticketID, func(t *models.Ticket) { t.PaymentIntentID = paymentIntentID })
}

func (r *TicketRepo) MarkReminded(_ context.Context, ticketID string, at time.Time) error {
	return r.update(ticketID, func(t *models.Ticket) { t.RemindedAt = &at })
}

// TokenStore implements utils.TokenStore.
type TokenStore struct{ s *Store }

func (t *TokenStore) Save(_ context.Context, customerID, tokenHash string, ttl time.Duration) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.s.tokens[customerID+":"+tokenHash] = t.s.now().Add(ttl)
	return nil
}

func (t *TokenStore) Exists(_ context.Context, customerID, tokenHash string) (bool, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	exp, ok := t.s.tokens[customerID+":"+tokenHash]
	return ok && t.s.now().Before(exp), nil
}

func (t *TokenStore) Revoke(_ context.Context, customerID, tokenHash string) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	delete(t.s.tokens, customerID+":"+tokenHash)
	return nil
}

// Locker implements utils.Locker with expiring in-process keys.
type Locker struct{ s *Store }

func (l *Locker) Acquire(_ context.Context, key string, ttl time.Duration) (func(), error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	if exp, ok := l.s.locks[key]; ok && l.s.now().Before(exp) {
		return nil, utils.ErrLockHeld
	}
	l.s.locks[key] = l.s.now().Add(ttl)
	return func() {
		l.s.mu.Lock()
		delete(l.s.locks, key)
		l.s.mu.Unlock()
	}, nil
}
