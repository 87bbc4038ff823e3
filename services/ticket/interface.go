package ticket

import (
	"context"
	"time"

	customerRepo "kino/database/repository/customer"
	sessionRepo "kino/database/repository/moviesession"
	ticketRepo "kino/database/repository/ticket"
	"kino/models"
	"kino/services/tasks"
)

type TicketService interface {
	Purchase(ctx context.Context, buyer Buyer, req models.TicketRequest) (*models.PurchaseReceipt, error)
	// ListTickets returns the buyer's tickets, or every ticket for an admin.
	ListTickets(ctx context.Context, buyer Buyer) ([]models.Ticket, error)
}

// Buyer is the authenticated caller.
type Buyer struct {
	CustomerID string
	IsAdmin    bool
}

type DefaultTicketService struct {
	Tickets   ticketRepo.TicketRepository
	Sessions  sessionRepo.MovieSessionRepository
	Customers customerRepo.CustomerRepository
	// Payments is optional; nil sells tickets without a payment intent.
	Payments PaymentGateway
	// Reminders is optional; nil sells tickets without a reminder.
	Reminders tasks.ReminderScheduler
	LeadTime  time.Duration
	Currency  string
	Clock     func() time.Time
}

func (s *DefaultTicketService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
