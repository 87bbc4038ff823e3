package ticketRepo

import (
	"context"
	"errors"
	"time"

	"kino/database"
	"kino/models"
	"kino/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrInsufficientSeats is returned by Purchase when the session has fewer seats left than requested.
var ErrInsufficientSeats = errors.New("not enough seats left in the session")

type TicketRepository interface {
	// Purchase atomically takes the seats from the session, adds the amount to
	// the customer's spending and stores the ticket.
	Purchase(ctx context.Context, ticket *models.Ticket) error
	// GetByID returns nil, nil when the ticket does not exist.
	GetByID(ctx context.Context, id string) (*models.Ticket, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Ticket, error)
	ListAll(ctx context.Context) ([]models.Ticket, error)
	ExistsForSessions(ctx context.Context, sessionIDs []string) (bool, error)
	SetPaymentIntent(ctx context.Context, ticketID, paymentIntentID string) error
	MarkReminded(ctx context.Context, ticketID string, at time.Time) error
}

type mongoTicketRepo struct {
	ticketColl   *mongo.Collection
	sessionColl  *mongo.Collection
	customerColl *mongo.Collection
}

// NewMongoTicketRepo constructs a new MongoDB TicketRepository.
func NewMongoTicketRepo() TicketRepository {
	db := database.DB()
	repo := &mongoTicketRepo{
		ticketColl:   db.Collection(database.TicketsCollection),
		sessionColl:  db.Collection(database.SessionsCollection),
		customerColl: db.Collection(database.CustomersCollection),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("ticket indexes", zap.Error(err))
	}
	return repo
}
