package ticketRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kino/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoTicketRepo) GetByID(ctx context.Context, id string) (*models.Ticket, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ticket models.Ticket
	if err := r.ticketColl.FindOne(ctx, bson.M{"id": id}).Decode(&ticket); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch ticket %s: %w", id, err)
	}
	return &ticket, nil
}

func (r *mongoTicketRepo) list(ctx context.Context, filter bson.M) ([]models.Ticket, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.ticketColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tickets: %w", err)
	}
	defer cursor.Close(ctx)

	tickets := []models.Ticket{}
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("error decoding tickets: %w", err)
	}
	return tickets, nil
}

func (r *mongoTicketRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Ticket, error) {
	return r.list(ctx, bson.M{"customerId": customerID})
}

func (r *mongoTicketRepo) ListAll(ctx context.Context) ([]models.Ticket, error) {
	return r.list(ctx, bson.M{})
}

func (r *mongoTicketRepo) ExistsForSessions(ctx context.Context, sessionIDs []string) (bool, error) {
	if len(sessionIDs) == 0 {
		return false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.ticketColl.CountDocuments(ctx,
		bson.M{"movieSessionId": bson.M{"$in": sessionIDs}},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("failed to count tickets: %w", err)
	}
	return n > 0, nil
}

func (r *mongoTicketRepo) SetPaymentIntent(ctx context.Context, ticketID, paymentIntentID string) error {
	return r.set(ctx, ticketID, bson.M{"paymentIntentId": paymentIntentID})
}

func (r *mongoTicketRepo) MarkReminded(ctx context.Context, ticketID string, at time.Time) error {
	return r.set(ctx, ticketID, bson.M{"remindedAt": at})
}

func (r *mongoTicketRepo) set(ctx context.Context, ticketID string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.ticketColl.UpdateOne(ctx, bson.M{"id": ticketID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update ticket %s: %w", ticketID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
