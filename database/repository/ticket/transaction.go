package ticketRepo

import (
	"context"
	"fmt"

	"kino/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoTicketRepo) Purchase(ctx context.Context, ticket *models.Ticket) error {
	client := r.ticketColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		// The qyt guard keeps the seat count from going negative under concurrent purchases.
		res, err := r.sessionColl.UpdateOne(sc,
			bson.M{"id": ticket.MovieSessionID, "qyt": bson.M{"$gte": ticket.Qt}},
			bson.M{"$inc": bson.M{"qyt": -ticket.Qt}},
		)
		if err != nil {
			return fmt.Errorf("seat update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrInsufficientSeats
		}

		res, err = r.customerColl.UpdateOne(sc,
			bson.M{"id": ticket.CustomerID},
			bson.M{"$inc": bson.M{"moneySpent": ticket.Amount}},
		)
		if err != nil {
			return fmt.Errorf("customer update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("customer %s not found", ticket.CustomerID)
		}

		if _, err := r.ticketColl.InsertOne(sc, ticket); err != nil {
			return fmt.Errorf("insert ticket failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("ticket transaction failed: %w", err)
	}
	return nil
}
