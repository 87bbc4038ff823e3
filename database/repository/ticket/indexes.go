package ticketRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoTicketRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "customerId", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("customer_created_idx"),
		},
		{
			Keys:    bson.D{{Key: "movieSessionId", Value: 1}},
			Options: options.Index().SetName("session_idx"),
		},
	}

	if _, err := r.ticketColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create ticket indexes: %w", err)
	}
	return nil
}
