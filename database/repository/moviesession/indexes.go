package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoSessionRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Overlap lookups per hall.
		{
			Keys:    bson.D{{Key: "hallId", Value: 1}, {Key: "startDatetime", Value: 1}, {Key: "endDatetime", Value: 1}},
			Options: options.Index().SetName("hall_start_end_idx"),
		},
		// Public listing hides finished sessions.
		{
			Keys:    bson.D{{Key: "endDatetime", Value: 1}},
			Options: options.Index().SetName("end_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create movie session indexes: %w", err)
	}
	return nil
}
