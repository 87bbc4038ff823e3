package sessionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kino/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateMany inserts the sessions in order, assigning ids where missing.
func (r *mongoSessionRepo) CreateMany(ctx context.Context, sessions []models.MovieSession) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(sessions))
	ids := make([]string, len(sessions))
	for i := range sessions {
		if sessions[i].ID == "" {
			sessions[i].ID = uuid.New().String()
		}
		docs[i] = sessions[i]
		ids[i] = sessions[i].ID
	}

	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return nil, fmt.Errorf("failed to create movie sessions: %w", err)
	}
	return ids, nil
}

func (r *mongoSessionRepo) GetByID(ctx context.Context, id string) (*models.MovieSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.MovieSession
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&session); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch movie session %s: %w", id, err)
	}
	return &session, nil
}

func (r *mongoSessionRepo) Update(ctx context.Context, session *models.MovieSession) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"movie":         session.Movie,
		"price":         session.Price,
		"startDatetime": session.StartDatetime,
		"endDatetime":   session.EndDatetime,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": session.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update movie session %s: %w", session.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSessionRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete movie session %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
