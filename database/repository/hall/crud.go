package hallRepo

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

func (r *mongoHallRepo) Create(ctx context.Context, hall *models.CinemaHall) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, hall); err != nil {
		return fmt.Errorf("failed to create hall: %w", err)
	}
	return nil
}

func (r *mongoHallRepo) GetByID(ctx context.Context, id string) (*models.CinemaHall, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var hall models.CinemaHall
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&hall); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch hall %s: %w", id, err)
	}
	return &hall, nil
}

func (r *mongoHallRepo) GetAll(ctx context.Context) ([]models.CinemaHall, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "hallName", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch halls: %w", err)
	}
	defer cursor.Close(ctx)

	halls := []models.CinemaHall{}
	if err := cursor.All(ctx, &halls); err != nil {
		return nil, fmt.Errorf("error decoding halls: %w", err)
	}
	return halls, nil
}

func (r *mongoHallRepo) Update(ctx context.Context, hall *models.CinemaHall) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"hallName": hall.HallName, "hallSize": hall.HallSize}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": hall.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update hall %s: %w", hall.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
