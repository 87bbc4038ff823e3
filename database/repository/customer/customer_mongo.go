package customerRepo

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

// ErrDuplicateUsername is returned by Create when the username is taken.
var ErrDuplicateUsername = errors.New("username already exists")

func (r *MongoCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *MongoCustomerRepo) findOne(ctx context.Context, filter bson.M) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	if err := r.coll.FindOne(ctx, filter).Decode(&customer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *MongoCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	customer, err := r.findOne(ctx, bson.M{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer with id %s: %w", id, err)
	}
	return customer, nil
}

func (r *MongoCustomerRepo) GetByUsername(ctx context.Context, username string) (*models.Customer, error) {
	customer, err := r.findOne(ctx, bson.M{"username": username})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer %s: %w", username, err)
	}
	return customer, nil
}

func (r *MongoCustomerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"passwordHash": 0}).
		SetSort(bson.D{{Key: "username", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}
	defer cursor.Close(ctx)

	customers := []models.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	return customers, nil
}
