package hallRepo

import (
	"context"

	"kino/database"
	"kino/models"
	"kino/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type HallRepository interface {
	Create(ctx context.Context, hall *models.CinemaHall) error
	// GetByID returns nil, nil when the hall does not exist.
	GetByID(ctx context.Context, id string) (*models.CinemaHall, error)
	GetAll(ctx context.Context) ([]models.CinemaHall, error)
	Update(ctx context.Context, hall *models.CinemaHall) error
}

type mongoHallRepo struct {
	coll *mongo.Collection
}

// NewMongoHallRepo constructs a new MongoDB HallRepository.
func NewMongoHallRepo() HallRepository {
	repo := &mongoHallRepo{coll: database.DB().Collection(database.HallsCollection)}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("hall indexes", zap.Error(err))
	}
	return repo
}
