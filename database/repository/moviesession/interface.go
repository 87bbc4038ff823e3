package sessionRepo

import (
	"context"
	"time"

	"kino/database"
	"kino/models"
	"kino/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type MovieSessionRepository interface {
	CreateMany(ctx context.Context, sessions []models.MovieSession) ([]string, error)
	// GetByID returns nil, nil when the session does not exist.
	GetByID(ctx context.Context, id string) (*models.MovieSession, error)
	// FindInHallWindow returns the hall's sessions intersecting [from, to], bounds inclusive.
	FindInHallWindow(ctx context.Context, hallID string, from, to time.Time) ([]models.MovieSession, error)
	// ListActiveByHall returns the hall's sessions that end at or after now.
	ListActiveByHall(ctx context.Context, hallID string, now time.Time) ([]models.MovieSession, error)
	List(ctx context.Context, filter models.SessionListFilter) ([]models.MovieSession, error)
	Update(ctx context.Context, session *models.MovieSession) error
	Delete(ctx context.Context, id string) error
}

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo constructs a new MongoDB MovieSessionRepository.
func NewMongoSessionRepo() MovieSessionRepository {
	repo := &mongoSessionRepo{coll: database.DB().Collection(database.SessionsCollection)}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("movie session indexes", zap.Error(err))
	}
	return repo
}
