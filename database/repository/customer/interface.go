package customerRepo

import (
	"context"

	"kino/database"
	"kino/models"
	"kino/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CustomerRepository defines methods for customer data access.
type CustomerRepository interface {
	// Create inserts a new customer record.
	Create(ctx context.Context, customer *models.Customer) error
	// GetByID returns nil, nil when the customer does not exist.
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	// GetByUsername returns nil, nil when the customer does not exist.
	GetByUsername(ctx context.Context, username string) (*models.Customer, error)
	// GetAll retrieves all customers without password hashes.
	GetAll(ctx context.Context) ([]models.Customer, error)
}

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo creates a new instance of CustomerRepository using MongoDB.
func NewMongoCustomerRepo() CustomerRepository {
	repo := &MongoCustomerRepo{coll: database.DB().Collection(database.CustomersCollection)}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("customer indexes", zap.Error(err))
	}
	return repo
}
