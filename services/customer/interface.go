package customer

import (
	"context"
	"time"

	customerRepo "kino/database/repository/customer"
	"kino/models"
	"kino/utils"
)

type CustomerService interface {
	// Registration
	Register(ctx context.Context, req models.RegistrationRequest) (*models.Customer, error)
	EnsureAdmin(ctx context.Context, username, password string) error

	// Authentication
	Authenticate(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, customerID, token string) error

	// Customer management
	GetCustomerByID(ctx context.Context, id string) (*models.Customer, error)
	GetAllCustomers(ctx context.Context) ([]models.Customer, error)
}

// DefaultCustomerService is the production implementation.
type DefaultCustomerService struct {
	Repo     customerRepo.CustomerRepository
	Tokens   utils.TokenStore
	TokenTTL time.Duration
}

const defaultTokenTTL = 10 * time.Minute

func (s *DefaultCustomerService) tokenTTL() time.Duration {
	if s.TokenTTL <= 0 {
		return defaultTokenTTL
	}
	return s.TokenTTL
}
