package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	customerRepo "kino/database/repository/customer"
	"kino/models"
	"kino/services"
	"kino/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the payload, hashes the password and stores a new non-admin customer.
func (s *DefaultCustomerService) Register(ctx context.Context, req models.RegistrationRequest) (*models.Customer, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", services.ErrInvalidInput)
	}
	if req.Password != req.Password2 {
		return nil, fmt.Errorf("%w: passwords do not match", services.ErrInvalidInput)
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}
	return s.create(ctx, username, req.Password, false)
}

// EnsureAdmin creates the bootstrap administrator unless the username already exists.
func (s *DefaultCustomerService) EnsureAdmin(ctx context.Context, username, password string) error {
	existing, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		if !existing.IsAdmin {
			utils.GetLogger().Warn("EnsureAdmin: username belongs to a regular customer", zap.String("username", username))
		}
		return nil
	}
	_, err = s.create(ctx, username, password, true)
	return err
}

func (s *DefaultCustomerService) create(ctx context.Context, username, password string, admin bool) (*models.Customer, error) {
	existing, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing customer", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: a customer with this username already exists", services.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	customer := &models.Customer{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hashedPassword),
		IsAdmin:      admin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, customer); err != nil {
		if errors.Is(err, customerRepo.ErrDuplicateUsername) {
			return nil, fmt.Errorf("%w: a customer with this username already exists", services.ErrConflict)
		}
		utils.GetLogger().Error("Register: failed to create customer", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	utils.GetLogger().Info("customer registered", zap.String("id", customer.ID), zap.Bool("admin", admin))
	return customer, nil
}
