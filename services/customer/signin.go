package customer

import (
	"context"
	"fmt"

	"kino/models"
	"kino/services"
	"kino/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate checks the credentials and issues a token whose hash is kept in the token store.
func (s *DefaultCustomerService) Authenticate(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	rec, err := s.Repo.GetByUsername(ctx, req.Username)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch customer", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: invalid username or password", services.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid username or password", services.ErrUnauthorized)
	}

	role := utils.RoleCustomer
	if rec.IsAdmin {
		role = utils.RoleAdmin
	}
	ttl := s.tokenTTL()
	token, err := utils.GenerateToken(rec.ID, role, ttl)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := s.Tokens.Save(ctx, rec.ID, utils.HashToken(token), ttl); err != nil {
		utils.GetLogger().Error("Authenticate: failed to store token", zap.Error(err))
		return nil, fmt.Errorf("%w: authentication failed, please try again", services.ErrUnavailable)
	}

	return &models.AuthResponse{
		Token:             token,
		UserID:            rec.ID,
		TimeToLiveSeconds: int(ttl.Seconds()),
	}, nil
}

// Logout revokes the presented token.
func (s *DefaultCustomerService) Logout(ctx context.Context, customerID, token string) error {
	if err := s.Tokens.Revoke(ctx, customerID, utils.HashToken(token)); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
