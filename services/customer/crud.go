package customer

import (
	"context"
	"fmt"

	"kino/models"
	"kino/services"
)

func (s *DefaultCustomerService) GetCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	customer, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer %s", services.ErrNotFound, id)
	}
	return customer, nil
}

func (s *DefaultCustomerService) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.Repo.GetAll(ctx)
}
