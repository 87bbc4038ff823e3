package hall

import (
	"context"
	"fmt"
	"strings"

	"kino/models"
	"kino/services"
	"kino/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultHallService) CreateHall(ctx context.Context, req models.HallRequest) (*models.CinemaHall, error) {
	name := strings.TrimSpace(req.HallName)
	if name == "" || req.HallSize <= 0 {
		return nil, fmt.Errorf("%w: hall name and a positive size are required", services.ErrInvalidInput)
	}

	hall := &models.CinemaHall{
		ID:       uuid.New().String(),
		HallName: name,
		HallSize: req.HallSize,
	}
	if err := s.Repo.Create(ctx, hall); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("hall created", zap.String("id", hall.ID), zap.Int("size", hall.HallSize))
	return hall, nil
}

func (s *DefaultHallService) GetHall(ctx context.Context, id string) (*models.CinemaHall, error) {
	hall, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hall == nil {
		return nil, fmt.Errorf("%w: hall %s", services.ErrNotFound, id)
	}
	return hall, nil
}

func (s *DefaultHallService) ListHalls(ctx context.Context) ([]models.CinemaHall, error) {
	return s.Repo.GetAll(ctx)
}

// UpdateHall refuses to touch a hall while tickets are sold for any of its sessions that have not ended.
func (s *DefaultHallService) UpdateHall(ctx context.Context, id string, req models.HallRequest) (*models.CinemaHall, error) {
	hall, err := s.GetHall(ctx, id)
	if err != nil {
		return nil, err
	}

	active, err := s.Sessions.ListActiveByHall(ctx, id, s.now())
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(active))
	for i, ms := range active {
		ids[i] = ms.ID
	}
	sold, err := s.Tickets.ExistsForSessions(ctx, ids)
	if err != nil {
		return nil, err
	}
	if sold {
		return nil, fmt.Errorf("%w: there are already purchased tickets in this hall, it cannot be changed", services.ErrNotAcceptable)
	}

	name := strings.TrimSpace(req.HallName)
	if name == "" || req.HallSize <= 0 {
		return nil, fmt.Errorf("%w: hall name and a positive size are required", services.ErrInvalidInput)
	}
	hall.HallName = name
	hall.HallSize = req.HallSize
	if err := s.Repo.Update(ctx, hall); err != nil {
		return nil, err
	}
	return hall, nil
}
