package moviesession

import (
	"context"
	"fmt"
	"strings"

	"kino/models"
	"kino/services"
	"kino/services/scheduling"
	"kino/utils"

	"go.uber.org/zap"
)

// CreateSessions expands the request into daily slots, rejects it if any slot
// collides with a session already in the hall, and stores one session per slot
// with every seat of the hall on sale. Creation is serialised per hall.
func (s *DefaultMovieSessionService) CreateSessions(ctx context.Context, req models.MovieSessionRequest) ([]models.MovieSession, error) {
	logger := utils.GetLogger()

	movie := strings.TrimSpace(req.Movie)
	if movie == "" || req.Price <= 0 {
		return nil, fmt.Errorf("%w: movie and a positive price are required", services.ErrInvalidInput)
	}
	from, to, err := scheduling.Window(req.StartDatetime, req.EndDatetime)
	if err != nil {
		return nil, err
	}

	hall, err := s.Halls.GetByID(ctx, req.HallID)
	if err != nil {
		return nil, err
	}
	if hall == nil {
		return nil, fmt.Errorf("%w: hall %s", services.ErrNotFound, req.HallID)
	}

	release, err := s.Locker.Acquire(ctx, utils.HallLockPrefix+hall.ID, s.lockTTL())
	if err != nil {
		return nil, lockError(err)
	}
	defer release()

	booked, err := s.Repo.FindInHallWindow(ctx, hall.ID, from, to)
	if err != nil {
		return nil, err
	}
	slots, err := scheduling.GenerateSlots(req.StartDatetime, req.EndDatetime, toExisting(booked))
	if err != nil {
		logger.Info("session request rejected", zap.String("hall", hall.ID), zap.Error(err))
		return nil, err
	}

	sessions := make([]models.MovieSession, len(slots))
	for i, slot := range slots {
		sessions[i] = models.MovieSession{
			HallID:        hall.ID,
			Movie:         movie,
			Qyt:           hall.HallSize,
			StartDatetime: slot.Start,
			EndDatetime:   slot.End,
			Price:         req.Price,
		}
	}
	if _, err := s.Repo.CreateMany(ctx, sessions); err != nil {
		return nil, err
	}

	logger.Info("movie sessions created",
		zap.String("hall", hall.ID),
		zap.String("movie", movie),
		zap.Int("count", len(sessions)),
	)
	return sessions, nil
}

func toExisting(sessions []models.MovieSession) []scheduling.ExistingSession {
	existing := make([]scheduling.ExistingSession, len(sessions))
	for i, ms := range sessions {
		existing[i] = scheduling.ExistingSession{Start: ms.StartDatetime, End: ms.EndDatetime}
	}
	return existing
}
