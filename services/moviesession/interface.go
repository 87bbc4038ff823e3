package moviesession

import (
	"context"
	"time"

	hallRepo "kino/database/repository/hall"
	sessionRepo "kino/database/repository/moviesession"
	ticketRepo "kino/database/repository/ticket"
	"kino/models"
	"kino/utils"
)

type MovieSessionService interface {
	// CreateSessions schedules one session per day of the requested window.
	CreateSessions(ctx context.Context, req models.MovieSessionRequest) ([]models.MovieSession, error)
	GetSession(ctx context.Context, id string) (*models.MovieSession, error)
	ListSessions(ctx context.Context, filter models.SessionListFilter) ([]models.MovieSession, error)
	UpdateSession(ctx context.Context, id string, upd models.MovieSessionUpdate) (*models.MovieSession, error)
	DeleteSession(ctx context.Context, id string) error
}

type DefaultMovieSessionService struct {
	Repo    sessionRepo.MovieSessionRepository
	Halls   hallRepo.HallRepository
	Tickets ticketRepo.TicketRepository
	Locker  utils.Locker
	LockTTL time.Duration
}

const defaultLockTTL = 15 * time.Second

func (s *DefaultMovieSessionService) lockTTL() time.Duration {
	if s.LockTTL <= 0 {
		return defaultLockTTL
	}
	return s.LockTTL
}
