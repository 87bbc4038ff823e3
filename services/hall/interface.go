package hall

import (
	"context"
	"time"

	hallRepo "kino/database/repository/hall"
	sessionRepo "kino/database/repository/moviesession"
	ticketRepo "kino/database/repository/ticket"
	"kino/models"
)

type HallService interface {
	CreateHall(ctx context.Context, req models.HallRequest) (*models.CinemaHall, error)
	GetHall(ctx context.Context, id string) (*models.CinemaHall, error)
	ListHalls(ctx context.Context) ([]models.CinemaHall, error)
	UpdateHall(ctx context.Context, id string, req models.HallRequest) (*models.CinemaHall, error)
}

type DefaultHallService struct {
	Repo     hallRepo.HallRepository
	Sessions sessionRepo.MovieSessionRepository
	Tickets  ticketRepo.TicketRepository
	Clock    func() time.Time
}

func (s *DefaultHallService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
