package moviesession

import (
	"context"
	"fmt"
	"strings"

	"kino/models"
	"kino/services"
	"kino/services/scheduling"
	"kino/utils"
)

func (s *DefaultMovieSessionService) GetSession(ctx context.Context, id string) (*models.MovieSession, error) {
	ms, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ms == nil {
		return nil, fmt.Errorf("%w: movie session %s", services.ErrNotFound, id)
	}
	return ms, nil
}

func (s *DefaultMovieSessionService) ListSessions(ctx context.Context, filter models.SessionListFilter) ([]models.MovieSession, error) {
	return s.Repo.List(ctx, filter)
}

func (s *DefaultMovieSessionService) ensureNoTickets(ctx context.Context, id string) error {
	sold, err := s.Tickets.ExistsForSessions(ctx, []string{id})
	if err != nil {
		return err
	}
	if sold {
		return ErrHasTickets
	}
	return nil
}

// UpdateSession edits a session nobody holds tickets for. New times are checked
// against the other sessions of the hall.
func (s *DefaultMovieSessionService) UpdateSession(ctx context.Context, id string, upd models.MovieSessionUpdate) (*models.MovieSession, error) {
	ms, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNoTickets(ctx, id); err != nil {
		return nil, err
	}

	if upd.Movie != nil {
		movie := strings.TrimSpace(*upd.Movie)
		if movie == "" {
			return nil, fmt.Errorf("%w: movie must not be empty", services.ErrInvalidInput)
		}
		ms.Movie = movie
	}
	if upd.Price != nil {
		if *upd.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", services.ErrInvalidInput)
		}
		ms.Price = *upd.Price
	}

	timesChanged := upd.StartDatetime != nil || upd.EndDatetime != nil
	if upd.StartDatetime != nil {
		ms.StartDatetime = *upd.StartDatetime
	}
	if upd.EndDatetime != nil {
		ms.EndDatetime = *upd.EndDatetime
	}

	if timesChanged {
		slot := scheduling.Slot{Start: ms.StartDatetime, End: ms.EndDatetime}
		if err := (scheduling.SessionRequest{Start: slot.Start, End: slot.End}).Validate(); err != nil {
			return nil, err
		}

		release, err := s.Locker.Acquire(ctx, utils.HallLockPrefix+ms.HallID, s.lockTTL())
		if err != nil {
			return nil, lockError(err)
		}
		defer release()

		booked, err := s.Repo.FindInHallWindow(ctx, ms.HallID, slot.Start, slot.End)
		if err != nil {
			return nil, err
		}
		others := booked[:0]
		for _, b := range booked {
			if b.ID != ms.ID {
				others = append(others, b)
			}
		}
		if err := scheduling.CheckOverlap([]scheduling.Slot{slot}, toExisting(others)); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.Update(ctx, ms); err != nil {
		return nil, err
	}
	return ms, nil
}

func (s *DefaultMovieSessionService) DeleteSession(ctx context.Context, id string) error {
	if _, err := s.GetSession(ctx, id); err != nil {
		return err
	}
	if err := s.ensureNoTickets(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}
