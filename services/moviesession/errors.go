package moviesession

import (
	"errors"
	"fmt"

	"kino/services"
	"kino/utils"
)

// ErrHasTickets is returned when a session with sold tickets would be modified.
var ErrHasTickets = fmt.Errorf("%w: this movie already has active tickets", services.ErrNotAcceptable)

func lockError(err error) error {
	if errors.Is(err, utils.ErrLockHeld) {
		return fmt.Errorf("%w: the hall schedule is being changed by another request, try again", services.ErrConflict)
	}
	return fmt.Errorf("%w: %v", services.ErrUnavailable, err)
}
