package ticket

import (
	"fmt"

	"kino/services"
)

// SeatsExceededError is returned when a purchase asks for more seats than remain.
type SeatsExceededError struct {
	Requested int
	Available int
}

func (e *SeatsExceededError) Error() string {
	return "You want more seats than session has!"
}

func (e *SeatsExceededError) Is(target error) bool {
	return target == services.ErrConflict
}

var (
	ErrAdminPurchase  = fmt.Errorf("%w: administrators cannot buy tickets", services.ErrForbidden)
	ErrSessionEnded   = fmt.Errorf("%w: this session has already ended", services.ErrConflict)
	ErrInvalidSeatQty = fmt.Errorf("%w: qt must be a positive number of seats", services.ErrInvalidInput)
)
