package scheduling

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidRange is returned when the requested window ends before it starts.
	ErrInvalidRange = errors.New("session end precedes its start")
	// ErrOverlap matches every *OverlapError through errors.Is.
	ErrOverlap = errors.New("session overlaps an existing session")
)

// OverlapError names the first generated slot that collides with an existing session.
type OverlapError struct {
	Day      int
	Slot     Slot
	Existing ExistingSession
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("slot %s-%s (day %d) overlaps existing session %s-%s",
		e.Slot.Start.Format(time.RFC3339), e.Slot.End.Format(time.RFC3339), e.Day+1,
		e.Existing.Start.Format(time.RFC3339), e.Existing.End.Format(time.RFC3339))
}

func (e *OverlapError) Is(target error) bool {
	return target == ErrOverlap
}
