// Package scheduling expands a repeated daily showtime request into concrete
// slots and rejects it when any slot collides with a session already booked in
// the same hall.
package scheduling

import (
	"time"
)

const day = 24 * time.Hour

// SessionRequest is the booking window supplied by the administrator.
type SessionRequest struct {
	Start time.Time
	End   time.Time
}

// ExistingSession is a session already persisted in the target hall.
type ExistingSession struct {
	Start time.Time
	End   time.Time
}

// Slot is one daily occurrence of a SessionRequest.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Validate reports ErrInvalidRange when the window ends before it starts.
func (r SessionRequest) Validate() error {
	if r.End.Before(r.Start) {
		return ErrInvalidRange
	}
	return nil
}

// Expand returns one slot per calendar day between start and end, inclusive.
// Every slot starts at start's clock time and lasts as long as the clock-time
// span from start to end; an end clock time earlier than the start clock time
// runs past midnight.
func Expand(start, end time.Time) ([]Slot, error) {
	if err := (SessionRequest{Start: start, End: end}).Validate(); err != nil {
		return nil, err
	}

	end = end.In(start.Location())
	span := clockOffset(end) - clockOffset(start)
	if span < 0 {
		span += day
	}

	days := calendarDays(start, end) + 1
	slots := make([]Slot, 0, days)
	for d := 0; d < days; d++ {
		slotStart := start.AddDate(0, 0, d)
		slots = append(slots, Slot{Start: slotStart, End: slotStart.Add(span)})
	}
	return slots, nil
}

// Window is the interval covered by all slots of the request: the first slot's
// start to the last slot's end. Callers use it to load the existing sessions
// that GenerateSlots must check against.
func Window(start, end time.Time) (time.Time, time.Time, error) {
	slots, err := Expand(start, end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return slots[0].Start, slots[len(slots)-1].End, nil
}

// GenerateSlots expands the request and checks every slot against the existing
// sessions of the hall. The first collision aborts the call with an
// *OverlapError and no slots are returned.
func GenerateSlots(start, end time.Time, existing []ExistingSession) ([]Slot, error) {
	slots, err := Expand(start, end)
	if err != nil {
		return nil, err
	}
	if err := CheckOverlap(slots, existing); err != nil {
		return nil, err
	}
	return slots, nil
}

// CheckOverlap returns an *OverlapError for the first slot that collides with
// any existing session.
func CheckOverlap(slots []Slot, existing []ExistingSession) error {
	for i, slot := range slots {
		for _, e := range existing {
			if slot.Overlaps(e) {
				return &OverlapError{Day: i, Slot: slot, Existing: e}
			}
		}
	}
	return nil
}

// Overlaps reports whether the existing session starts or ends within the
// slot, bounds inclusive. A session that spans the whole slot without either
// endpoint inside it does not count.
func (s Slot) Overlaps(e ExistingSession) bool {
	return s.contains(e.Start) || s.contains(e.End)
}

func (s Slot) contains(t time.Time) bool {
	return !t.Before(s.Start) && !t.After(s.End)
}

func clockOffset(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}

// calendarDays counts date boundaries between a and b, ignoring clock time and DST.
func calendarDays(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad) / day)
}
