package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.January, day, hour, minute, 0, 0, time.UTC)
}

func TestGenerateSlots_SameDay(t *testing.T) {
	start, end := at(1, 10, 0), at(1, 12, 0)

	slots, err := GenerateSlots(start, end, nil)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	require.True(t, slots[0].Start.Equal(start))
	require.True(t, slots[0].End.Equal(end))
}

func TestGenerateSlots_MultiDay(t *testing.T) {
	slots, err := GenerateSlots(at(1, 10, 0), at(3, 12, 0), []ExistingSession{})
	require.NoError(t, err)
	require.Equal(t, []Slot{
		{Start: at(1, 10, 0), End: at(1, 12, 0)},
		{Start: at(2, 10, 0), End: at(2, 12, 0)},
		{Start: at(3, 10, 0), End: at(3, 12, 0)},
	}, slots)
}

func TestGenerateSlots_NDaysShareSpan(t *testing.T) {
	start, end := at(1, 18, 30), at(10, 20, 45)

	slots, err := GenerateSlots(start, end, nil)
	require.NoError(t, err)
	require.Len(t, slots, 10)
	for i, s := range slots {
		require.Equal(t, start.AddDate(0, 0, i), s.Start)
		require.Equal(t, 2*time.Hour+15*time.Minute, s.End.Sub(s.Start))
	}
}

func TestGenerateSlots_OverlapFailsWholeRequest(t *testing.T) {
	existing := []ExistingSession{{Start: at(2, 11, 0), End: at(2, 11, 30)}}

	slots, err := GenerateSlots(at(1, 10, 0), at(3, 12, 0), existing)
	require.Nil(t, slots)
	require.ErrorIs(t, err, ErrOverlap)

	var overlap *OverlapError
	require.True(t, errors.As(err, &overlap))
	require.Equal(t, 1, overlap.Day)
	require.Equal(t, at(2, 10, 0), overlap.Slot.Start)
	require.Equal(t, existing[0], overlap.Existing)
}

func TestGenerateSlots_InclusiveBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		existing ExistingSession
		overlap  bool
	}{
		{"ends when slot starts", ExistingSession{Start: at(1, 8, 0), End: at(1, 10, 0)}, true},
		{"starts when slot ends", ExistingSession{Start: at(1, 12, 0), End: at(1, 14, 0)}, true},
		{"spans slot without an endpoint inside", ExistingSession{Start: at(1, 9, 0), End: at(1, 13, 0)}, false},
		{"inside slot", ExistingSession{Start: at(1, 10, 30), End: at(1, 11, 0)}, true},
		{"one minute before", ExistingSession{Start: at(1, 8, 0), End: at(1, 9, 59)}, false},
		{"one minute after", ExistingSession{Start: at(1, 12, 1), End: at(1, 13, 0)}, false},
		{"other day", ExistingSession{Start: at(2, 10, 0), End: at(2, 12, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSlots(at(1, 10, 0), at(1, 12, 0), []ExistingSession{tt.existing})
			if tt.overlap {
				require.ErrorIs(t, err, ErrOverlap)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGenerateSlots_EndBeforeStart(t *testing.T) {
	_, err := GenerateSlots(at(3, 10, 0), at(1, 12, 0), nil)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestGenerateSlots_WrapsPastMidnight(t *testing.T) {
	slots, err := GenerateSlots(at(1, 23, 0), at(2, 1, 0), nil)
	require.NoError(t, err)
	require.Equal(t, []Slot{
		{Start: at(1, 23, 0), End: at(2, 1, 0)},
		{Start: at(2, 23, 0), End: at(3, 1, 0)},
	}, slots)
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	existing := []ExistingSession{{Start: at(5, 11, 0), End: at(5, 11, 30)}}

	first, err1 := GenerateSlots(at(1, 10, 0), at(4, 12, 0), existing)
	second, err2 := GenerateSlots(at(1, 10, 0), at(4, 12, 0), existing)
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, first, second)

	_, err1 = GenerateSlots(at(1, 10, 0), at(5, 12, 0), existing)
	require.ErrorIs(t, err1, ErrOverlap)
	_, err2 = GenerateSlots(at(1, 10, 0), at(5, 12, 0), existing)
	require.Equal(t, err1, err2)
}

func TestWindow(t *testing.T) {
	from, to, err := Window(at(1, 10, 0), at(3, 12, 0))
	require.NoError(t, err)
	require.Equal(t, at(1, 10, 0), from)
	require.Equal(t, at(3, 12, 0), to)

	_, _, err = Window(at(3, 10, 0), at(1, 12, 0))
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestExpand_EndInOtherLocation(t *testing.T) {
	kyiv := time.FixedZone("EET", 2*60*60)
	start := time.Date(2024, time.January, 1, 10, 0, 0, 0, kyiv)
	// 10:00 UTC on the 2nd is 12:00 in Kyiv.
	end := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)

	slots, err := Expand(start, end)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	require.Equal(t, 2*time.Hour, slots[1].End.Sub(slots[1].Start))
}

func TestGenerateSlots_EnclosingSessionIsNotAConflict(t *testing.T) {
	existing := []ExistingSession{{Start: at(1, 9, 0), End: at(1, 13, 0)}}

	slots, err := GenerateSlots(at(1, 10, 0), at(1, 12, 0), existing)
	require.NoError(t, err)
	require.Equal(t, []Slot{{Start: at(1, 10, 0), End: at(1, 12, 0)}}, slots)
}
