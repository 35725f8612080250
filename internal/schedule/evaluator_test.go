package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableAtBoundariesInclusive(t *testing.T) {
	e := NewEvaluator(time.UTC)
	w := NewWeekly()
	require.NoError(t, w.AddSlot(Miercoles, mustSlot(t, "16:00-18:00")))

	// 2025-01-08 is a Wednesday.
	wednesday := func(hour, min, sec int) time.Time {
		return time.Date(2025, time.January, 8, hour, min, sec, 0, time.UTC)
	}

	assert.True(t, e.AvailableAt(w, wednesday(16, 0, 0)))
	assert.True(t, e.AvailableAt(w, wednesday(17, 30, 0)))
	assert.True(t, e.AvailableAt(w, wednesday(18, 0, 0))) // end is inclusive here
	assert.False(t, e.AvailableAt(w, wednesday(18, 0, 1)))
	assert.False(t, e.AvailableAt(w, wednesday(15, 59, 59)))
}

func TestAvailableAtWrongDay(t *testing.T) {
	e := NewEvaluator(time.UTC)
	w := NewWeekly()
	require.NoError(t, w.AddSlot(Miercoles, mustSlot(t, "16:00-18:00")))

	// Same wall-clock time on Thursday.
	thursday := time.Date(2025, time.January, 9, 16, 30, 0, 0, time.UTC)
	assert.False(t, e.AvailableAt(w, thursday))
}

func TestAvailableAtTouchingSlotsBoundary(t *testing.T) {
	e := NewEvaluator(time.UTC)
	w := NewWeekly()
	require.NoError(t, w.AddSlot(Lunes, mustSlot(t, "09:00-11:00")))
	require.NoError(t, w.AddSlot(Lunes, mustSlot(t, "11:00-13:00")))

	// 2025-01-06 is a Monday. The shared boundary belongs to both slots.
	monday := time.Date(2025, time.January, 6, 11, 0, 0, 0, time.UTC)
	assert.True(t, e.AvailableAt(w, monday))
}

func TestAvailableAtEmptySchedule(t *testing.T) {
	e := NewEvaluator(time.UTC)
	at := time.Date(2025, time.January, 8, 12, 0, 0, 0, time.UTC)

	assert.False(t, e.AvailableAt(NewWeekly(), at))
	assert.False(t, e.AvailableAt(nil, at))
	assert.False(t, e.AvailableAt(NewCodec(nil).Decode("texto corrupto"), at))
}

func TestAvailableAtSundayMapping(t *testing.T) {
	e := NewEvaluator(time.UTC)
	w := NewWeekly()
	require.NoError(t, w.AddSlot(Domingo, mustSlot(t, "10:00-12:00")))

	// 2025-01-12 is a Sunday; time.Sunday is 0 but maps to Domingo.
	sunday := time.Date(2025, time.January, 12, 11, 0, 0, 0, time.UTC)
	assert.True(t, e.AvailableAt(w, sunday))

	monday := time.Date(2025, time.January, 6, 11, 0, 0, 0, time.UTC)
	assert.False(t, e.AvailableAt(w, monday))
}
