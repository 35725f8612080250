package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, text string) TimeSlot {
	t.Helper()
	slot, err := ParseSlot(text)
	require.NoError(t, err)
	return slot
}

func TestParseSlotRoundTrip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00-11:00", "09:00-11:00"},
		{"9:00-11:00", "09:00-11:00"}, // single-digit hour gets padded
		{"00:00-23:59", "00:00-23:59"},
		{"16:30-18:45", "16:30-18:45"},
	}

	for _, tt := range tests {
		slot, err := ParseSlot(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, slot.String(), tt.in)
	}
}

func TestParseSlotErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrInvalidFormat},
		{"lunes", ErrInvalidFormat},
		{"09:00", ErrInvalidFormat},
		{"09:00 - 11:00", ErrInvalidFormat},
		{"99:99-bad", ErrInvalidFormat},
		{"9:0-11:00", ErrInvalidFormat},
		{"24:00-25:00", ErrInvalidRange},
		{"10:60-11:00", ErrInvalidRange},
		{"99:99-11:00", ErrInvalidRange},
		{"11:00-09:00", ErrInvalidOrder},
		{"11:00-11:00", ErrInvalidOrder}, // zero-length slot rejected
	}

	for _, tt := range tests {
		_, err := ParseSlot(tt.in)
		assert.ErrorIs(t, err, tt.want, tt.in)
	}
}

func TestOverlaps(t *testing.T) {
	morning := mustSlot(t, "09:00-11:00")

	assert.True(t, morning.Overlaps(mustSlot(t, "10:00-12:00")))
	assert.True(t, morning.Overlaps(mustSlot(t, "08:00-09:01")))
	assert.True(t, morning.Overlaps(mustSlot(t, "09:30-10:30"))) // contained
	assert.True(t, morning.Overlaps(morning))

	// Touching slots share no instant under the half-open test.
	assert.False(t, morning.Overlaps(mustSlot(t, "11:00-13:00")))
	assert.False(t, morning.Overlaps(mustSlot(t, "07:00-09:00")))
	assert.False(t, morning.Overlaps(mustSlot(t, "12:00-13:00")))
}
