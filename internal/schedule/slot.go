package schedule

import (
	"fmt"
	"regexp"
)

const minutesPerDay = 24 * 60

var slotPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})-(\d{1,2}):(\d{2})$`)

// TimeSlot is a half-open time-of-day interval with minute precision.
// Immutable once constructed.
type TimeSlot struct {
	start int // minutes since midnight
	end   int
}

// NewTimeSlot builds a slot from hour/minute pairs, rejecting out-of-range
// times and inverted or zero-length intervals.
func NewTimeSlot(startHour, startMin, endHour, endMin int) (TimeSlot, error) {
	if !validClock(startHour, startMin) || !validClock(endHour, endMin) {
		return TimeSlot{}, ErrInvalidRange
	}
	start := startHour*60 + startMin
	end := endHour*60 + endMin
	if start >= end {
		return TimeSlot{}, ErrInvalidOrder
	}
	return TimeSlot{start: start, end: end}, nil
}

// ParseSlot parses "HH:MM-HH:MM" (1-2 digit hours accepted).
func ParseSlot(text string) (TimeSlot, error) {
	m := slotPattern.FindStringSubmatch(text)
	if m == nil {
		return TimeSlot{}, ErrInvalidFormat
	}
	// The pattern guarantees digits, Atoi cannot fail here.
	return NewTimeSlot(atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4]))
}

func validClock(hour, min int) bool {
	return hour >= 0 && hour <= 23 && min >= 0 && min <= 59
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// Overlaps reports whether the two slots share any instant. The intervals
// are half-open, slots that exactly touch do not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.start < other.end && other.start < s.end
}

// StartMinute returns the start as minutes since midnight.
func (s TimeSlot) StartMinute() int { return s.start }

// EndMinute returns the end as minutes since midnight.
func (s TimeSlot) EndMinute() int { return s.end }

// String renders the canonical zero-padded form, the exact inverse of
// ParseSlot up to zero padding.
func (s TimeSlot) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", s.start/60, s.start%60, s.end/60, s.end%60)
}
