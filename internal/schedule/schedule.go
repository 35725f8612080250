package schedule

import "sort"

// Weekly holds a teacher's recurring office hours: for each weekday an
// ordered, non-overlapping list of slots. A day that is absent from the
// map and a day mapped to an empty list both mean "no availability".
//
// A Weekly is owned by a single editing session and is not safe for
// concurrent mutation.
type Weekly struct {
	days map[Weekday][]TimeSlot
}

// NewWeekly creates an empty schedule.
func NewWeekly() *Weekly {
	return &Weekly{days: make(map[Weekday][]TimeSlot)}
}

// AddSlot inserts a slot keeping the day sorted by start time. It fails
// with ErrDuplicateSlot or ErrOverlapConflict and leaves the schedule
// untouched when the slot collides with an existing one.
func (w *Weekly) AddSlot(day Weekday, slot TimeSlot) error {
	for _, existing := range w.days[day] {
		if existing == slot {
			return ErrDuplicateSlot
		}
		if existing.Overlaps(slot) {
			return ErrOverlapConflict
		}
	}

	slots := append(w.days[day], slot)
	sort.Slice(slots, func(i, j int) bool { return slots[i].start < slots[j].start })
	w.days[day] = slots
	return nil
}

// RemoveSlot deletes the exact matching slot. Removing a slot that is not
// present is a no-op.
func (w *Weekly) RemoveSlot(day Weekday, slot TimeSlot) {
	slots := w.days[day]
	for i, existing := range slots {
		if existing == slot {
			w.days[day] = append(slots[:i], slots[i+1:]...)
			if len(w.days[day]) == 0 {
				delete(w.days, day)
			}
			return
		}
	}
}

// SlotsFor returns the day's slots ordered by start time. The returned
// slice is a copy, callers may not mutate the schedule through it.
func (w *Weekly) SlotsFor(day Weekday) []TimeSlot {
	slots := w.days[day]
	if len(slots) == 0 {
		return nil
	}
	out := make([]TimeSlot, len(slots))
	copy(out, slots)
	return out
}

// IsEmpty reports whether no day has any slot.
func (w *Weekly) IsEmpty() bool {
	for _, slots := range w.days {
		if len(slots) > 0 {
			return false
		}
	}
	return true
}
