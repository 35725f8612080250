package schedule

import "time"

// Evaluator answers "is the teacher available at this instant". Safe for
// concurrent use, it never mutates the schedule it is given.
type Evaluator struct {
	loc *time.Location
}

// NewEvaluator creates an evaluator that resolves "now" in loc. A nil
// location falls back to the process-local time zone.
func NewEvaluator(loc *time.Location) *Evaluator {
	if loc == nil {
		loc = time.Local
	}
	return &Evaluator{loc: loc}
}

// AvailableAt reports whether the instant, read on the evaluator's wall
// clock, falls inside any slot for that weekday. The containment check is inclusive
// on both ends, unlike TimeSlot.Overlaps: the boundary instant of two
// touching slots counts as inside both. An empty or nil schedule is
// always unavailable.
func (e *Evaluator) AvailableAt(w *Weekly, at time.Time) bool {
	if w == nil {
		return false
	}

	at = at.In(e.loc)
	day := WeekdayOf(at.Weekday())
	second := at.Hour()*3600 + at.Minute()*60 + at.Second()

	for _, slot := range w.SlotsFor(day) {
		if slot.start*60 <= second && second <= slot.end*60 {
			return true
		}
	}
	return false
}

// AvailableNow evaluates the schedule against the current wall clock in
// the configured time zone.
func (e *Evaluator) AvailableNow(w *Weekly) bool {
	return e.AvailableAt(w, time.Now().In(e.loc))
}
