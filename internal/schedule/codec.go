package schedule

import (
	"strings"

	"go.uber.org/zap"
)

// Codec converts a Weekly to and from the flat "horario" text stored on
// the user record: `"Lunes 09:00-11:00, Miércoles 16:00-18:00"`. That
// field is the only persisted form of the schedule, so Encode must stay
// bit-exact while Decode stays lenient with legacy records that predate
// validation. Do not make the two symmetric.
type Codec struct {
	logger *zap.Logger
}

// NewCodec creates a codec. A nil logger disables decode warnings.
func NewCodec(logger *zap.Logger) *Codec {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Codec{logger: logger}
}

// Encode flattens the schedule in canonical day order, one
// "Día HH:MM-HH:MM" token per slot, joined by ", ". An empty schedule
// encodes to the empty string.
func (c *Codec) Encode(w *Weekly) string {
	if w == nil {
		return ""
	}

	var tokens []string
	for _, day := range AllWeekdays {
		for _, slot := range w.SlotsFor(day) {
			tokens = append(tokens, day.String()+" "+slot.String())
		}
	}
	return strings.Join(tokens, ", ")
}

// Decode parses the persisted text into a schedule. Malformed tokens are
// skipped with a warning, never fatal: losing one legacy entry beats
// blocking every availability check for the teacher.
func (c *Codec) Decode(text string) *Weekly {
	w := NewWeekly()

	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		dayText, slotText, found := strings.Cut(token, " ")
		if !found {
			c.logger.Warn("Skipping horario token without day/slot separator",
				zap.String("token", token))
			continue
		}

		day, ok := ParseWeekday(dayText)
		if !ok {
			c.logger.Warn("Skipping horario token with unknown day",
				zap.String("token", token))
			continue
		}

		slot, err := ParseSlot(strings.TrimSpace(slotText))
		if err != nil {
			c.logger.Warn("Skipping unparsable horario slot",
				zap.String("token", token),
				zap.Error(err))
			continue
		}

		if err := w.AddSlot(day, slot); err != nil {
			c.logger.Warn("Skipping conflicting horario slot",
				zap.String("token", token),
				zap.Error(err))
		}
	}

	return w
}
