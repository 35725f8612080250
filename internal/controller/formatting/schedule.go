package formatting

import (
	"fmt"
	"strings"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/schedule"
)

// FormatSchedule renders the office hours grouped by day in canonical
// order, one bullet per slot. Display only, this text is never parsed
// back.
func FormatSchedule(w *schedule.Weekly) string {
	if w == nil || w.IsEmpty() {
		return "No hay horario de tutorías configurado."
	}

	var blocks []string
	for _, day := range schedule.AllWeekdays {
		slots := w.SlotsFor(day)
		if len(slots) == 0 {
			continue
		}

		lines := make([]string, 0, len(slots)+1)
		lines = append(lines, fmt.Sprintf("📆 *%s*:", day))
		for _, slot := range slots {
			lines = append(lines, fmt.Sprintf("   • %s", slot))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return strings.Join(blocks, "\n\n")
}

// FormatDaySlots renders a single day's slots on one line, for the edit
// dialog prompts.
func FormatDaySlots(w *schedule.Weekly, day schedule.Weekday) string {
	slots := w.SlotsFor(day)
	if len(slots) == 0 {
		return "sin franjas"
	}

	parts := make([]string, len(slots))
	for i, slot := range slots {
		parts[i] = slot.String()
	}
	return strings.Join(parts, ", ")
}
