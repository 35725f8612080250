package formatting

import (
	"testing"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatScheduleEmpty(t *testing.T) {
	assert.Equal(t, "No hay horario de tutorías configurado.", FormatSchedule(nil))
	assert.Equal(t, "No hay horario de tutorías configurado.", FormatSchedule(schedule.NewWeekly()))
}

func TestFormatScheduleGroupedByDay(t *testing.T) {
	w := schedule.NewWeekly()
	add := func(day schedule.Weekday, text string) {
		slot, err := schedule.ParseSlot(text)
		require.NoError(t, err)
		require.NoError(t, w.AddSlot(day, slot))
	}

	// Insertion order differs from display order on purpose.
	add(schedule.Miercoles, "16:00-18:00")
	add(schedule.Lunes, "11:00-13:00")
	add(schedule.Lunes, "09:00-11:00")

	want := "📆 *Lunes*:\n" +
		"   • 09:00-11:00\n" +
		"   • 11:00-13:00\n\n" +
		"📆 *Miércoles*:\n" +
		"   • 16:00-18:00"
	assert.Equal(t, want, FormatSchedule(w))
}

func TestFormatDaySlots(t *testing.T) {
	w := schedule.NewWeekly()
	assert.Equal(t, "sin franjas", FormatDaySlots(w, schedule.Lunes))

	slot, err := schedule.ParseSlot("09:00-11:00")
	require.NoError(t, err)
	require.NoError(t, w.AddSlot(schedule.Lunes, slot))
	assert.Equal(t, "09:00-11:00", FormatDaySlots(w, schedule.Lunes))
}
