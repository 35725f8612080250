package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekImageProducesPNG(t *testing.T) {
	w := schedule.NewWeekly()
	slot, err := schedule.ParseSlot("09:00-11:00")
	require.NoError(t, err)
	require.NoError(t, w.AddSlot(schedule.Lunes, slot))

	data, err := WeekImage(w)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, img.Bounds().Dx())
	assert.Equal(t, imageHeight, img.Bounds().Dy())
}

func TestWeekImageEmptySchedule(t *testing.T) {
	data, err := WeekImage(schedule.NewWeekly())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestHourBounds(t *testing.T) {
	w := schedule.NewWeekly()

	// Empty schedule falls back to the working-day window.
	minHour, maxHour := hourBounds(w)
	assert.Equal(t, 8, minHour)
	assert.Equal(t, 20, maxHour)

	slot, err := schedule.ParseSlot("09:30-11:15")
	require.NoError(t, err)
	require.NoError(t, w.AddSlot(schedule.Martes, slot))

	minHour, maxHour = hourBounds(w)
	assert.Equal(t, 8, minHour) // padded an hour below 09
	assert.Equal(t, 13, maxHour)

	late, err := schedule.ParseSlot("22:00-23:59")
	require.NoError(t, err)
	require.NoError(t, w.AddSlot(schedule.Viernes, late))

	_, maxHour = hourBounds(w)
	assert.Equal(t, 24, maxHour) // never past midnight
}
