package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSlotKeepsOrder(t *testing.T) {
	w := NewWeekly()

	require.NoError(t, w.AddSlot(Lunes, mustSlot(t, "16:00-18:00")))
	require.NoError(t, w.AddSlot(Lunes, mustSlot(t, "09:00-11:00")))
	require.NoError(t, w.AddSlot(Lunes, mustSlot(t, "12:00-13:00")))

	slots := w.SlotsFor(Lunes)
	require.Len(t, slots, 3)
	assert.Equal(t, "09:00-11:00", slots[0].String())
	assert.Equal(t, "12:00-13:00", slots[1].String())
	assert.Equal(t, "16:00-18:00", slots[2].String())
}

func TestAddSlotRejectsOverlapWithoutSideEffects(t *testing.T) {
	w := NewWeekly()
	require.NoError(t, w.AddSlot(Lunes, mustSlot(t, "09:00-11:00")))

	err := w.AddSlot(Lunes, mustSlot(t, "10:00-12:00"))
	assert.ErrorIs(t, err, ErrOverlapConflict)

	slots := w.SlotsFor(Lunes)
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00-11:00", slots[0].String())
}

func TestAddSlotRejectsDuplicate(t *testing.T) {
	w := NewWeekly()
	require.NoError(t, w.AddSlot(Martes, mustSlot(t, "09:00-11:00")))

	err := w.AddSlot(Martes, mustSlot(t, "09:00-11:00"))
	assert.ErrorIs(t, err, ErrDuplicateSlot)
	assert.Len(t, w.SlotsFor(Martes), 1)
}

func TestAddSlotAllowsTouchingSlots(t *testing.T) {
	w := NewWeekly()
	require.NoError(t, w.AddSlot(Lunes, mustSlot(t, "09:00-11:00")))
	require.NoError(t, w.AddSlot(Lunes, mustSlot(t, "11:00-13:00")))
	assert.Len(t, w.SlotsFor(Lunes), 2)
}

func TestAddSlotDifferentDaysNeverConflict(t *testing.T) {
	w := NewWeekly()
	require.NoError(t, w.AddSlot(Lunes, mustSlot(t, "09:00-11:00")))
	require.NoError(t, w.AddSlot(Martes, mustSlot(t, "09:00-11:00")))
}

func TestRemoveSlot(t *testing.T) {
	w := NewWeekly()
	require.NoError(t, w.AddSlot(Viernes, mustSlot(t, "09:00-11:00")))

	// Removing an absent slot is a no-op.
	w.RemoveSlot(Viernes, mustSlot(t, "12:00-13:00"))
	w.RemoveSlot(Jueves, mustSlot(t, "09:00-11:00"))
	assert.Len(t, w.SlotsFor(Viernes), 1)

	w.RemoveSlot(Viernes, mustSlot(t, "09:00-11:00"))
	assert.Empty(t, w.SlotsFor(Viernes))
	assert.True(t, w.IsEmpty())
}

func TestIsEmpty(t *testing.T) {
	w := NewWeekly()
	assert.True(t, w.IsEmpty())

	require.NoError(t, w.AddSlot(Miercoles, mustSlot(t, "16:00-18:00")))
	assert.False(t, w.IsEmpty())
}

func TestSlotsForReturnsCopy(t *testing.T) {
	w := NewWeekly()
	require.NoError(t, w.AddSlot(Lunes, mustSlot(t, "09:00-11:00")))

	slots := w.SlotsFor(Lunes)
	slots[0] = mustSlot(t, "20:00-21:00")

	assert.Equal(t, "09:00-11:00", w.SlotsFor(Lunes)[0].String())
}
