package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStateLifecycle(t *testing.T) {
	m := NewManager()

	assert.Equal(t, StateNone, m.GetState(1))

	m.SetState(1, StateHorarioDay)
	m.SetData(1, "day", "Lunes")

	assert.Equal(t, StateHorarioDay, m.GetState(1))
	day, ok := m.GetData(1, "day")
	assert.True(t, ok)
	assert.Equal(t, "Lunes", day)

	// Moving to StateNone drops the whole session.
	m.SetState(1, StateNone)
	assert.Equal(t, StateNone, m.GetState(1))
	_, ok = m.GetData(1, "day")
	assert.False(t, ok)
}

func TestClearState(t *testing.T) {
	m := NewManager()
	m.SetState(2, StateRegisterEmail)
	m.SetData(2, "email", "alguien@correo.ugr.es")

	m.ClearState(2)

	assert.Equal(t, StateNone, m.GetState(2))
	_, ok := m.GetData(2, "email")
	assert.False(t, ok)
}

func TestCleanupStale(t *testing.T) {
	m := NewManager()
	m.SetState(1, StateHorarioDay)
	m.SetState(2, StateHorarioSlot)

	// Age the first session past the cutoff by hand.
	m.mu.Lock()
	m.sessions[1].UpdatedAt = time.Now().Add(-time.Hour)
	m.mu.Unlock()

	removed := m.CleanupStale(30 * time.Minute)

	assert.Equal(t, 1, removed)
	assert.Equal(t, StateNone, m.GetState(1))
	assert.Equal(t, StateHorarioSlot, m.GetState(2))
}
