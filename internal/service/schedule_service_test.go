package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/repository"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memStore struct {
	fields map[int64]string
	err    error
}

func (m *memStore) GetHorario(_ context.Context, userID int64) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	text, ok := m.fields[userID]
	return text, ok, nil
}

func (m *memStore) SetHorario(_ context.Context, userID int64, horario string) error {
	if m.err != nil {
		return m.err
	}
	m.fields[userID] = horario
	return nil
}

func newScheduleService(store *memStore) *ScheduleService {
	logger := zap.NewNop()
	repo := repository.NewScheduleRepository(store, logger)
	return NewScheduleService(repo, schedule.NewEvaluator(time.UTC), logger)
}

func TestBeginEditCommitRoundTrip(t *testing.T) {
	store := &memStore{fields: make(map[int64]string)}
	svc := newScheduleService(store)
	ctx := context.Background()

	draft, err := svc.BeginEdit(ctx, 10)
	require.NoError(t, err)
	require.True(t, draft.IsEmpty())

	slot, err := schedule.ParseSlot("16:00-18:00")
	require.NoError(t, err)
	require.NoError(t, svc.AddSlot(draft, schedule.Miercoles, slot))

	require.NoError(t, svc.Commit(ctx, 10, draft))
	assert.Equal(t, "Miércoles 16:00-18:00", store.fields[10])

	reloaded, err := svc.Load(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, reloaded.SlotsFor(schedule.Miercoles), 1)
}

func TestAddSlotConflictLeavesDraftUntouched(t *testing.T) {
	svc := newScheduleService(&memStore{fields: make(map[int64]string)})
	draft := schedule.NewWeekly()

	first, err := schedule.ParseSlot("09:00-11:00")
	require.NoError(t, err)
	require.NoError(t, svc.AddSlot(draft, schedule.Lunes, first))

	second, err := schedule.ParseSlot("10:00-12:00")
	require.NoError(t, err)
	assert.ErrorIs(t, svc.AddSlot(draft, schedule.Lunes, second), schedule.ErrOverlapConflict)
	assert.Len(t, draft.SlotsFor(schedule.Lunes), 1)
}

func TestAvailableNowUnknownIsUnavailable(t *testing.T) {
	ctx := context.Background()

	// No record at all.
	svc := newScheduleService(&memStore{fields: make(map[int64]string)})
	assert.False(t, svc.AvailableNow(ctx, 99))

	// Storage failure: unavailable, never an error.
	svc = newScheduleService(&memStore{err: errors.New("db down")})
	assert.False(t, svc.AvailableNow(ctx, 99))

	// Unparsable legacy field.
	svc = newScheduleService(&memStore{fields: map[int64]string{5: "???"}})
	assert.False(t, svc.AvailableNow(ctx, 5))
}

func TestRemoveSlotAbsentIsNoOp(t *testing.T) {
	svc := newScheduleService(&memStore{fields: make(map[int64]string)})
	draft := schedule.NewWeekly()

	slot, err := schedule.ParseSlot("09:00-11:00")
	require.NoError(t, err)
	require.NoError(t, svc.AddSlot(draft, schedule.Lunes, slot))

	other, err := schedule.ParseSlot("12:00-13:00")
	require.NoError(t, err)
	svc.RemoveSlot(draft, schedule.Lunes, other)
	svc.RemoveSlot(draft, schedule.Martes, slot)

	assert.Len(t, draft.SlotsFor(schedule.Lunes), 1)
}
