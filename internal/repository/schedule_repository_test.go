package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeHorarioStore keeps horario fields in memory.
type fakeHorarioStore struct {
	fields map[int64]string
	err    error
}

func newFakeHorarioStore() *fakeHorarioStore {
	return &fakeHorarioStore{fields: make(map[int64]string)}
}

func (f *fakeHorarioStore) GetHorario(_ context.Context, userID int64) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	text, ok := f.fields[userID]
	return text, ok, nil
}

func (f *fakeHorarioStore) SetHorario(_ context.Context, userID int64, horario string) error {
	if f.err != nil {
		return f.err
	}
	f.fields[userID] = horario
	return nil
}

func TestScheduleRepositorySaveLoadRoundTrip(t *testing.T) {
	store := newFakeHorarioStore()
	repo := NewScheduleRepository(store, zap.NewNop())
	ctx := context.Background()

	w := schedule.NewWeekly()
	slot, err := schedule.ParseSlot("09:00-11:00")
	require.NoError(t, err)
	require.NoError(t, w.AddSlot(schedule.Lunes, slot))

	require.NoError(t, repo.Save(ctx, 42, w))
	assert.Equal(t, "Lunes 09:00-11:00", store.fields[42])

	loaded, err := repo.Load(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, w.SlotsFor(schedule.Lunes), loaded.SlotsFor(schedule.Lunes))
}

func TestScheduleRepositoryLoadMissingRecord(t *testing.T) {
	repo := NewScheduleRepository(newFakeHorarioStore(), zap.NewNop())

	w, err := repo.Load(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, w.IsEmpty())
}

func TestScheduleRepositoryLoadLegacyGarbage(t *testing.T) {
	store := newFakeHorarioStore()
	store.fields[7] = "Lunes de 10 a 12 aprox"
	repo := NewScheduleRepository(store, zap.NewNop())

	w, err := repo.Load(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, w.IsEmpty())
}

func TestScheduleRepositoryPropagatesStoreErrors(t *testing.T) {
	store := newFakeHorarioStore()
	store.err = errors.New("connection reset")
	repo := NewScheduleRepository(store, zap.NewNop())
	ctx := context.Background()

	_, err := repo.Load(ctx, 1)
	assert.Error(t, err)

	err = repo.Save(ctx, 1, schedule.NewWeekly())
	assert.Error(t, err)
}

func TestScheduleRepositorySaveEmptyClearsField(t *testing.T) {
	store := newFakeHorarioStore()
	store.fields[3] = "Lunes 09:00-11:00"
	repo := NewScheduleRepository(store, zap.NewNop())

	require.NoError(t, repo.Save(context.Background(), 3, schedule.NewWeekly()))
	assert.Equal(t, "", store.fields[3])
}
