package repository

import (
	"context"
	"fmt"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/schedule"
	"go.uber.org/zap"
)

// HorarioStore is the persistence collaborator holding the flat
// office-hours text, one field per user. *UserRepository implements it.
// Load/save atomicity is the store's contract (a single row UPDATE in
// Postgres), the schedule layer adds no locking of its own.
type HorarioStore interface {
	GetHorario(ctx context.Context, userID int64) (string, bool, error)
	SetHorario(ctx context.Context, userID int64, horario string) error
}

// ScheduleRepository loads and saves a teacher's weekly schedule through
// the flat text field, the only persisted form there is.
type ScheduleRepository struct {
	store  HorarioStore
	codec  *schedule.Codec
	logger *zap.Logger
}

func NewScheduleRepository(store HorarioStore, logger *zap.Logger) *ScheduleRepository {
	return &ScheduleRepository{
		store:  store,
		codec:  schedule.NewCodec(logger),
		logger: logger,
	}
}

// Load decodes the teacher's persisted schedule. A missing record or an
// empty field yields an empty schedule, not an error.
func (r *ScheduleRepository) Load(ctx context.Context, teacherID int64) (*schedule.Weekly, error) {
	text, found, err := r.store.GetHorario(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}

	if !found || text == "" {
		return schedule.NewWeekly(), nil
	}

	return r.codec.Decode(text), nil
}

// Save encodes the schedule and overwrites the persisted field whole.
func (r *ScheduleRepository) Save(ctx context.Context, teacherID int64, w *schedule.Weekly) error {
	encoded := r.codec.Encode(w)

	if err := r.store.SetHorario(ctx, teacherID, encoded); err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}

	r.logger.Info("Schedule saved",
		zap.Int64("teacher_id", teacherID),
		zap.String("horario", encoded))

	return nil
}
