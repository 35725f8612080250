package service

import (
	"context"
	"fmt"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/repository"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/schedule"
	"go.uber.org/zap"
)

// ScheduleService is the office-hours API exposed to the bot layer: load
// a draft for editing, validate mutations, commit the draft whole, and
// answer live availability queries.
type ScheduleService struct {
	scheduleRepo *repository.ScheduleRepository
	evaluator    *schedule.Evaluator
	logger       *zap.Logger
}

func NewScheduleService(
	scheduleRepo *repository.ScheduleRepository,
	evaluator *schedule.Evaluator,
	logger *zap.Logger,
) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		evaluator:    evaluator,
		logger:       logger,
	}
}

// BeginEdit loads the teacher's current schedule as the editing draft.
// The draft belongs to that one conversation; nothing is persisted until
// Commit.
func (s *ScheduleService) BeginEdit(ctx context.Context, teacherID int64) (*schedule.Weekly, error) {
	w, err := s.scheduleRepo.Load(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("begin edit: %w", err)
	}
	return w, nil
}

// AddSlot validates and inserts a slot into the draft.
func (s *ScheduleService) AddSlot(w *schedule.Weekly, day schedule.Weekday, slot schedule.TimeSlot) error {
	return w.AddSlot(day, slot)
}

// RemoveSlot drops a slot from the draft; absent slots are a no-op.
func (s *ScheduleService) RemoveSlot(w *schedule.Weekly, day schedule.Weekday, slot schedule.TimeSlot) {
	w.RemoveSlot(day, slot)
}

// Commit persists the draft as a full overwrite of the stored schedule.
func (s *ScheduleService) Commit(ctx context.Context, teacherID int64, w *schedule.Weekly) error {
	if err := s.scheduleRepo.Save(ctx, teacherID, w); err != nil {
		return fmt.Errorf("commit schedule: %w", err)
	}
	return nil
}

// Load returns the persisted schedule for display.
func (s *ScheduleService) Load(ctx context.Context, teacherID int64) (*schedule.Weekly, error) {
	return s.scheduleRepo.Load(ctx, teacherID)
}

// AvailableNow reports whether the teacher is currently inside their
// office hours. Any load failure counts as unavailable, availability is
// never an error.
func (s *ScheduleService) AvailableNow(ctx context.Context, teacherID int64) bool {
	w, err := s.scheduleRepo.Load(ctx, teacherID)
	if err != nil {
		s.logger.Warn("Treating teacher as unavailable, schedule load failed",
			zap.Int64("teacher_id", teacherID),
			zap.Error(err))
		return false
	}

	return s.evaluator.AvailableNow(w)
}

// AvailableNowSchedule evaluates an already-loaded schedule.
func (s *ScheduleService) AvailableNowSchedule(w *schedule.Weekly) bool {
	return s.evaluator.AvailableNow(w)
}
