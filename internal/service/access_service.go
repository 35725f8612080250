package service

import (
	"context"
	"fmt"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/model"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/repository"
	"go.uber.org/zap"
)

// AccessService runs the tutoring-request workflow: students ask a
// teacher for a live session, the request is gated on the teacher's
// office hours, the teacher approves or rejects.
type AccessService struct {
	requestRepo     *repository.AccessRequestRepository
	userRepo        *repository.UserRepository
	scheduleService *ScheduleService
	logger          *zap.Logger
}

func NewAccessService(
	requestRepo *repository.AccessRequestRepository,
	userRepo *repository.UserRepository,
	scheduleService *ScheduleService,
	logger *zap.Logger,
) *AccessService {
	return &AccessService{
		requestRepo:     requestRepo,
		userRepo:        userRepo,
		scheduleService: scheduleService,
		logger:          logger,
	}
}

// RequestTutoring files a pending request from student to teacher.
// Outside the teacher's office hours the request is refused immediately
// with ErrOutsideOfficeHours so the bot can show the published schedule.
func (s *AccessService) RequestTutoring(ctx context.Context, studentID, teacherID int64, message string) (*model.AccessRequest, error) {
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student == nil {
		return nil, ErrUserNotFound
	}
	if !student.Registered {
		return nil, ErrNotRegistered
	}

	teacher, err := s.userRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("get teacher: %w", err)
	}
	if teacher == nil {
		return nil, ErrUserNotFound
	}
	if !teacher.IsTeacher() {
		return nil, ErrNotATeacher
	}

	pending, err := s.requestRepo.HasPendingRequest(ctx, studentID, teacherID)
	if err != nil {
		return nil, fmt.Errorf("check pending: %w", err)
	}
	if pending {
		return nil, ErrDuplicateRequest
	}

	if !s.scheduleService.AvailableNow(ctx, teacherID) {
		s.logger.Info("Tutoring request refused, outside office hours",
			zap.Int64("student_id", studentID),
			zap.Int64("teacher_id", teacherID))
		return nil, ErrOutsideOfficeHours
	}

	req := &model.AccessRequest{
		StudentID: studentID,
		TeacherID: teacherID,
		Status:    model.RequestStatusPending,
		Message:   message,
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info("Tutoring request created",
		zap.Int64("request_id", req.ID),
		zap.Int64("student_id", studentID),
		zap.Int64("teacher_id", teacherID))

	return req, nil
}

// Resolve lets the owning teacher approve or reject a pending request.
func (s *AccessService) Resolve(ctx context.Context, teacherID, requestID int64, approve bool, response string) (*model.AccessRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if req.TeacherID != teacherID {
		return nil, ErrNotRequestOwner
	}
	if !req.IsPending() {
		return nil, ErrRequestResolved
	}

	status := model.RequestStatusRejected
	if approve {
		status = model.RequestStatusApproved
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, status, response); err != nil {
		return nil, fmt.Errorf("resolve request: %w", err)
	}

	req.Status = status
	req.TeacherResponse = response

	s.logger.Info("Tutoring request resolved",
		zap.Int64("request_id", requestID),
		zap.String("status", status))

	return req, nil
}

// PendingRequests lists the teacher's open requests.
func (s *AccessService) PendingRequests(ctx context.Context, teacherID int64) ([]*model.AccessRequest, error) {
	return s.requestRepo.GetPendingByTeacher(ctx, teacherID)
}

// RequestByID fetches one request for display.
func (s *AccessService) RequestByID(ctx context.Context, id int64) (*model.AccessRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	return req, nil
}
