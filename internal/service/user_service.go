package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/model"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Institutional addresses only; both student and staff domains count.
var ugrEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@(correo\.)?ugr\.es$`)

type UserService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// RegisterUser returns the existing user for this Telegram account or
// creates a fresh unverified student record.
func (s *UserService) RegisterUser(ctx context.Context, telegramID int64, firstName, lastName string) (*model.User, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user != nil {
		return user, nil
	}

	user = &model.User{
		TelegramID: telegramID,
		FirstName:  firstName,
		LastName:   lastName,
		Role:       model.RoleStudent,
		Registered: false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("New user registered",
		zap.Int64("user_id", user.ID),
		zap.Int64("telegram_id", telegramID))

	return user, nil
}

// GetByTelegramID resolves the Telegram account to our user record.
func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetByID fetches a user by internal ID.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// BeginEmailVerification stores the claimed institutional email together
// with a one-time token and returns the token. Delivering the token to
// the address is the mail collaborator's job, not ours.
func (s *UserService) BeginEmailVerification(ctx context.Context, userID int64, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !ugrEmailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}

	token := uuid.NewString()
	if err := s.userRepo.SetVerification(ctx, userID, email, token); err != nil {
		return "", fmt.Errorf("begin verification: %w", err)
	}

	s.logger.Info("Email verification started",
		zap.Int64("user_id", userID),
		zap.String("email", email))

	return token, nil
}

// ConfirmEmail completes registration when the token matches.
func (s *UserService) ConfirmEmail(ctx context.Context, userID int64, token string) (bool, error) {
	ok, err := s.userRepo.ConfirmVerification(ctx, userID, strings.TrimSpace(token))
	if err != nil {
		return false, fmt.Errorf("confirm email: %w", err)
	}

	if ok {
		s.logger.Info("Email verified", zap.Int64("user_id", userID))
	}

	return ok, nil
}

// SetRole switches the user between student and teacher.
func (s *UserService) SetRole(ctx context.Context, userID int64, role model.UserRole) error {
	if role != model.RoleStudent && role != model.RoleTeacher {
		return fmt.Errorf("unknown role %q", role)
	}

	if err := s.userRepo.SetRole(ctx, userID, role); err != nil {
		return fmt.Errorf("set role: %w", err)
	}

	s.logger.Info("User role updated",
		zap.Int64("user_id", userID),
		zap.String("role", string(role)))

	return nil
}

// GetRegisteredTeachers lists the teachers students can request.
func (s *UserService) GetRegisteredTeachers(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.GetRegisteredTeachers(ctx)
}
