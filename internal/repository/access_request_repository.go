package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/model"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AccessRequestRepository struct {
	*base.Repository
}

func NewAccessRequestRepository(pool *pgxpool.Pool) *AccessRequestRepository {
	return &AccessRequestRepository{Repository: base.NewRepository(pool)}
}

// Create stores a new tutoring request.
func (r *AccessRequestRepository) Create(ctx context.Context, req *model.AccessRequest) error {
	query := `
		INSERT INTO access_requests (student_id, teacher_id, status, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		req.StudentID,
		req.TeacherID,
		req.Status,
		req.Message,
	).Scan(&req.ID, &req.CreatedAt)

	if err != nil {
		return fmt.Errorf("create access request: %w", err)
	}

	return nil
}

// GetByID fetches a request by ID. Returns nil when absent.
func (r *AccessRequestRepository) GetByID(ctx context.Context, id int64) (*model.AccessRequest, error) {
	query := `
		SELECT id, student_id, teacher_id, status, message, teacher_response, created_at, updated_at
		FROM access_requests
		WHERE id = $1
	`

	var req model.AccessRequest
	err := r.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.StudentID,
		&req.TeacherID,
		&req.Status,
		&req.Message,
		&req.TeacherResponse,
		&req.CreatedAt,
		&req.UpdatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get access request: %w", err)
	}

	return &req, nil
}

// GetPendingByTeacher lists a teacher's pending requests, oldest first.
func (r *AccessRequestRepository) GetPendingByTeacher(ctx context.Context, teacherID int64) ([]*model.AccessRequest, error) {
	query := `
		SELECT id, student_id, teacher_id, status, message, teacher_response, created_at, updated_at
		FROM access_requests
		WHERE teacher_id = $1 AND status = $2
		ORDER BY created_at ASC
	`

	rows, err := r.Query(ctx, query, teacherID, model.RequestStatusPending)
	if err != nil {
		return nil, fmt.Errorf("get pending requests: %w", err)
	}
	defer rows.Close()

	var requests []*model.AccessRequest
	for rows.Next() {
		var req model.AccessRequest
		err := rows.Scan(
			&req.ID,
			&req.StudentID,
			&req.TeacherID,
			&req.Status,
			&req.Message,
			&req.TeacherResponse,
			&req.CreatedAt,
			&req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan access request: %w", err)
		}
		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requests: %w", err)
	}

	return requests, nil
}

// HasPendingRequest checks whether the student already has an open
// request with this teacher.
func (r *AccessRequestRepository) HasPendingRequest(ctx context.Context, studentID, teacherID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM access_requests
			WHERE student_id = $1 AND teacher_id = $2 AND status = $3
		)
	`

	var exists bool
	err := r.QueryRow(ctx, query, studentID, teacherID, model.RequestStatusPending).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check pending request: %w", err)
	}

	return exists, nil
}

// UpdateStatus resolves a request with the teacher's decision.
func (r *AccessRequestRepository) UpdateStatus(ctx context.Context, id int64, status, response string) error {
	query := `
		UPDATE access_requests
		SET status = $1, teacher_response = $2, updated_at = $3
		WHERE id = $4
	`

	affected, err := r.ExecAffected(ctx, query, status, response, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("access request not found")
	}

	return nil
}
