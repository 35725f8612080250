package repository

import (
	"context"
	"fmt"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = "id, telegram_id, first_name, last_name, email, role, registered, horario, created_at"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.TelegramID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Role,
		&user.Registered,
		&user.Horario,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user record.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (telegram_id, first_name, last_name, email, role, registered)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		user.TelegramID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Role,
		user.Registered,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByTelegramID fetches a user by Telegram ID. Returns nil when absent.
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, telegramID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by telegram id: %w", err)
	}

	return user, nil
}

// GetByID fetches a user by internal ID. Returns nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

// GetRegisteredTeachers lists verified teachers ordered by name.
func (r *UserRepository) GetRegisteredTeachers(ctx context.Context) ([]*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE role = $1 AND registered = true
		ORDER BY first_name, last_name
	`

	rows, err := r.pool.Query(ctx, query, model.RoleTeacher)
	if err != nil {
		return nil, fmt.Errorf("get registered teachers: %w", err)
	}
	defer rows.Close()

	var teachers []*model.User
	for rows.Next() {
		teacher, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan teacher: %w", err)
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teachers: %w", err)
	}

	return teachers, nil
}

// SetRole updates the user's role.
func (r *UserRepository) SetRole(ctx context.Context, userID int64, role model.UserRole) error {
	result, err := r.pool.Exec(ctx, `UPDATE users SET role = $1 WHERE id = $2`, role, userID)
	if err != nil {
		return fmt.Errorf("set role: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

// SetVerification stores the pending email and its verification token.
func (r *UserRepository) SetVerification(ctx context.Context, userID int64, email, token string) error {
	query := `UPDATE users SET email = $1, verify_token = $2, registered = false WHERE id = $3`

	result, err := r.pool.Exec(ctx, query, email, token, userID)
	if err != nil {
		return fmt.Errorf("set verification: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

// ConfirmVerification marks the user registered if the token matches.
// Returns false when the token did not match any pending verification.
func (r *UserRepository) ConfirmVerification(ctx context.Context, userID int64, token string) (bool, error) {
	query := `
		UPDATE users
		SET registered = true, verify_token = NULL
		WHERE id = $1 AND verify_token = $2
	`

	result, err := r.pool.Exec(ctx, query, userID, token)
	if err != nil {
		return false, fmt.Errorf("confirm verification: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// GetHorario reads the flat office-hours field. The second return value
// is false when the user does not exist.
func (r *UserRepository) GetHorario(ctx context.Context, userID int64) (string, bool, error) {
	var horario string
	err := r.pool.QueryRow(ctx, `SELECT horario FROM users WHERE id = $1`, userID).Scan(&horario)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get horario: %w", err)
	}

	return horario, true, nil
}

// SetHorario overwrites the flat office-hours field in a single UPDATE.
func (r *UserRepository) SetHorario(ctx context.Context, userID int64, horario string) error {
	result, err := r.pool.Exec(ctx, `UPDATE users SET horario = $1 WHERE id = $2`, horario, userID)
	if err != nil {
		return fmt.Errorf("set horario: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}
