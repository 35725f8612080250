package model

import "time"

type UserRole string

const (
	RoleStudent UserRole = "estudiante"
	RoleTeacher UserRole = "profesor"
)

type User struct {
	ID         int64     `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"` // institutional address, unique once verified
	Role       UserRole  `json:"role"`
	Registered bool      `json:"registered"` // email ownership confirmed via token
	Horario    string    `json:"horario"`    // flat office-hours text, see internal/schedule
	CreatedAt  time.Time `json:"created_at"`
}

// IsTeacher checks if the user holds the teacher role.
func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
