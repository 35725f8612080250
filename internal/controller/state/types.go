package state

import "time"

// UserState is the user's position inside a multi-step dialog.
type UserState string

const (
	StateNone UserState = "" // no active dialog

	// Registration states
	StateRegisterEmail UserState = "register_email"
	StateRegisterToken UserState = "register_token"

	// Office-hours editing states
	StateHorarioDay  UserState = "horario_day"
	StateHorarioSlot UserState = "horario_slot"

	// Tutoring request states
	StateAccessMessage UserState = "access_message"
)

// Session holds one user's dialog position and scratch data. It is the
// per-conversation context that dialog steps read and write; it never
// outlives the dialog.
type Session struct {
	State     UserState
	Data      map[string]interface{}
	UpdatedAt time.Time
}
