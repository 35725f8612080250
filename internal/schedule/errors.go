package schedule

import "errors"

// Validation errors surfaced to the user by the bot layer.
var (
	ErrInvalidFormat   = errors.New("invalid slot format, expected HH:MM-HH:MM")
	ErrInvalidRange    = errors.New("slot time out of range")
	ErrInvalidOrder    = errors.New("slot start must be before end")
	ErrDuplicateSlot   = errors.New("slot already exists for this day")
	ErrOverlapConflict = errors.New("slot overlaps an existing one")
)
