package service

import "errors"

// Errors the bot layer maps onto user-facing messages.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrNotATeacher        = errors.New("user is not a teacher")
	ErrNotRegistered      = errors.New("user has not completed registration")
	ErrInvalidEmail       = errors.New("email is not an institutional address")
	ErrOutsideOfficeHours = errors.New("teacher is outside office hours")
	ErrDuplicateRequest   = errors.New("a pending request already exists")
	ErrRequestNotFound    = errors.New("access request not found")
	ErrNotRequestOwner    = errors.New("request belongs to another teacher")
	ErrRequestResolved    = errors.New("request is no longer pending")
)
