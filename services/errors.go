package services

import "errors"

var (
	ErrCombatNotFound = errors.New("combat not found")
	ErrGymNotFound    = errors.New("gym not found")
	ErrUserNotFound   = errors.New("user not found")

	// ErrNotOpponent is returned when someone other than the invited boxer
	// tries to respond to an invitation
	ErrNotOpponent = errors.New("only the invited user may respond")

	ErrInvalidStatus      = errors.New("invalid status")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
