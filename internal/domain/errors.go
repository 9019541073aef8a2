package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrMessageNotFound    = errors.New("message not found")
	ErrCannotConnectSelf  = errors.New("cannot connect to yourself")
	ErrInvalidTransition  = errors.New("invalid swap status transition")
	ErrNotCompleted       = errors.New("swap is not completed")
	ErrAlreadyRated       = errors.New("swap already rated")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidResponse    = errors.New("response must be accepted or declined")
	ErrNoScheduledSession = errors.New("no session scheduled")
)
