package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email already in use")
	ErrAlreadyMember     = errors.New("already an active project member")
	ErrActiveMemberships = errors.New("team member has active project memberships")
	ErrInvalidAllocation = errors.New("allocation must be between 0 and 100")
)
