package service

import "github.com/alexanderramin/tasktory/internal/domain"

// Sentinel errors returned by the services. Match with errors.Is.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrDuplicateEmail    = domain.ErrDuplicateEmail
	ErrAlreadyMember     = domain.ErrAlreadyMember
	ErrActiveMemberships = domain.ErrActiveMemberships
	ErrInvalidAllocation = domain.ErrInvalidAllocation
)
