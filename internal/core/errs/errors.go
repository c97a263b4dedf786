package errs

import "errors"

// Sentinel errors shared by services and adapters. Services wrap these with
// context via fmt.Errorf("...: %w", err); callers match with errors.Is.
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrDuplicate        = errors.New("already exists")
	ErrPersistence      = errors.New("persistence failure")
	ErrInvalidSignature = errors.New("invalid signature")
)
