package usecase

import (
	"errors"

	"logistaff/internal/domain/match"
)

var (
	// ErrNotFound means the referenced match, candidate or request does not
	// exist. Not retryable; the client holds stale state.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is the domain lifecycle violation, re-exported so
	// callers depend on one error surface. Not retryable.
	ErrInvalidTransition = match.ErrInvalidTransition

	// ErrPersistence wraps a storage failure. Retryable with backoff.
	ErrPersistence = errors.New("persistence error")

	ErrInvalidInput = errors.New("invalid input")
)
