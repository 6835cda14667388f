// Package sentinel holds shared sentinel errors for infrastructure facts.
// Stores return these (optionally wrapped) so services can translate them
// into domain errors without importing store packages.
package sentinel

import "errors"

var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a uniqueness constraint was violated.
	ErrConflict = errors.New("conflict")

	// ErrUnavailable means the backing store could not be reached.
	ErrUnavailable = errors.New("unavailable")
)
