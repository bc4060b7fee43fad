package repo

import "errors"

var (
	// ErrNotFound covers both a missing row and an ownership mismatch on
	// owned updates/deletes, so callers cannot probe for resources they do
	// not own.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a duplicate unique key (user email).
	ErrConflict = errors.New("conflict")
)
