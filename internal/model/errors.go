package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint. For users this is the authoritative duplicate-email
	// signal: the pre-insert existence check is only a fast path.
	ErrDuplicate = errors.New("duplicate")
)
