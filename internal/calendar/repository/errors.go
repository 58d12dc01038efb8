package repository

import "errors"

var (
	// ErrNotFound is returned when the target no longer exists upstream.
	ErrNotFound = errors.New("not found upstream")
	// ErrForbidden is returned when the user may not perform the change.
	ErrForbidden = errors.New("forbidden upstream")
	// ErrRejected is returned when the backing store refuses the request
	// content, such as an unknown invitee.
	ErrRejected = errors.New("rejected upstream")
	// ErrReadOnly is returned by sources that cannot be written to.
	ErrReadOnly = errors.New("source is read-only")
)
