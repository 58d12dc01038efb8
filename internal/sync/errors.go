package sync

import "errors"

var (
	ErrCalendarNotFound = errors.New("calendar not found")
	ErrReadOnlyCalendar = errors.New("calendar is read-only")
	ErrEmptyTitle       = errors.New("event title is required")
	ErrInvalidRange     = errors.New("event ends before it starts")
	ErrUnknownType      = errors.New("unknown notification type")
	errMissingTarget    = errors.New("userId and calendarId are required")
)
