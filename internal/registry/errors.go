package registry

import "errors"

var (
	ErrCalendarNotFound = errors.New("calendar not found")
	ErrEmptyName        = errors.New("calendar name is required")
)
