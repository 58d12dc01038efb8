package calendar

import "errors"

var (
	ErrCalendarNotFound = errors.New("calendar not found")
	ErrGroupNotFound    = errors.New("group not found")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrEmptyGroupName   = errors.New("group name is required")
	ErrInvalidRole      = errors.New("role must be viewer or editor")
	ErrEmptyEmail       = errors.New("invitee email is required")
)
