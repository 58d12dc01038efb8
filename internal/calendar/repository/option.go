package repository

import "shared-calendar/internal/model"

// CreateEventOptions holds the parameters for creating an event.
type CreateEventOptions struct {
	CalendarID string
	Input      model.EventInput
}
