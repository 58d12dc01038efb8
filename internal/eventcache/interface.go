package eventcache

import (
	"context"

	"shared-calendar/internal/model"
)

// Fetcher loads the events of one calendar from the backing store.
type Fetcher interface {
	ListEvents(ctx context.Context, calendarID string) ([]model.Event, error)
}

// CalendarSource is the calendar registry as seen by the cache.
type CalendarSource interface {
	Calendars() []model.Calendar
	Lookup(id string) (model.Calendar, bool)
}
