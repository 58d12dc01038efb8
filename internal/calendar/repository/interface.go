package repository

import (
	"context"

	"shared-calendar/internal/model"
)

// Repository is the backing store of calendars and events. Every call acts on
// behalf of the user in sc.
type Repository interface {
	ListCalendars(ctx context.Context, sc model.Scope) ([]model.Calendar, error)
	ListShares(ctx context.Context, sc model.Scope) ([]model.Share, error)
	ListEvents(ctx context.Context, sc model.Scope, calendarID string) ([]model.Event, error)
	CreateEvent(ctx context.Context, sc model.Scope, opt CreateEventOptions) (model.Event, error)
	DeleteEvent(ctx context.Context, sc model.Scope, eventID string) error
	CreateCalendar(ctx context.Context, sc model.Scope, input model.CalendarInput) (model.Calendar, error)
	DeleteCalendar(ctx context.Context, sc model.Scope, calendarID string) error
	ShareCalendar(ctx context.Context, sc model.Scope, input model.ShareInput) (model.ShareInvite, error)
}
