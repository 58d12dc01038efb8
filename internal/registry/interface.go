package registry

import (
	"context"

	"shared-calendar/internal/model"
)

// Backend is the part of the backing store the registry needs.
type Backend interface {
	ListCalendars(ctx context.Context) ([]model.Calendar, error)
	ListShares(ctx context.Context) ([]model.Share, error)
	CreateCalendar(ctx context.Context, input model.CalendarInput) (model.Calendar, error)
}

// ColorStore persists the calendar id → color map of a user.
type ColorStore interface {
	LoadColors(userID string) (map[string]string, error)
	SaveColors(userID string, colors map[string]string) error
}
