package calendar

import (
	"context"

	"shared-calendar/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Calendars
	ListCalendars(ctx context.Context, sc model.Scope) (ListCalendarsOutput, error)
	CreateCalendar(ctx context.Context, sc model.Scope, input model.CalendarInput) (model.Calendar, error)
	DeleteCalendar(ctx context.Context, sc model.Scope, calendarID string) error
	ShareCalendar(ctx context.Context, sc model.Scope, input model.ShareInput) (model.ShareInvite, error)

	// Events
	ListEvents(ctx context.Context, sc model.Scope, input ListEventsInput) ([]model.Event, error)
	CalendarEvents(ctx context.Context, sc model.Scope, input CalendarEventsInput) ([]model.Event, error)
	CreateEvent(ctx context.Context, sc model.Scope, input CreateEventInput) (model.Event, error)
	DeleteEvent(ctx context.Context, sc model.Scope, input DeleteEventInput) error

	// Layout
	DayLayout(ctx context.Context, sc model.Scope, input DayLayoutInput) (DayLayoutOutput, error)
	WeekLayout(ctx context.Context, sc model.Scope, input WeekLayoutInput) (WeekLayoutOutput, error)

	// Filters
	SetVisibility(ctx context.Context, sc model.Scope, input SetVisibilityInput) (bool, error)
	ToggleCategory(ctx context.Context, sc model.Scope, category model.Category) (CategoriesOutput, error)
	SelectAllCategories(ctx context.Context, sc model.Scope) (CategoriesOutput, error)
	ClearCategories(ctx context.Context, sc model.Scope) (CategoriesOutput, error)

	// Groups
	ListGroups(ctx context.Context, sc model.Scope) ([]GroupView, error)
	CreateGroup(ctx context.Context, sc model.Scope, input GroupInput) (GroupView, error)
	UpdateGroup(ctx context.Context, sc model.Scope, input GroupInput) (GroupView, error)
	DeleteGroup(ctx context.Context, sc model.Scope, groupID string) error
	ToggleGroup(ctx context.Context, sc model.Scope, groupID string) (GroupView, error)

	// Search
	Search(ctx context.Context, sc model.Scope, input SearchInput) (SearchOutput, error)

	// Session
	ExportICS(ctx context.Context, sc model.Scope) (ExportOutput, error)
	Logout(ctx context.Context, sc model.Scope) bool
}
