package calendar

import (
	"time"

	"shared-calendar/internal/layout"
	"shared-calendar/internal/model"
	"shared-calendar/internal/prefs"
)

// --- Calendars ---

// CalendarView is a calendar together with its visibility for the user.
type CalendarView struct {
	Calendar model.Calendar
	Visible  bool
}

type ListCalendarsOutput struct {
	Owned  []CalendarView
	Shared []CalendarView
}

// --- Events ---

type ListEventsInput struct {
	Force bool
}

type CalendarEventsInput struct {
	CalendarID string
	Force      bool
}

type CreateEventInput struct {
	CalendarID string
	Event      model.EventInput
}

type DeleteEventInput struct {
	CalendarID string
	EventID    string
}

// --- Layout ---

type DayLayoutInput struct {
	Date      time.Time
	Location  *time.Location
	LaneWidth float64
}

// PlacedEvent is a timed event with its column and rendered box.
type PlacedEvent struct {
	Event    model.Event
	Position layout.Position
	Box      layout.Box
}

type DayLayoutOutput struct {
	Day    time.Time
	AllDay []model.Event
	Timed  []PlacedEvent
}

type WeekLayoutInput struct {
	Start    time.Time
	Location *time.Location
}

type WeekLayoutOutput struct {
	Start time.Time
	Days  []DayLayoutOutput
}

// --- Filters ---

type SetVisibilityInput struct {
	CalendarID string
	// Visible forces the state. A nil value toggles it.
	Visible *bool
}

type CategoriesOutput struct {
	Selected []string
}

type GroupInput struct {
	ID          string
	Name        string
	Color       string
	CalendarIDs []string
}

// GroupView is a calendar group with its aggregate visibility.
type GroupView struct {
	Group            prefs.Group
	Visible          bool
	PartiallyVisible bool
}

// --- Search ---

type SearchInput struct {
	Query string
}

// SearchOutput holds the events and calendars whose text matches a query.
type SearchOutput struct {
	Events    []model.Event
	Calendars []model.Calendar
}

// --- Export ---

type ExportOutput struct {
	Filename string
	Content  []byte
}
