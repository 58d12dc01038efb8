package sync

import (
	"context"

	"github.com/gin-gonic/gin"

	"shared-calendar/internal/model"
	"shared-calendar/internal/prefs"
)

// Backend performs mutations on the backing store for one user.
type Backend interface {
	CreateEvent(ctx context.Context, calendarID string, input model.EventInput) (model.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	DeleteCalendar(ctx context.Context, calendarID string) error
}

// Registry is the calendar registry of the user.
type Registry interface {
	Lookup(id string) (model.Calendar, bool)
	CreateCalendar(ctx context.Context, input model.CalendarInput) (model.Calendar, error)
	Remove(ctx context.Context, id string) bool
}

// Cache is the part of the event cache a synchronizer mutates.
type Cache interface {
	AppendEvent(ev model.Event)
	RemoveEvent(calendarID, eventID string) bool
	DropCalendar(calendarID string)
	LoadOne(ctx context.Context, calendarID string, force bool) []model.Event
}

// PrefsStore persists the preferences a mutation can change.
type PrefsStore interface {
	SaveVisibility(userID string, ids []string) error
	SaveGroups(userID string, groups []prefs.Group) error
}

// Sessions resolves the synchronizer of a live user session.
type Sessions interface {
	Synchronizer(userID string) (*Synchronizer, bool)
}

// Handler defines the interface for the change notification webhook.
type Handler interface {
	// HandleCalendarWebhook processes change notifications from the backing store.
	HandleCalendarWebhook(c *gin.Context)
}
