package sync

import "shared-calendar/internal/model"

// Result is the outcome of a mutation as reported to the UI.
type Result struct {
	Success  bool            `json:"success"`
	Error    string          `json:"error,omitempty"`
	Event    *model.Event    `json:"event,omitempty"`
	Calendar *model.Calendar `json:"calendar,omitempty"`

	// Err keeps the cause for status mapping.
	Err error `json:"-"`
}

func failed(err error) Result {
	return Result{Error: err.Error(), Err: err}
}

// Notification types sent by the backing store.
const (
	NotificationEventCreated    = "event.created"
	NotificationEventUpdated    = "event.updated"
	NotificationEventDeleted    = "event.deleted"
	NotificationCalendarDeleted = "calendar.deleted"
)

// Notification is the body of a change notification.
type Notification struct {
	Type       string `json:"type"`
	UserID     string `json:"userId"`
	CalendarID string `json:"calendarId"`
	EventID    string `json:"eventId,omitempty"`
}

// SecurityConfig holds webhook security settings.
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute per source
}
