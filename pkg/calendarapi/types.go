package calendarapi

import (
	"encoding/json"
	"time"
)

// OwnerRef is the "user" field of a calendar. The backend sends either the
// bare user id or the populated user document.
type OwnerRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func (o *OwnerRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*o = OwnerRef{ID: id}
		return nil
	}
	type plain OwnerRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*o = OwnerRef(p)
	return nil
}

// Calendar is the backend calendar document.
type Calendar struct {
	ID        string    `json:"_id"`
	User      OwnerRef  `json:"user"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShareRequest is the body of POST /api/shares.
type ShareRequest struct {
	CalendarID string `json:"calendarId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

// ShareInvite is the grant created by POST /api/shares. It stays pending until
// the invitee accepts it.
type ShareInvite struct {
	ID     string `json:"_id"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// Share is an accepted share. Calendar is nil when the calendar was deleted.
type Share struct {
	ID       string    `json:"_id"`
	Role     string    `json:"role"`
	Calendar *Calendar `json:"calendar"`
}

type Attendee struct {
	User   string `json:"user,omitempty"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status,omitempty"`
}

type Meeting struct {
	Platform  string     `json:"platform,omitempty"`
	Link      string     `json:"link,omitempty"`
	Attendees []Attendee `json:"attendees,omitempty"`
}

type Reminder struct {
	Time int  `json:"time"`
	Sent bool `json:"sent,omitempty"`
}

// Event is the backend event document.
type Event struct {
	ID          string     `json:"_id"`
	Calendar    string     `json:"calendar"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	AllDay      bool       `json:"allDay"`
	Category    string     `json:"category,omitempty"`
	Meeting     *Meeting   `json:"meeting,omitempty"`
	Reminders   []Reminder `json:"reminders,omitempty"`
}

// EventRequest is the body of POST /api/calendars/{id}/events.
type EventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	AllDay      bool       `json:"allDay"`
	Category    string     `json:"category,omitempty"`
	Meeting     *Meeting   `json:"meeting,omitempty"`
	Reminders   []Reminder `json:"reminders,omitempty"`
}

// CalendarRequest is the body of POST /api/calendars.
type CalendarRequest struct {
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}
