package model

import (
	"strings"
	"time"
)

// Category tags an event for the category filter.
type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryBusiness Category = "business"
	CategoryAcademic Category = "academic"
	CategoryHealth   Category = "health"
	CategorySocial   Category = "social"
	CategoryTravel   Category = "travel"
	CategoryFinance  Category = "finance"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryPersonal,
	CategoryBusiness,
	CategoryAcademic,
	CategoryHealth,
	CategorySocial,
	CategoryTravel,
	CategoryFinance,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// MeetingPlatform is the conferencing product a meeting runs on.
type MeetingPlatform string

const (
	PlatformZoom  MeetingPlatform = "zoom"
	PlatformTeams MeetingPlatform = "teams"
	PlatformMeet  MeetingPlatform = "meet"
	PlatformOther MeetingPlatform = "other"
)

// AttendeeStatus is an attendee's answer to an invitation.
type AttendeeStatus string

const (
	AttendeePending   AttendeeStatus = "pending"
	AttendeeAccepted  AttendeeStatus = "accepted"
	AttendeeDeclined  AttendeeStatus = "declined"
	AttendeeTentative AttendeeStatus = "tentative"
)

// Attendee is one invitee of a meeting. Email is the identity.
type Attendee struct {
	UserID string         `json:"user,omitempty"`
	Email  string         `json:"email"`
	Name   string         `json:"name,omitempty"`
	Status AttendeeStatus `json:"status"`
}

// Meeting holds the optional meeting metadata of an event.
type Meeting struct {
	Platform  MeetingPlatform `json:"platform,omitempty"`
	Link      string          `json:"link,omitempty"`
	Attendees []Attendee      `json:"attendees,omitempty"`
}

// Reminder fires Minutes before the event start. Sent is set by the reminder scanner.
type Reminder struct {
	Minutes int  `json:"time"`
	Sent    bool `json:"sent"`
}

// Event is a calendar entry enriched with the owning calendar's display data.
type Event struct {
	ID          string     `json:"id"`
	CalendarID  string     `json:"calendarId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	AllDay      bool       `json:"allDay"`
	Category    *Category  `json:"category,omitempty"`
	Meeting     *Meeting   `json:"meeting,omitempty"`
	Reminders   []Reminder `json:"reminders,omitempty"`

	// Denormalized from the owning calendar at load time.
	Color        string `json:"color,omitempty"`
	CalendarName string `json:"calendarName,omitempty"`
	IsShared     bool   `json:"isShared"`
	OwnerName    string `json:"ownerName,omitempty"`
}

// Duration returns End-Start, which is negative for malformed events.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// DedupAttendees drops attendees whose lower-cased email was already seen.
func DedupAttendees(in []Attendee) []Attendee {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]Attendee, 0, len(in))
	for _, a := range in {
		key := strings.ToLower(strings.TrimSpace(a.Email))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		a.Email = key
		if a.Status == "" {
			a.Status = AttendeePending
		}
		out = append(out, a)
	}
	return out
}
