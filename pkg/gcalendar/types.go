package gcalendar

import "time"

// Calendar is an entry of the account's calendar list.
type Calendar struct {
	ID              string
	Summary         string
	BackgroundColor string
	Primary         bool
	AccessRole      string // owner, writer, reader or freeBusyReader
}

// Attendee is a simplified event attendee.
type Attendee struct {
	Email          string
	Name           string
	ResponseStatus string // needsAction, declined, tentative or accepted
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID              string
	Summary         string
	Description     string
	HtmlLink        string
	StartTime       time.Time
	EndTime         time.Time
	AllDay          bool
	Location        string
	MeetingLink     string
	Attendees       []Attendee
	ReminderMinutes []int
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
	Location   *time.Location // zone of all-day dates, UTC when nil
}
