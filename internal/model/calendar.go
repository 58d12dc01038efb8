package model

import "time"

// Role is the access level granted on a shared calendar.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// DefaultCalendarName and DefaultCalendarColor describe the synthesized default calendar.
const (
	DefaultCalendarName  = "Personal"
	DefaultCalendarColor = "#3b82f6"
)

// Calendar is an owned or shared calendar as seen by one user.
type Calendar struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId,omitempty"`
	OwnerName string    `json:"ownerName,omitempty"`
	IsDefault bool      `json:"isDefault"`
	Color     string    `json:"color"`
	Role      Role      `json:"role"`
	IsShared  bool      `json:"isShared"`
	CreatedAt time.Time `json:"createdAt"`
}

// CanEdit reports whether events may be created on the calendar.
func (c Calendar) CanEdit() bool {
	return !c.IsShared || c.Role == RoleEditor
}

// ShareInput invites a user to a calendar with a role.
type ShareInput struct {
	CalendarID string
	Email      string
	Role       Role
}

// ShareInvite is a grant created on an owned calendar. Status is "pending"
// until the invitee accepts.
type ShareInvite struct {
	ID         string `json:"id"`
	CalendarID string `json:"calendarId"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Status     string `json:"status"`
}

// Share is an accepted grant on somebody else's calendar. Calendar is nil when
// the underlying calendar was deleted.
type Share struct {
	ID       string    `json:"id"`
	Role     Role      `json:"role"`
	Calendar *Calendar `json:"calendar"`
}
