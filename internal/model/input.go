package model

import "time"

// CalendarInput is the payload of a calendar creation.
type CalendarInput struct {
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// EventInput is the payload of an event creation.
type EventInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	AllDay      bool       `json:"allDay"`
	Category    *Category  `json:"category,omitempty"`
	Meeting     *Meeting   `json:"meeting,omitempty"`
	Reminders   []Reminder `json:"reminders,omitempty"`
}
