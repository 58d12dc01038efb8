package http

import (
	"time"

	"shared-calendar/internal/calendar"
	"shared-calendar/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  calendar.UseCase
	loc *time.Location
}

// New creates the HTTP handler of the calendar domain. loc is the zone
// date-only query parameters are read in when the request names none.
func New(l log.Logger, uc calendar.UseCase, loc *time.Location) *handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
	}
}
