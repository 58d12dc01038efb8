package sync

import (
	"context"
	"errors"
	"strings"

	"shared-calendar/internal/calendar/repository"
	"shared-calendar/internal/eventcache"
	"shared-calendar/internal/model"
)

// CreateEvent creates an event and appends it to the cache without reloading.
func (s *Synchronizer) CreateEvent(ctx context.Context, calendarID string, input model.EventInput) Result {
	cal, ok := s.registry.Lookup(calendarID)
	if !ok {
		return failed(ErrCalendarNotFound)
	}
	if !cal.CanEdit() {
		return failed(ErrReadOnlyCalendar)
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return failed(ErrEmptyTitle)
	}
	if input.End.Before(input.Start) {
		return failed(ErrInvalidRange)
	}
	if input.Meeting != nil {
		m := *input.Meeting
		m.Attendees = model.DedupAttendees(m.Attendees)
		input.Meeting = &m
	}

	ev, err := s.backend.CreateEvent(ctx, calendarID, input)
	if err != nil {
		s.l.Warnf(ctx, "sync.CreateEvent: calendar %s: %v", calendarID, err)
		return failed(err)
	}
	ev.CalendarID = calendarID
	ev = eventcache.Enrich([]model.Event{ev}, cal)[0]

	s.cache.AppendEvent(ev)
	return Result{Success: true, Event: &ev}
}

// DeleteEvent deletes an event upstream and then from the cache. An event
// that is already gone upstream counts as deleted.
func (s *Synchronizer) DeleteEvent(ctx context.Context, calendarID, eventID string) Result {
	if err := s.backend.DeleteEvent(ctx, eventID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.l.Warnf(ctx, "sync.DeleteEvent: event %s: %v", eventID, err)
		return failed(err)
	}
	s.cache.RemoveEvent(calendarID, eventID)
	return Result{Success: true}
}

// DeleteCalendar deletes a calendar upstream and forgets it locally.
func (s *Synchronizer) DeleteCalendar(ctx context.Context, calendarID string) Result {
	if err := s.backend.DeleteCalendar(ctx, calendarID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.l.Warnf(ctx, "sync.DeleteCalendar: calendar %s: %v", calendarID, err)
		return failed(err)
	}
	s.ForgetCalendar(ctx, calendarID)
	return Result{Success: true}
}

// ForgetCalendar removes every local trace of a calendar. The registry goes
// first so a batch committing concurrently skips it.
func (s *Synchronizer) ForgetCalendar(ctx context.Context, calendarID string) {
	s.registry.Remove(ctx, calendarID)
	s.cache.DropCalendar(calendarID)

	s.visibility.Remove(calendarID)
	s.saveVisibility(ctx)

	if s.groups.ForgetCalendar(calendarID) {
		if err := s.prefs.SaveGroups(s.userID, s.groups.List()); err != nil {
			s.l.Warnf(ctx, "sync.ForgetCalendar: save groups: %v", err)
		}
	}
}

// CreateCalendar creates an owned calendar and makes it visible.
func (s *Synchronizer) CreateCalendar(ctx context.Context, input model.CalendarInput) Result {
	cal, err := s.registry.CreateCalendar(ctx, input)
	if err != nil {
		s.l.Warnf(ctx, "sync.CreateCalendar: %v", err)
		return failed(err)
	}
	s.visibility.Add(cal.ID)
	s.saveVisibility(ctx)
	return Result{Success: true, Calendar: &cal}
}

// Refresh reloads one calendar from the backing store.
func (s *Synchronizer) Refresh(ctx context.Context, calendarID string) []model.Event {
	return s.cache.LoadOne(ctx, calendarID, true)
}

// Apply handles a change notification for this user.
func (s *Synchronizer) Apply(ctx context.Context, n Notification) error {
	switch n.Type {
	case NotificationEventCreated, NotificationEventUpdated:
		s.Refresh(ctx, n.CalendarID)
	case NotificationEventDeleted:
		if n.EventID == "" {
			s.Refresh(ctx, n.CalendarID)
			return nil
		}
		s.cache.RemoveEvent(n.CalendarID, n.EventID)
	case NotificationCalendarDeleted:
		s.ForgetCalendar(ctx, n.CalendarID)
	default:
		return ErrUnknownType
	}
	return nil
}

func (s *Synchronizer) saveVisibility(ctx context.Context) {
	if err := s.prefs.SaveVisibility(s.userID, s.visibility.IDs()); err != nil {
		s.l.Warnf(ctx, "sync.saveVisibility: %v", err)
	}
}
