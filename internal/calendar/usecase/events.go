package usecase

import (
	"context"

	"shared-calendar/internal/calendar"
	"shared-calendar/internal/filter"
	"shared-calendar/internal/model"
	"shared-calendar/internal/session"
	calendarSync "shared-calendar/internal/sync"
)

// ListEvents returns the merged stream after visibility and category filtering.
func (uc *implUseCase) ListEvents(ctx context.Context, sc model.Scope, input calendar.ListEventsInput) ([]model.Event, error) {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return nil, err
	}
	return visibleEvents(ctx, s, input.Force), nil
}

func visibleEvents(ctx context.Context, s *session.Session, force bool) []model.Event {
	return filter.Apply(s.Cache.LoadAll(ctx, force), s.Visibility, s.Categories)
}

// CalendarEvents returns the unfiltered events of one calendar.
func (uc *implUseCase) CalendarEvents(ctx context.Context, sc model.Scope, input calendar.CalendarEventsInput) ([]model.Event, error) {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return nil, err
	}
	if _, ok := s.Registry.Lookup(input.CalendarID); !ok {
		return nil, calendar.ErrCalendarNotFound
	}
	return s.Cache.LoadOne(ctx, input.CalendarID, input.Force), nil
}

// CreateEvent creates an event and returns it enriched with its calendar's display data.
func (uc *implUseCase) CreateEvent(ctx context.Context, sc model.Scope, input calendar.CreateEventInput) (model.Event, error) {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return model.Event{}, err
	}
	res := s.Sync.CreateEvent(ctx, input.CalendarID, input.Event)
	if !res.Success {
		return model.Event{}, res.Err
	}
	return *res.Event, nil
}

// DeleteEvent deletes an event of a calendar the user may edit.
func (uc *implUseCase) DeleteEvent(ctx context.Context, sc model.Scope, input calendar.DeleteEventInput) error {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return err
	}
	cal, ok := s.Registry.Lookup(input.CalendarID)
	if !ok {
		return calendar.ErrCalendarNotFound
	}
	if !cal.CanEdit() {
		return calendarSync.ErrReadOnlyCalendar
	}
	res := s.Sync.DeleteEvent(ctx, input.CalendarID, input.EventID)
	if !res.Success {
		return res.Err
	}
	return nil
}
