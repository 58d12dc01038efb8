package usecase

import (
	"context"
	"strings"

	"shared-calendar/internal/calendar"
	"shared-calendar/internal/model"
	"shared-calendar/internal/session"
	calendarSync "shared-calendar/internal/sync"
)

// ListCalendars returns the owned and shared calendars with their visibility.
func (uc *implUseCase) ListCalendars(ctx context.Context, sc model.Scope) (calendar.ListCalendarsOutput, error) {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return calendar.ListCalendarsOutput{}, err
	}
	return calendar.ListCalendarsOutput{
		Owned:  views(s, s.Registry.Owned()),
		Shared: views(s, s.Registry.Shared()),
	}, nil
}

func views(s *session.Session, cals []model.Calendar) []calendar.CalendarView {
	out := make([]calendar.CalendarView, 0, len(cals))
	for _, c := range cals {
		out = append(out, calendar.CalendarView{Calendar: c, Visible: s.Visibility.Visible(c.ID)})
	}
	return out
}

// CreateCalendar creates an owned calendar and shows it.
func (uc *implUseCase) CreateCalendar(ctx context.Context, sc model.Scope, input model.CalendarInput) (model.Calendar, error) {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return model.Calendar{}, err
	}
	res := s.Sync.CreateCalendar(ctx, input)
	if !res.Success {
		return model.Calendar{}, res.Err
	}
	return *res.Calendar, nil
}

// DeleteCalendar deletes an owned calendar. Shared calendars belong to
// somebody else and cannot be deleted from here. A calendar unknown to the
// session is still sent to the backing store, which treats an absent
// calendar as already deleted.
func (uc *implUseCase) DeleteCalendar(ctx context.Context, sc model.Scope, calendarID string) error {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return err
	}
	if cal, ok := s.Registry.Lookup(calendarID); ok && cal.IsShared {
		return calendarSync.ErrReadOnlyCalendar
	}
	res := s.Sync.DeleteCalendar(ctx, calendarID)
	if !res.Success {
		return res.Err
	}
	return nil
}

// ShareCalendar invites a user to an owned calendar as viewer or editor.
func (uc *implUseCase) ShareCalendar(ctx context.Context, sc model.Scope, input model.ShareInput) (model.ShareInvite, error) {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" {
		return model.ShareInvite{}, calendar.ErrEmptyEmail
	}
	if input.Role == "" {
		input.Role = model.RoleViewer
	}
	if input.Role != model.RoleViewer && input.Role != model.RoleEditor {
		return model.ShareInvite{}, calendar.ErrInvalidRole
	}

	s, err := uc.session(ctx, sc)
	if err != nil {
		return model.ShareInvite{}, err
	}
	cal, ok := s.Registry.Lookup(input.CalendarID)
	if !ok {
		return model.ShareInvite{}, calendar.ErrCalendarNotFound
	}
	if cal.IsShared {
		return model.ShareInvite{}, calendarSync.ErrReadOnlyCalendar
	}

	invite, err := s.ShareCalendar(ctx, input)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ShareCalendar: calendar %s: %v", input.CalendarID, err)
		return model.ShareInvite{}, err
	}
	return invite, nil
}
