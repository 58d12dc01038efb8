package rest

import (
	"context"
	"fmt"
	"net/http"

	"shared-calendar/internal/calendar/repository"
	"shared-calendar/internal/model"
	"shared-calendar/pkg/calendarapi"
	pkgLog "shared-calendar/pkg/log"
)

type implRepository struct {
	client *calendarapi.Client
	l      pkgLog.Logger
}

// New creates a repository backed by the calendar REST API.
func New(client *calendarapi.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListCalendars(ctx context.Context, sc model.Scope) ([]model.Calendar, error) {
	cals, err := r.client.ListCalendars(ctx, sc.Token)
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]model.Calendar, 0, len(cals))
	for _, c := range cals {
		out = append(out, toCalendar(c))
	}
	return out, nil
}

func (r *implRepository) ListShares(ctx context.Context, sc model.Scope) ([]model.Share, error) {
	shares, err := r.client.ListShares(ctx, sc.Token)
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]model.Share, 0, len(shares))
	for _, s := range shares {
		share := model.Share{ID: s.ID, Role: model.Role(s.Role)}
		if s.Calendar != nil {
			cal := toCalendar(*s.Calendar)
			share.Calendar = &cal
		}
		out = append(out, share)
	}
	return out, nil
}

func (r *implRepository) ListEvents(ctx context.Context, sc model.Scope, calendarID string) ([]model.Event, error) {
	events, err := r.client.ListEvents(ctx, sc.Token, calendarID)
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		ev := toEvent(e)
		if ev.CalendarID == "" {
			ev.CalendarID = calendarID
		}
		out = append(out, ev)
	}
	return out, nil
}

func (r *implRepository) CreateEvent(ctx context.Context, sc model.Scope, opt repository.CreateEventOptions) (model.Event, error) {
	created, err := r.client.CreateEvent(ctx, sc.Token, opt.CalendarID, toEventRequest(opt.Input))
	if err != nil {
		r.l.Errorf(ctx, "rest repository: failed to create event in %s: %v", opt.CalendarID, err)
		return model.Event{}, mapError(err)
	}
	ev := toEvent(*created)
	if ev.CalendarID == "" {
		ev.CalendarID = opt.CalendarID
	}
	return ev, nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, sc model.Scope, eventID string) error {
	if err := r.client.DeleteEvent(ctx, sc.Token, eventID); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *implRepository) CreateCalendar(ctx context.Context, sc model.Scope, input model.CalendarInput) (model.Calendar, error) {
	created, err := r.client.CreateCalendar(ctx, sc.Token, calendarapi.CalendarRequest{
		Name:      input.Name,
		Color:     input.Color,
		IsDefault: input.IsDefault,
	})
	if err != nil {
		r.l.Errorf(ctx, "rest repository: failed to create calendar: %v", err)
		return model.Calendar{}, mapError(err)
	}
	return toCalendar(*created), nil
}

func (r *implRepository) DeleteCalendar(ctx context.Context, sc model.Scope, calendarID string) error {
	if err := r.client.DeleteCalendar(ctx, sc.Token, calendarID); err != nil {
		return mapError(err)
	}
	return nil
}

// mapError wraps the repository sentinel matching the HTTP status and keeps
// the backend message.
func (r *implRepository) ShareCalendar(ctx context.Context, sc model.Scope, input model.ShareInput) (model.ShareInvite, error) {
	invite, err := r.client.ShareCalendar(ctx, sc.Token, calendarapi.ShareRequest{
		CalendarID: input.CalendarID,
		Email:      input.Email,
		Role:       string(input.Role),
	})
	if err != nil {
		return model.ShareInvite{}, mapError(err)
	}
	out := model.ShareInvite{
		ID:         invite.ID,
		CalendarID: input.CalendarID,
		Email:      input.Email,
		Role:       model.Role(invite.Role),
		Status:     invite.Status,
	}
	if out.Role == "" {
		out.Role = input.Role
	}
	if out.Status == "" {
		out.Status = "pending"
	}
	return out, nil
}

func mapError(err error) error {
	switch calendarapi.StatusOf(err) {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", repository.ErrNotFound, err)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", repository.ErrForbidden, err)
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w", repository.ErrRejected, err)
	default:
		return err
	}
}
