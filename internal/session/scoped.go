package session

import (
	"context"
	"sync/atomic"

	"shared-calendar/internal/calendar/repository"
	"shared-calendar/internal/model"
)

// scopedRepo binds a repository to the scope of one user. The token is
// refreshed on every request so long-lived sessions use the newest one.
type scopedRepo struct {
	repo  repository.Repository
	scope atomic.Pointer[model.Scope]
}

func newScopedRepo(repo repository.Repository, sc model.Scope) *scopedRepo {
	r := &scopedRepo{repo: repo}
	r.scope.Store(&sc)
	return r
}

func (r *scopedRepo) setScope(sc model.Scope) {
	r.scope.Store(&sc)
}

func (r *scopedRepo) sc() model.Scope {
	return *r.scope.Load()
}

func (r *scopedRepo) ListCalendars(ctx context.Context) ([]model.Calendar, error) {
	return r.repo.ListCalendars(ctx, r.sc())
}

func (r *scopedRepo) ListShares(ctx context.Context) ([]model.Share, error) {
	return r.repo.ListShares(ctx, r.sc())
}

func (r *scopedRepo) ListEvents(ctx context.Context, calendarID string) ([]model.Event, error) {
	return r.repo.ListEvents(ctx, r.sc(), calendarID)
}

func (r *scopedRepo) CreateEvent(ctx context.Context, calendarID string, input model.EventInput) (model.Event, error) {
	return r.repo.CreateEvent(ctx, r.sc(), repository.CreateEventOptions{CalendarID: calendarID, Input: input})
}

func (r *scopedRepo) DeleteEvent(ctx context.Context, eventID string) error {
	return r.repo.DeleteEvent(ctx, r.sc(), eventID)
}

func (r *scopedRepo) CreateCalendar(ctx context.Context, input model.CalendarInput) (model.Calendar, error) {
	return r.repo.CreateCalendar(ctx, r.sc(), input)
}

func (r *scopedRepo) ShareCalendar(ctx context.Context, input model.ShareInput) (model.ShareInvite, error) {
	return r.repo.ShareCalendar(ctx, r.sc(), input)
}

func (r *scopedRepo) DeleteCalendar(ctx context.Context, calendarID string) error {
	return r.repo.DeleteCalendar(ctx, r.sc(), calendarID)
}
