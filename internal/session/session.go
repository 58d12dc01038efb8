package session

import (
	"context"

	"shared-calendar/internal/eventcache"
	"shared-calendar/internal/filter"
	"shared-calendar/internal/model"
	"shared-calendar/internal/prefs"
	"shared-calendar/internal/registry"
	calendarSync "shared-calendar/internal/sync"
	pkgLog "shared-calendar/pkg/log"
)

// Session is the state the gateway keeps for one signed-in user.
type Session struct {
	UserID     string
	Registry   *registry.Registry
	Cache      *eventcache.Cache
	Visibility *filter.VisibilitySet
	Categories *filter.CategorySet
	Groups     *filter.Groups
	Sync       *calendarSync.Synchronizer

	l     pkgLog.Logger
	repo  *scopedRepo
	prefs *prefs.Store
}

// SaveVisibility persists the visible calendar ids. Failures are logged.
func (s *Session) SaveVisibility(ctx context.Context) {
	if err := s.prefs.SaveVisibility(s.UserID, s.Visibility.IDs()); err != nil {
		s.l.Warnf(ctx, "session.SaveVisibility: %v", err)
	}
}

// SaveCategories persists the category selection. Failures are logged.
func (s *Session) SaveCategories(ctx context.Context) {
	if err := s.prefs.SaveCategories(s.UserID, s.Categories.Values()); err != nil {
		s.l.Warnf(ctx, "session.SaveCategories: %v", err)
	}
}

// SaveGroups persists the calendar groups. Failures are logged.
func (s *Session) SaveGroups(ctx context.Context) {
	if err := s.prefs.SaveGroups(s.UserID, s.Groups.List()); err != nil {
		s.l.Warnf(ctx, "session.SaveGroups: %v", err)
	}
}

// ShareCalendar invites another user to one of this user's calendars. The
// invitee's view changes once they accept; this session's state does not.
func (s *Session) ShareCalendar(ctx context.Context, input model.ShareInput) (model.ShareInvite, error) {
	return s.repo.ShareCalendar(ctx, input)
}

// Visible returns the cached aggregate after visibility and category filtering.
func (s *Session) Visible() []model.Event {
	return filter.Apply(s.Cache.Snapshot(), s.Visibility, s.Categories)
}

func (s *Session) close() {
	s.Cache.Reset()
}
