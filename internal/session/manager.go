package session

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"shared-calendar/internal/calendar/repository"
	"shared-calendar/internal/eventcache"
	"shared-calendar/internal/filter"
	"shared-calendar/internal/model"
	"shared-calendar/internal/prefs"
	"shared-calendar/internal/registry"
	calendarSync "shared-calendar/internal/sync"
	pkgLog "shared-calendar/pkg/log"
)

const (
	DefaultCapacity = 1000
	DefaultIdleTTL  = 30 * time.Minute
)

// Config sizes the session manager.
type Config struct {
	Capacity int
	IdleTTL  time.Duration
	Cache    eventcache.Options
}

// Manager owns the live sessions, one per user id. Idle sessions expire and
// the least recently used one is evicted when capacity is reached.
type Manager struct {
	l        pkgLog.Logger
	repo     repository.Repository
	prefs    *prefs.Store
	cfg      Config
	sessions *expirable.LRU[string, *Session]
	opening  singleflight.Group
}

func NewManager(l pkgLog.Logger, repo repository.Repository, store *prefs.Store, cfg Config) *Manager {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultIdleTTL
	}
	m := &Manager{
		l:     l,
		repo:  repo,
		prefs: store,
		cfg:   cfg,
	}
	m.sessions = expirable.NewLRU[string, *Session](cfg.Capacity, m.onEvict, cfg.IdleTTL)
	return m
}

func (m *Manager) onEvict(userID string, s *Session) {
	s.close()
	m.l.Debugf(context.Background(), "session: closed session of %s", userID)
}

// Get returns the session of sc.UserID, opening it on first use. Concurrent
// first calls for the same user open a single session. Every hit restarts
// the idle timer.
func (m *Manager) Get(ctx context.Context, sc model.Scope) (*Session, error) {
	if sc.UserID == "" {
		return nil, ErrEmptyUser
	}
	if s, ok := m.sessions.Get(sc.UserID); ok {
		// Get only reorders the LRU list; re-adding resets ExpiresAt.
		m.sessions.Add(sc.UserID, s)
		s.repo.setScope(sc)
		return s, nil
	}

	v, err, _ := m.opening.Do(sc.UserID, func() (any, error) {
		if s, ok := m.sessions.Get(sc.UserID); ok {
			return s, nil
		}
		s, err := m.open(context.WithoutCancel(ctx), sc)
		if err != nil {
			return nil, err
		}
		// An expired entry may linger until the sweeper runs; close it first.
		m.sessions.Remove(sc.UserID)
		m.sessions.Add(sc.UserID, s)
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	s := v.(*Session)
	s.repo.setScope(sc)
	return s, nil
}

func (m *Manager) open(ctx context.Context, sc model.Scope) (*Session, error) {
	repo := newScopedRepo(m.repo, sc)

	reg := registry.New(m.l, repo, m.prefs, sc.UserID)
	if err := reg.Load(ctx); err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	cache := eventcache.New(m.l, repo, reg, m.cfg.Cache)

	visibility := filter.NewVisibilitySet()
	saved, err := m.prefs.LoadVisibility(sc.UserID)
	if err != nil {
		m.l.Warnf(ctx, "session.open: load visibility: %v", err)
	}
	visibility.Init(reg.IDs(), saved)

	categories := filter.NewCategorySet()
	selected, err := m.prefs.LoadCategories(sc.UserID)
	if err != nil {
		m.l.Warnf(ctx, "session.open: load categories: %v", err)
	}
	categories.Init(selected)

	savedGroups, err := m.prefs.LoadGroups(sc.UserID)
	if err != nil {
		m.l.Warnf(ctx, "session.open: load groups: %v", err)
	}
	groups := filter.NewGroups(savedGroups)

	s := &Session{
		UserID:     sc.UserID,
		Registry:   reg,
		Cache:      cache,
		Visibility: visibility,
		Categories: categories,
		Groups:     groups,
		Sync:       calendarSync.New(m.l, sc.UserID, repo, reg, cache, visibility, groups, m.prefs),
		l:          m.l,
		repo:       repo,
		prefs:      m.prefs,
	}

	events := cache.LoadAll(ctx, false)
	m.l.Infof(ctx, "session: opened for %s with %d calendars and %d events", sc.UserID, len(reg.Calendars()), len(events))
	return s, nil
}

// Lookup returns a live session without opening one or refreshing its idle timer.
func (m *Manager) Lookup(userID string) (*Session, bool) {
	return m.sessions.Peek(userID)
}

// Synchronizer resolves the synchronizer of a live session.
func (m *Manager) Synchronizer(userID string) (*calendarSync.Synchronizer, bool) {
	s, ok := m.sessions.Peek(userID)
	if !ok {
		return nil, false
	}
	return s.Sync, true
}

// End discards the session of userID. It reports whether one was live.
func (m *Manager) End(userID string) bool {
	return m.sessions.Remove(userID)
}

// Caches returns the event caches of every live session.
func (m *Manager) Caches() []*eventcache.Cache {
	sessions := m.sessions.Values()
	out := make([]*eventcache.Cache, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.Cache)
	}
	return out
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}
