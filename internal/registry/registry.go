package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"shared-calendar/internal/model"
	pkgLog "shared-calendar/pkg/log"
)

// Registry is the list of calendars one user can see, owned ones first.
type Registry struct {
	l       pkgLog.Logger
	backend Backend
	colors  ColorStore
	userID  string

	mu     sync.RWMutex
	owned  []model.Calendar
	shared []model.Calendar
}

func New(l pkgLog.Logger, backend Backend, colors ColorStore, userID string) *Registry {
	return &Registry{
		l:       l,
		backend: backend,
		colors:  colors,
		userID:  userID,
	}
}

// Load fetches owned calendars and accepted shares in parallel and replaces
// the registry content. A failing share listing is logged and treated as empty.
func (r *Registry) Load(ctx context.Context) error {
	var (
		owned  []model.Calendar
		shares []model.Share
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cals, err := r.backend.ListCalendars(gctx)
		if err != nil {
			return fmt.Errorf("list calendars: %w", err)
		}
		owned = cals
		return nil
	})
	g.Go(func() error {
		s, err := r.backend.ListShares(gctx)
		if err != nil {
			r.l.Warnf(ctx, "registry.Load: list shares: %v", err)
			return nil
		}
		shares = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	owned = r.ensureDefault(ctx, owned)
	sortOwned(owned)
	shared := fromShares(shares)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.owned, r.shared = owned, shared
	r.assignColorsLocked(ctx)
	return nil
}

// ensureDefault promotes the "Personal" calendar when nothing is marked
// default, creating it on the backend when it does not exist.
func (r *Registry) ensureDefault(ctx context.Context, owned []model.Calendar) []model.Calendar {
	for _, cal := range owned {
		if cal.IsDefault {
			return owned
		}
	}
	for i := range owned {
		if owned[i].Name == model.DefaultCalendarName {
			owned[i].IsDefault = true
			return owned
		}
	}

	cal, err := r.backend.CreateCalendar(ctx, model.CalendarInput{
		Name:      model.DefaultCalendarName,
		Color:     model.DefaultCalendarColor,
		IsDefault: true,
	})
	if err != nil {
		r.l.Warnf(ctx, "registry.ensureDefault: create %q: %v", model.DefaultCalendarName, err)
		return owned
	}
	cal.IsDefault = true
	return append(owned, cal)
}

func fromShares(shares []model.Share) []model.Calendar {
	out := make([]model.Calendar, 0, len(shares))
	for _, s := range shares {
		if s.Calendar == nil {
			continue
		}
		cal := *s.Calendar
		cal.IsShared = true
		cal.IsDefault = false
		cal.Role = s.Role
		if cal.Role == "" {
			cal.Role = model.RoleViewer
		}
		out = append(out, cal)
	}
	return out
}

func sortOwned(cals []model.Calendar) {
	sort.SliceStable(cals, func(i, j int) bool {
		if cals[i].IsDefault != cals[j].IsDefault {
			return cals[i].IsDefault
		}
		return cals[i].CreatedAt.Before(cals[j].CreatedAt)
	})
	for i := range cals {
		if cals[i].Role == "" {
			cals[i].Role = model.RoleOwner
		}
	}
}

// assignColorsLocked gives every calendar its persisted color, picking and
// saving a new one for calendars that have none.
func (r *Registry) assignColorsLocked(ctx context.Context) {
	prefs, err := r.colors.LoadColors(r.userID)
	if err != nil {
		r.l.Warnf(ctx, "registry.assignColors: load: %v", err)
	}
	if prefs == nil {
		prefs = map[string]string{}
	}

	used := make(map[string]struct{}, len(prefs))
	for _, c := range prefs {
		used[c] = struct{}{}
	}

	index := len(r.owned) + len(r.shared)
	changed := false
	pick := func(cal *model.Calendar) {
		if c, ok := prefs[cal.ID]; ok && c != "" {
			cal.Color = c
			return
		}
		color, ok := nextColor(&index, used)
		if !ok {
			color = model.DefaultCalendarColor
		}
		used[color] = struct{}{}
		prefs[cal.ID] = color
		cal.Color = color
		changed = true
	}
	for i := range r.owned {
		pick(&r.owned[i])
	}
	for i := range r.shared {
		pick(&r.shared[i])
	}

	if !changed {
		return
	}
	if err := r.colors.SaveColors(r.userID, prefs); err != nil {
		r.l.Warnf(ctx, "registry.assignColors: save: %v", err)
	}
}

// Calendars returns owned calendars followed by shared ones.
func (r *Registry) Calendars() []model.Calendar {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Calendar, 0, len(r.owned)+len(r.shared))
	out = append(out, r.owned...)
	return append(out, r.shared...)
}

func (r *Registry) Owned() []model.Calendar {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Calendar{}, r.owned...)
}

func (r *Registry) Shared() []model.Calendar {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Calendar{}, r.shared...)
}

// IDs returns the ids of every calendar in registry order.
func (r *Registry) IDs() []string {
	cals := r.Calendars()
	ids := make([]string, len(cals))
	for i, cal := range cals {
		ids[i] = cal.ID
	}
	return ids
}

func (r *Registry) Lookup(id string) (model.Calendar, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, list := range [][]model.Calendar{r.owned, r.shared} {
		for _, cal := range list {
			if cal.ID == id {
				return cal, true
			}
		}
	}
	return model.Calendar{}, false
}

// Default returns the default owned calendar, or the first calendar when no
// default is known.
func (r *Registry) Default() (model.Calendar, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cal := range r.owned {
		if cal.IsDefault {
			return cal, true
		}
	}
	if len(r.owned) > 0 {
		return r.owned[0], true
	}
	return model.Calendar{}, false
}

// CreateCalendar creates an owned calendar on the backend and adds it. A
// requested color is kept as the calendar's persisted color.
func (r *Registry) CreateCalendar(ctx context.Context, input model.CalendarInput) (model.Calendar, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return model.Calendar{}, ErrEmptyName
	}
	cal, err := r.backend.CreateCalendar(ctx, input)
	if err != nil {
		return model.Calendar{}, fmt.Errorf("create calendar: %w", err)
	}
	if input.Color != "" {
		r.setColor(ctx, cal.ID, input.Color)
	}
	return r.Add(ctx, cal), nil
}

// Add inserts an owned calendar, colors it and returns the stored copy.
func (r *Registry) Add(ctx context.Context, cal model.Calendar) model.Calendar {
	cal.IsShared = false
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.owned[:0:0]
	for _, c := range r.owned {
		if c.ID != cal.ID {
			kept = append(kept, c)
		}
	}
	r.owned = append(kept, cal)
	sortOwned(r.owned)
	r.assignColorsLocked(ctx)

	for _, c := range r.owned {
		if c.ID == cal.ID {
			return c
		}
	}
	return cal
}

// Remove forgets a calendar and its persisted color. It reports whether the
// calendar was known.
func (r *Registry) Remove(ctx context.Context, id string) bool {
	r.mu.Lock()
	var found bool
	r.owned, found = removeID(r.owned, id)
	if !found {
		r.shared, found = removeID(r.shared, id)
	}
	r.mu.Unlock()

	prefs, err := r.colors.LoadColors(r.userID)
	if err != nil {
		r.l.Warnf(ctx, "registry.Remove: load colors: %v", err)
		return found
	}
	if _, ok := prefs[id]; ok {
		delete(prefs, id)
		if err := r.colors.SaveColors(r.userID, prefs); err != nil {
			r.l.Warnf(ctx, "registry.Remove: save colors: %v", err)
		}
	}
	return found
}

func (r *Registry) setColor(ctx context.Context, id, color string) {
	prefs, err := r.colors.LoadColors(r.userID)
	if err != nil {
		r.l.Warnf(ctx, "registry.setColor: load: %v", err)
	}
	if prefs == nil {
		prefs = map[string]string{}
	}
	prefs[id] = color
	if err := r.colors.SaveColors(r.userID, prefs); err != nil {
		r.l.Warnf(ctx, "registry.setColor: save: %v", err)
	}
}

func removeID(cals []model.Calendar, id string) ([]model.Calendar, bool) {
	out := make([]model.Calendar, 0, len(cals))
	found := false
	for _, c := range cals {
		if c.ID == id {
			found = true
			continue
		}
		out = append(out, c)
	}
	return out, found
}
