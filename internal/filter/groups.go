package filter

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"shared-calendar/internal/prefs"
)

// DefaultGroupColor is used when a group is created without a color.
const DefaultGroupColor = "#8b5cf6"

var ErrGroupNotFound = errors.New("group not found")

// Groups holds a user's calendar groups.
type Groups struct {
	mu     sync.RWMutex
	groups []prefs.Group
	now    func() time.Time
}

func NewGroups(initial []prefs.Group) *Groups {
	g := &Groups{now: time.Now}
	g.groups = append(g.groups, initial...)
	return g
}

func (g *Groups) List() []prefs.Group {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]prefs.Group, len(g.groups))
	copy(out, g.groups)
	return out
}

func (g *Groups) Get(id string) (prefs.Group, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, grp := range g.groups {
		if grp.ID == id {
			return grp, true
		}
	}
	return prefs.Group{}, false
}

func (g *Groups) Add(name, color string, calendarIDs []string) prefs.Group {
	if color == "" {
		color = DefaultGroupColor
	}
	grp := prefs.Group{
		ID:          uuid.NewString(),
		Name:        name,
		Color:       color,
		CalendarIDs: append([]string{}, calendarIDs...),
		CreatedAt:   g.now().UTC().Format(time.RFC3339),
	}

	g.mu.Lock()
	g.groups = append(g.groups, grp)
	g.mu.Unlock()
	return grp
}

// Update replaces the non-empty fields of group id. A nil calendarIDs keeps
// the current members.
func (g *Groups) Update(id, name, color string, calendarIDs []string) (prefs.Group, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.groups {
		if g.groups[i].ID != id {
			continue
		}
		if name != "" {
			g.groups[i].Name = name
		}
		if color != "" {
			g.groups[i].Color = color
		}
		if calendarIDs != nil {
			g.groups[i].CalendarIDs = append([]string{}, calendarIDs...)
		}
		return g.groups[i], nil
	}
	return prefs.Group{}, ErrGroupNotFound
}

// Delete removes group id. Deleting an absent group is a no-op.
func (g *Groups) Delete(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := g.groups[:0]
	for _, grp := range g.groups {
		if grp.ID != id {
			out = append(out, grp)
		}
	}
	g.groups = out
}

// ForgetCalendar drops calendarID from every group.
func (g *Groups) ForgetCalendar(calendarID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	changed := false
	for i := range g.groups {
		ids := g.groups[i].CalendarIDs[:0]
		for _, id := range g.groups[i].CalendarIDs {
			if id == calendarID {
				changed = true
				continue
			}
			ids = append(ids, id)
		}
		g.groups[i].CalendarIDs = ids
	}
	return changed
}

// Toggle hides every calendar of the group when all are visible and shows
// them all otherwise.
func (g *Groups) Toggle(id string, v *VisibilitySet) error {
	grp, ok := g.Get(id)
	if !ok {
		return ErrGroupNotFound
	}
	v.SetVisible(grp.CalendarIDs, !allVisible(grp, v))
	return nil
}

// Visible reports whether every calendar of a non-empty group is visible.
func (g *Groups) Visible(id string, v *VisibilitySet) bool {
	grp, ok := g.Get(id)
	if !ok || len(grp.CalendarIDs) == 0 {
		return false
	}
	return allVisible(grp, v)
}

// PartiallyVisible reports whether some but not all calendars are visible.
func (g *Groups) PartiallyVisible(id string, v *VisibilitySet) bool {
	grp, ok := g.Get(id)
	if !ok || len(grp.CalendarIDs) == 0 {
		return false
	}
	n := 0
	for _, cid := range grp.CalendarIDs {
		if v.Visible(cid) {
			n++
		}
	}
	return n > 0 && n < len(grp.CalendarIDs)
}

func allVisible(grp prefs.Group, v *VisibilitySet) bool {
	for _, cid := range grp.CalendarIDs {
		if !v.Visible(cid) {
			return false
		}
	}
	return true
}
