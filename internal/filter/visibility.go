package filter

import (
	"sort"
	"sync"
)

// VisibilitySet tracks which calendars a user renders. Until Init is called
// every calendar counts as visible.
type VisibilitySet struct {
	mu          sync.RWMutex
	initialized bool
	ids         map[string]struct{}
}

func NewVisibilitySet() *VisibilitySet {
	return &VisibilitySet{ids: map[string]struct{}{}}
}

// Init adopts saved when it is non-empty, otherwise makes every id in all
// visible. Later calls are ignored.
func (v *VisibilitySet) Init(all, saved []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.initialized {
		return
	}
	v.initialized = true

	src := saved
	if len(saved) == 0 {
		src = all
	}
	for _, id := range src {
		v.ids[id] = struct{}{}
	}
}

func (v *VisibilitySet) Initialized() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.initialized
}

func (v *VisibilitySet) Visible(calendarID string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.initialized {
		return true
	}
	_, ok := v.ids[calendarID]
	return ok
}

// Toggle flips one calendar and reports its new state.
func (v *VisibilitySet) Toggle(calendarID string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.initialized = true
	if _, ok := v.ids[calendarID]; ok {
		delete(v.ids, calendarID)
		return false
	}
	v.ids[calendarID] = struct{}{}
	return true
}

// SetVisible shows or hides every id in ids.
func (v *VisibilitySet) SetVisible(ids []string, visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.initialized = true
	for _, id := range ids {
		if visible {
			v.ids[id] = struct{}{}
		} else {
			delete(v.ids, id)
		}
	}
}

// Add makes calendarID visible.
func (v *VisibilitySet) Add(calendarID string) {
	v.SetVisible([]string{calendarID}, true)
}

// Remove forgets calendarID. Removing an absent id is a no-op.
func (v *VisibilitySet) Remove(calendarID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.ids, calendarID)
}

// IDs returns the visible ids sorted.
func (v *VisibilitySet) IDs() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]string, 0, len(v.ids))
	for id := range v.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
