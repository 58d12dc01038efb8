package filter

import (
	"sync"

	"shared-calendar/internal/model"
)

// CategorySet is the category selection of a user. It starts with every
// category selected.
type CategorySet struct {
	mu       sync.RWMutex
	selected map[model.Category]struct{}
}

func NewCategorySet() *CategorySet {
	c := &CategorySet{}
	c.selectAll()
	return c
}

// Init adopts saved when it holds at least one known category.
func (c *CategorySet) Init(saved []string) {
	next := map[model.Category]struct{}{}
	for _, s := range saved {
		if cat := model.Category(s); cat.Valid() {
			next[cat] = struct{}{}
		}
	}
	if len(next) == 0 {
		return
	}
	c.mu.Lock()
	c.selected = next
	c.mu.Unlock()
}

func (c *CategorySet) Selected(cat model.Category) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.selected[cat]
	return ok
}

// Toggle flips cat and reports its new state.
func (c *CategorySet) Toggle(cat model.Category) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.selected[cat]; ok {
		delete(c.selected, cat)
		return false
	}
	c.selected[cat] = struct{}{}
	return true
}

func (c *CategorySet) SelectAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectAll()
}

func (c *CategorySet) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = map[model.Category]struct{}{}
}

// Values returns the selection in display order.
func (c *CategorySet) Values() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.selected))
	for _, cat := range model.Categories {
		if _, ok := c.selected[cat]; ok {
			out = append(out, string(cat))
		}
	}
	return out
}

func (c *CategorySet) selectAll() {
	c.selected = make(map[model.Category]struct{}, len(model.Categories))
	for _, cat := range model.Categories {
		c.selected[cat] = struct{}{}
	}
}
