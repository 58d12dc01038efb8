package filter

import "shared-calendar/internal/model"

// Apply returns the events eligible for rendering, preserving order.
// An event passes when its calendar is visible and it is either uncategorized
// or its category is selected. Apply never mutates its inputs.
func Apply(events []model.Event, visibility *VisibilitySet, categories *CategorySet) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if visibility != nil && !visibility.Visible(ev.CalendarID) {
			continue
		}
		if ev.Category != nil && categories != nil && !categories.Selected(*ev.Category) {
			continue
		}
		out = append(out, ev)
	}
	return out
}
