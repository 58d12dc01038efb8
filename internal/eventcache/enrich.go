package eventcache

import "shared-calendar/internal/model"

// Enrich stamps the render fields of cal onto a copy of events.
func Enrich(events []model.Event, cal model.Calendar) []model.Event {
	out := make([]model.Event, len(events))
	for i, ev := range events {
		if ev.CalendarID == "" {
			ev.CalendarID = cal.ID
		}
		ev.Color = cal.Color
		ev.CalendarName = cal.Name
		ev.IsShared = cal.IsShared
		ev.OwnerName = cal.OwnerName
		out[i] = ev
	}
	return out
}

func clone(events []model.Event) []model.Event {
	if events == nil {
		return []model.Event{}
	}
	out := make([]model.Event, len(events))
	copy(out, events)
	return out
}

func withoutCalendar(events []model.Event, calendarID string) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if ev.CalendarID != calendarID {
			out = append(out, ev)
		}
	}
	return out
}

// replaceCalendar swaps the events of calendarID for next, keeping the block
// where the old events were. Without old events next goes to the end.
func replaceCalendar(events []model.Event, calendarID string, next []model.Event) []model.Event {
	out := make([]model.Event, 0, len(events)+len(next))
	inserted := false
	for _, ev := range events {
		if ev.CalendarID != calendarID {
			out = append(out, ev)
			continue
		}
		if !inserted {
			out = append(out, next...)
			inserted = true
		}
	}
	if !inserted {
		out = append(out, next...)
	}
	return out
}
