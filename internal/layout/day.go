package layout

import (
	"time"

	"shared-calendar/internal/model"
)

// StartOfDay truncates t to local midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return StartOfDay(a, loc).Equal(StartOfDay(b, loc))
}

// Day selects the events starting on day and lays out the timed ones.
func Day(events []model.Event, day time.Time, loc *time.Location) DayLayout {
	start := StartOfDay(day, loc)
	out := DayLayout{Day: start}

	var timed []model.Event
	for _, ev := range events {
		if !SameDay(ev.Start, start, loc) {
			continue
		}
		if ev.AllDay {
			out.AllDay = append(out.AllDay, ev)
			continue
		}
		timed = append(timed, ev)
	}
	out.Timed = Columns(timed)
	return out
}

// Week lays out seven consecutive days starting at weekStart. Each day is
// packed independently.
func Week(events []model.Event, weekStart time.Time, loc *time.Location) []DayLayout {
	first := StartOfDay(weekStart, loc)
	days := make([]DayLayout, 7)
	for i := range days {
		days[i] = Day(events, first.AddDate(0, 0, i), loc)
	}
	return days
}
