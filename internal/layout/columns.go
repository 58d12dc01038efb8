package layout

import (
	"sort"
	"time"

	"shared-calendar/internal/model"
)

// Columns packs timed events into non-overlapping columns.
//
// Events are sorted by start, longer first on ties, then split into groups of
// transitively overlapping events. Inside a group each event goes to the first
// column whose last event ends at or before its start. TotalColumns is the
// number of columns the event's own group opened.
//
// All-day events are skipped. The result is in sort order.
func Columns(events []model.Event) []Placed {
	timed := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if ev.AllDay {
			continue
		}
		timed = append(timed, ev)
	}
	if len(timed) == 0 {
		return nil
	}

	sortForLayout(timed)

	placed := make([]Placed, 0, len(timed))
	groupStart := 0
	var groupEnd time.Time
	for i, ev := range timed {
		if i > 0 && !ev.Start.Before(groupEnd) {
			placed = append(placed, packGroup(timed[groupStart:i])...)
			groupStart = i
			groupEnd = ev.End
			continue
		}
		if i == 0 || ev.End.After(groupEnd) {
			groupEnd = ev.End
		}
	}
	placed = append(placed, packGroup(timed[groupStart:])...)

	return placed
}

// Positions indexes placed events by event id.
func Positions(placed []Placed) map[string]Position {
	out := make(map[string]Position, len(placed))
	for _, p := range placed {
		out[p.Event.ID] = Position{Column: p.Column, TotalColumns: p.TotalColumns}
	}
	return out
}

func sortForLayout(events []model.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if da, db := a.Duration(), b.Duration(); da != db {
			return da > db
		}
		return a.ID < b.ID
	})
}

func packGroup(group []model.Event) []Placed {
	// lastEnd[c] is the end of the event most recently placed in column c.
	var lastEnd []time.Time
	out := make([]Placed, len(group))

	for i, ev := range group {
		col := -1
		for c, end := range lastEnd {
			if !ev.Start.Before(end) {
				col = c
				break
			}
		}
		if col < 0 {
			lastEnd = append(lastEnd, ev.End)
			col = len(lastEnd) - 1
		} else {
			lastEnd[col] = ev.End
		}
		out[i] = Placed{Event: ev, Column: col}
	}

	for i := range out {
		out[i].TotalColumns = len(lastEnd)
	}
	return out
}
