package layout_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"shared-calendar/internal/layout"
	"shared-calendar/internal/model"
)

var day = time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func ev(id string, start, end time.Time) model.Event {
	return model.Event{ID: id, CalendarID: "cal", Title: id, Start: start, End: end}
}

func TestColumns_Scenario(t *testing.T) {
	events := []model.Event{
		ev("C", at(10, 0), at(11, 0)),
		ev("A", at(9, 0), at(10, 0)),
		ev("B", at(9, 30), at(10, 30)),
	}

	pos := layout.Positions(layout.Columns(events))

	if pos["A"].Column == pos["B"].Column {
		t.Errorf("A and B overlap and must not share a column: %+v", pos)
	}
	if pos["C"].Column == pos["B"].Column {
		t.Errorf("C starts before B ends and must not share B's column: %+v", pos)
	}
	if pos["C"].Column != pos["A"].Column {
		t.Errorf("C starts when A ends and should reuse A's column: %+v", pos)
	}
	for id, p := range pos {
		if p.TotalColumns != 2 {
			t.Errorf("%s: expected 2 total columns, got %d", id, p.TotalColumns)
		}
	}
}

func TestColumns_IndependentClusters(t *testing.T) {
	events := []model.Event{
		ev("m1", at(8, 0), at(9, 0)),
		ev("m2", at(8, 0), at(9, 0)),
		ev("m3", at(8, 30), at(9, 30)),
		ev("solo", at(13, 0), at(14, 0)),
	}

	pos := layout.Positions(layout.Columns(events))

	if pos["m1"].TotalColumns != 3 {
		t.Errorf("morning cluster should use 3 columns, got %d", pos["m1"].TotalColumns)
	}
	if pos["solo"].TotalColumns != 1 || pos["solo"].Column != 0 {
		t.Errorf("afternoon event should be alone, got %+v", pos["solo"])
	}
}

func TestColumns_TieBreakLongerFirst(t *testing.T) {
	events := []model.Event{
		ev("short", at(9, 0), at(9, 30)),
		ev("long", at(9, 0), at(12, 0)),
		ev("same-b", at(14, 0), at(15, 0)),
		ev("same-a", at(14, 0), at(15, 0)),
	}

	placed := layout.Columns(events)
	order := make([]string, len(placed))
	for i, p := range placed {
		order[i] = p.Event.ID
	}

	want := []string{"long", "short", "same-a", "same-b"}
	if fmt.Sprint(order) != fmt.Sprint(want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if placed[0].Column != 0 {
		t.Errorf("longer event should take column 0, got %d", placed[0].Column)
	}
}

func TestColumns_SkipsAllDay(t *testing.T) {
	allDay := ev("holiday", day, day.Add(24*time.Hour))
	allDay.AllDay = true

	placed := layout.Columns([]model.Event{allDay, ev("x", at(9, 0), at(10, 0))})
	if len(placed) != 1 || placed[0].Event.ID != "x" {
		t.Fatalf("expected only the timed event, got %+v", placed)
	}
	if placed[0].TotalColumns != 1 {
		t.Errorf("all-day events must not widen the cluster, got %d", placed[0].TotalColumns)
	}
}

func TestColumns_DegenerateDurations(t *testing.T) {
	events := []model.Event{
		ev("zero", at(9, 0), at(9, 0)),
		ev("negative", at(9, 0), at(8, 0)),
		ev("normal", at(9, 0), at(10, 0)),
	}

	placed := layout.Columns(events)
	if len(placed) != 3 {
		t.Fatalf("expected 3 placed events, got %d", len(placed))
	}
	for _, p := range placed {
		if p.TotalColumns < 1 || p.Column >= p.TotalColumns {
			t.Errorf("invalid position for %s: %+v", p.Event.ID, p)
		}
	}
}

func TestColumns_Empty(t *testing.T) {
	if got := layout.Columns(nil); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

// Property: events sharing a column never overlap, and every cluster uses at
// least as many columns as its peak concurrency.
func TestColumns_RandomNoOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		n := 1 + rng.Intn(25)
		events := make([]model.Event, n)
		for i := range events {
			start := at(0, rng.Intn(20*60))
			dur := time.Duration(rng.Intn(180)) * time.Minute
			events[i] = ev(fmt.Sprintf("e%d", i), start, start.Add(dur))
		}

		placed := layout.Columns(events)
		if len(placed) != n {
			t.Fatalf("round %d: placed %d of %d", round, len(placed), n)
		}

		for i := 0; i < len(placed); i++ {
			for j := i + 1; j < len(placed); j++ {
				a, b := placed[i], placed[j]
				if a.Column != b.Column {
					continue
				}
				if overlaps(a.Event, b.Event) {
					t.Fatalf("round %d: %s and %s share column %d but overlap", round, a.Event.ID, b.Event.ID, a.Column)
				}
			}
		}

		for _, p := range placed {
			peak := peakConcurrency(p.Event, placed)
			if p.TotalColumns < peak {
				t.Fatalf("round %d: %s has %d columns but peak overlap %d", round, p.Event.ID, p.TotalColumns, peak)
			}
		}
	}
}

func overlaps(a, b model.Event) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// peakConcurrency counts events running at e's start, including e itself.
func peakConcurrency(e model.Event, placed []layout.Placed) int {
	if !e.Start.Before(e.End) {
		return 1
	}
	count := 0
	for _, p := range placed {
		if !p.Event.Start.After(e.Start) && p.Event.End.After(e.Start) {
			count++
		}
	}
	return count
}
