package filter

import (
	"testing"
	"time"

	"shared-calendar/internal/model"
)

func cat(c model.Category) *model.Category { return &c }

func TestApply(t *testing.T) {
	start := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
	events := []model.Event{
		{ID: "1", CalendarID: "a", Start: start, End: start.Add(time.Hour), Category: cat(model.CategoryBusiness)},
		{ID: "2", CalendarID: "b", Start: start, End: start.Add(time.Hour)},
		{ID: "3", CalendarID: "a", Start: start, End: start.Add(time.Hour), Category: cat(model.CategoryHealth)},
		{ID: "4", CalendarID: "a", Start: start, End: start.Add(time.Hour)},
	}

	t.Run("uninitialized visibility shows everything", func(t *testing.T) {
		got := Apply(events, NewVisibilitySet(), NewCategorySet())
		if len(got) != 4 {
			t.Fatalf("expected 4 events, got %d", len(got))
		}
	})

	t.Run("hidden calendar and deselected category", func(t *testing.T) {
		v := NewVisibilitySet()
		v.Init([]string{"a", "b"}, []string{"a"})
		c := NewCategorySet()
		c.Toggle(model.CategoryHealth)

		got := Apply(events, v, c)
		ids := idsOf(got)
		want := []string{"1", "4"}
		if len(ids) != len(want) {
			t.Fatalf("expected %v, got %v", want, ids)
		}
		for i := range want {
			if ids[i] != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], ids[i])
			}
		}
	})

	t.Run("uncategorized events pass an empty selection", func(t *testing.T) {
		c := NewCategorySet()
		c.Clear()
		got := Apply(events, nil, c)
		ids := idsOf(got)
		if len(ids) != 2 || ids[0] != "2" || ids[1] != "4" {
			t.Errorf("expected [2 4], got %v", ids)
		}
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		v := NewVisibilitySet()
		v.Init([]string{"b"}, nil)
		_ = Apply(events, v, NewCategorySet())
		if len(events) != 4 || events[0].ID != "1" {
			t.Error("input slice was modified")
		}
	})
}

func TestVisibilitySet(t *testing.T) {
	t.Run("init falls back to all ids", func(t *testing.T) {
		v := NewVisibilitySet()
		v.Init([]string{"a", "b"}, nil)
		if !v.Visible("a") || !v.Visible("b") {
			t.Error("expected all calendars visible")
		}
		if v.Visible("c") {
			t.Error("unknown calendar should be hidden after init")
		}
	})

	t.Run("second init is ignored", func(t *testing.T) {
		v := NewVisibilitySet()
		v.Init([]string{"a"}, nil)
		v.Init([]string{"b"}, nil)
		if v.Visible("b") {
			t.Error("second Init should not change the set")
		}
	})

	t.Run("toggle and remove", func(t *testing.T) {
		v := NewVisibilitySet()
		v.Init([]string{"a"}, nil)
		if v.Toggle("a") {
			t.Error("toggle of a visible calendar should hide it")
		}
		if !v.Toggle("a") {
			t.Error("second toggle should show it")
		}
		v.Remove("a")
		v.Remove("a")
		if v.Visible("a") {
			t.Error("removed calendar should be hidden")
		}
		v.Add("z")
		if ids := v.IDs(); len(ids) != 1 || ids[0] != "z" {
			t.Errorf("expected [z], got %v", ids)
		}
	})
}

func TestCategorySet(t *testing.T) {
	c := NewCategorySet()
	if got := c.Values(); len(got) != len(model.Categories) {
		t.Fatalf("expected all categories selected, got %v", got)
	}

	c.Init([]string{"travel", "bogus"})
	if got := c.Values(); len(got) != 1 || got[0] != "travel" {
		t.Errorf("expected [travel], got %v", got)
	}

	c.Init(nil)
	if got := c.Values(); len(got) != 1 {
		t.Errorf("empty saved selection should be ignored, got %v", got)
	}

	c.SelectAll()
	if !c.Selected(model.CategoryFinance) {
		t.Error("expected finance selected after SelectAll")
	}
}

func TestGroups(t *testing.T) {
	g := NewGroups(nil)
	grp := g.Add("Work", "", []string{"a", "b"})
	if grp.ID == "" || grp.Color != DefaultGroupColor {
		t.Fatalf("unexpected group %+v", grp)
	}

	v := NewVisibilitySet()
	v.Init([]string{"a", "b", "c"}, nil)

	if !g.Visible(grp.ID, v) {
		t.Error("expected group visible")
	}
	if err := g.Toggle(grp.ID, v); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if v.Visible("a") || v.Visible("b") || !v.Visible("c") {
		t.Error("toggle should hide only the group's calendars")
	}

	v.Toggle("a")
	if !g.PartiallyVisible(grp.ID, v) {
		t.Error("expected partial visibility")
	}
	if err := g.Toggle(grp.ID, v); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !g.Visible(grp.ID, v) {
		t.Error("partially visible group should toggle to fully visible")
	}

	if _, err := g.Update(grp.ID, "Job", "", nil); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got, _ := g.Get(grp.ID); got.Name != "Job" || len(got.CalendarIDs) != 2 {
		t.Errorf("unexpected group after update: %+v", got)
	}
	if _, err := g.Update("missing", "x", "", nil); err != ErrGroupNotFound {
		t.Errorf("expected ErrGroupNotFound, got %v", err)
	}

	if !g.ForgetCalendar("a") {
		t.Error("expected ForgetCalendar to report a change")
	}
	g.Delete(grp.ID)
	g.Delete(grp.ID)
	if len(g.List()) != 0 {
		t.Error("expected no groups after delete")
	}
}

func idsOf(events []model.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.ID
	}
	return out
}
