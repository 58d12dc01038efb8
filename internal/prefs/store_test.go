package prefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"shared-calendar/internal/prefs"
)

func TestStore_RoundTrip(t *testing.T) {
	s := prefs.NewStore(filepath.Join(t.TempDir(), "nested"))

	t.Run("missing returns nothing", func(t *testing.T) {
		ids, err := s.LoadVisibility("u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ids != nil {
			t.Errorf("expected nil, got %v", ids)
		}
		colors, err := s.LoadColors("u1")
		if err != nil || colors == nil || len(colors) != 0 {
			t.Errorf("expected empty non-nil map, got %v (%v)", colors, err)
		}
	})

	t.Run("visibility", func(t *testing.T) {
		if err := s.SaveVisibility("u1", []string{"a", "b"}); err != nil {
			t.Fatalf("save: %v", err)
		}
		ids, err := s.LoadVisibility("u1")
		if err != nil || len(ids) != 2 || ids[0] != "a" {
			t.Errorf("unexpected load: %v (%v)", ids, err)
		}
	})

	t.Run("empty selection is saved as empty", func(t *testing.T) {
		if err := s.SaveCategories("u1", nil); err != nil {
			t.Fatalf("save: %v", err)
		}
		values, err := s.LoadCategories("u1")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if values == nil || len(values) != 0 {
			t.Errorf("expected empty slice, got %#v", values)
		}
	})

	t.Run("users are isolated", func(t *testing.T) {
		if err := s.SaveColors("u1", map[string]string{"c1": "#ffffff"}); err != nil {
			t.Fatalf("save: %v", err)
		}
		other, _ := s.LoadColors("u2")
		if len(other) != 0 {
			t.Errorf("u2 should not see u1's colors: %v", other)
		}
	})

	t.Run("groups", func(t *testing.T) {
		in := []prefs.Group{{ID: "g1", Name: "Work", CalendarIDs: []string{"a"}}}
		if err := s.SaveGroups("u1", in); err != nil {
			t.Fatalf("save: %v", err)
		}
		out, err := s.LoadGroups("u1")
		if err != nil || len(out) != 1 || out[0].Name != "Work" {
			t.Errorf("unexpected groups: %+v (%v)", out, err)
		}
	})

	t.Run("clear", func(t *testing.T) {
		if err := s.Clear("u1"); err != nil {
			t.Fatalf("clear: %v", err)
		}
		ids, _ := s.LoadVisibility("u1")
		if ids != nil {
			t.Errorf("expected cleared visibility, got %v", ids)
		}
	})
}

func TestStore_Errors(t *testing.T) {
	dir := t.TempDir()
	s := prefs.NewStore(dir)

	if _, err := s.LoadVisibility(""); !errors.Is(err, prefs.ErrEmptyUser) {
		t.Errorf("expected ErrEmptyUser, got %v", err)
	}

	path := filepath.Join(dir, "calendarVisibility_bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadVisibility("bad"); err == nil {
		t.Error("expected decode error")
	}
}

func TestStore_SanitizesUserID(t *testing.T) {
	dir := t.TempDir()
	s := prefs.NewStore(dir)

	if err := s.SaveVisibility("../../etc/passwd", []string{"x"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected file inside dir, got %d entries", len(entries))
	}
}
