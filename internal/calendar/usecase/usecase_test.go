package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"shared-calendar/internal/calendar"
	"shared-calendar/internal/calendar/repository"
	"shared-calendar/internal/model"
	"shared-calendar/internal/prefs"
	"shared-calendar/internal/session"
	calendarSync "shared-calendar/internal/sync"
	pkgLog "shared-calendar/pkg/log"
)

type fakeRepo struct {
	calendars []model.Calendar
	shares    []model.Share
	events    map[string][]model.Event
	deleted   map[string]bool
	invites   []model.ShareInput
}

func (f *fakeRepo) ListCalendars(ctx context.Context, sc model.Scope) ([]model.Calendar, error) {
	return f.calendars, nil
}

func (f *fakeRepo) ListShares(ctx context.Context, sc model.Scope) ([]model.Share, error) {
	return f.shares, nil
}

func (f *fakeRepo) ListEvents(ctx context.Context, sc model.Scope, calendarID string) ([]model.Event, error) {
	return f.events[calendarID], nil
}

func (f *fakeRepo) CreateEvent(ctx context.Context, sc model.Scope, opt repository.CreateEventOptions) (model.Event, error) {
	return model.Event{
		ID:     "new",
		Title:  opt.Input.Title,
		Start:  opt.Input.Start,
		End:    opt.Input.End,
		AllDay: opt.Input.AllDay,
	}, nil
}

func (f *fakeRepo) DeleteEvent(ctx context.Context, sc model.Scope, eventID string) error {
	return nil
}

func (f *fakeRepo) CreateCalendar(ctx context.Context, sc model.Scope, input model.CalendarInput) (model.Calendar, error) {
	return model.Calendar{ID: "created", Name: input.Name}, nil
}

func (f *fakeRepo) DeleteCalendar(ctx context.Context, sc model.Scope, calendarID string) error {
	if f.deleted[calendarID] {
		return repository.ErrNotFound
	}
	if f.deleted == nil {
		f.deleted = map[string]bool{}
	}
	f.deleted[calendarID] = true
	return nil
}

func (f *fakeRepo) ShareCalendar(ctx context.Context, sc model.Scope, input model.ShareInput) (model.ShareInvite, error) {
	if strings.HasSuffix(input.Email, "@unknown.io") {
		return model.ShareInvite{}, repository.ErrRejected
	}
	f.invites = append(f.invites, input)
	return model.ShareInvite{ID: "s1", CalendarID: input.CalendarID, Email: input.Email, Role: input.Role, Status: "pending"}, nil
}

var day = time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func newTestUseCase(t *testing.T) (*implUseCase, model.Scope) {
	t.Helper()
	repo := &fakeRepo{
		calendars: []model.Calendar{{ID: "c1", Name: "Work", IsDefault: true}},
		shares: []model.Share{{
			ID:       "s1",
			Role:     model.RoleViewer,
			Calendar: &model.Calendar{ID: "c2", Name: "Team", OwnerName: "Sam"},
		}},
		events: map[string][]model.Event{
			"c1": {
				{ID: "e1", Title: "Standup", Start: at(9, 0), End: at(10, 0)},
				{ID: "e2", Title: "Review", Start: at(9, 30), End: at(10, 30)},
			},
			"c2": {
				{ID: "e3", Title: "Lunch", Start: at(12, 0), End: at(13, 0)},
			},
		},
	}
	return newUseCaseWith(t, repo), model.Scope{UserID: "u1", Token: "t"}
}

func newUseCaseWith(t *testing.T, repo *fakeRepo) *implUseCase {
	t.Helper()
	l := pkgLog.NewNop()
	manager := session.NewManager(l, repo, prefs.NewStore(t.TempDir()), session.Config{})
	uc := New(l, manager, time.UTC)
	uc.now = func() time.Time { return at(8, 0) }
	return uc
}

func TestEventsAndVisibility(t *testing.T) {
	uc, sc := newTestUseCase(t)
	ctx := context.Background()

	t.Run("all calendars visible initially", func(t *testing.T) {
		events, err := uc.ListEvents(ctx, sc, calendar.ListEventsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 3 {
			t.Fatalf("expected 3 events, got %d", len(events))
		}
	})

	t.Run("hidden calendar is filtered out", func(t *testing.T) {
		hidden := false
		visible, err := uc.SetVisibility(ctx, sc, calendar.SetVisibilityInput{CalendarID: "c2", Visible: &hidden})
		if err != nil || visible {
			t.Fatalf("unexpected result %v %v", visible, err)
		}
		events, _ := uc.ListEvents(ctx, sc, calendar.ListEventsInput{})
		for _, ev := range events {
			if ev.CalendarID == "c2" {
				t.Errorf("event %s of hidden calendar returned", ev.ID)
			}
		}

		visible, _ = uc.SetVisibility(ctx, sc, calendar.SetVisibilityInput{CalendarID: "c2"})
		if !visible {
			t.Errorf("toggle should show the calendar again")
		}
	})

	t.Run("unknown calendar", func(t *testing.T) {
		_, err := uc.SetVisibility(ctx, sc, calendar.SetVisibilityInput{CalendarID: "nope"})
		if !errors.Is(err, calendar.ErrCalendarNotFound) {
			t.Errorf("expected ErrCalendarNotFound, got %v", err)
		}
	})

	t.Run("calendar listing", func(t *testing.T) {
		out, err := uc.ListCalendars(ctx, sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Owned) != 1 || len(out.Shared) != 1 {
			t.Fatalf("unexpected calendars %+v", out)
		}
		if out.Shared[0].Calendar.Color == "" {
			t.Errorf("shared calendar should have a color")
		}
	})
}

func TestMutations(t *testing.T) {
	uc, sc := newTestUseCase(t)
	ctx := context.Background()

	t.Run("create on owned calendar", func(t *testing.T) {
		ev, err := uc.CreateEvent(ctx, sc, calendar.CreateEventInput{
			CalendarID: "c1",
			Event:      model.EventInput{Title: " Demo ", Start: at(15, 0), End: at(16, 0)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Title != "Demo" || ev.CalendarName != "Work" {
			t.Errorf("unexpected event %+v", ev)
		}
		events, _ := uc.CalendarEvents(ctx, sc, calendar.CalendarEventsInput{CalendarID: "c1"})
		if len(events) != 3 {
			t.Errorf("expected the new event in the cache, got %d events", len(events))
		}
	})

	t.Run("viewer share is read only", func(t *testing.T) {
		_, err := uc.CreateEvent(ctx, sc, calendar.CreateEventInput{
			CalendarID: "c2",
			Event:      model.EventInput{Title: "x", Start: at(15, 0), End: at(16, 0)},
		})
		if !errors.Is(err, calendarSync.ErrReadOnlyCalendar) {
			t.Errorf("expected ErrReadOnlyCalendar, got %v", err)
		}
		err = uc.DeleteEvent(ctx, sc, calendar.DeleteEventInput{CalendarID: "c2", EventID: "e3"})
		if !errors.Is(err, calendarSync.ErrReadOnlyCalendar) {
			t.Errorf("expected ErrReadOnlyCalendar, got %v", err)
		}
		if err := uc.DeleteCalendar(ctx, sc, "c2"); !errors.Is(err, calendarSync.ErrReadOnlyCalendar) {
			t.Errorf("expected ErrReadOnlyCalendar, got %v", err)
		}
	})

	t.Run("delete event", func(t *testing.T) {
		if err := uc.DeleteEvent(ctx, sc, calendar.DeleteEventInput{CalendarID: "c1", EventID: "e1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		events, _ := uc.CalendarEvents(ctx, sc, calendar.CalendarEventsInput{CalendarID: "c1"})
		for _, ev := range events {
			if ev.ID == "e1" {
				t.Errorf("deleted event still cached")
			}
		}
	})

	t.Run("create and delete calendar", func(t *testing.T) {
		cal, err := uc.CreateCalendar(ctx, sc, model.CalendarInput{Name: "Side"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.DeleteCalendar(ctx, sc, cal.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.DeleteCalendar(ctx, sc, cal.ID); err != nil {
			t.Errorf("deleting an absent calendar should be a no-op, got %v", err)
		}
		out, _ := uc.ListCalendars(ctx, sc)
		for _, v := range out.Owned {
			if v.ID == cal.ID {
				t.Errorf("deleted calendar still listed")
			}
		}
	})
}

func TestShareCalendar(t *testing.T) {
	repo := &fakeRepo{
		calendars: []model.Calendar{{ID: "c1", Name: "Work", IsDefault: true}},
		shares: []model.Share{{
			ID:       "s1",
			Role:     model.RoleEditor,
			Calendar: &model.Calendar{ID: "c2", Name: "Team", OwnerName: "Sam"},
		}},
	}
	uc := newUseCaseWith(t, repo)
	sc := model.Scope{UserID: "u1", Token: "t"}
	ctx := context.Background()

	t.Run("defaults to viewer", func(t *testing.T) {
		invite, err := uc.ShareCalendar(ctx, sc, model.ShareInput{CalendarID: "c1", Email: "  bo@x.io "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if invite.Role != model.RoleViewer || invite.Email != "bo@x.io" || invite.Status != "pending" {
			t.Errorf("unexpected invite %+v", invite)
		}
		if len(repo.invites) != 1 || repo.invites[0].CalendarID != "c1" {
			t.Errorf("unexpected upstream calls %+v", repo.invites)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		tests := []struct {
			name  string
			input model.ShareInput
			want  error
		}{
			{"empty email", model.ShareInput{CalendarID: "c1", Email: " "}, calendar.ErrEmptyEmail},
			{"owner role", model.ShareInput{CalendarID: "c1", Email: "bo@x.io", Role: model.RoleOwner}, calendar.ErrInvalidRole},
			{"unknown calendar", model.ShareInput{CalendarID: "nope", Email: "bo@x.io"}, calendar.ErrCalendarNotFound},
			{"shared calendar", model.ShareInput{CalendarID: "c2", Email: "bo@x.io", Role: model.RoleEditor}, calendarSync.ErrReadOnlyCalendar},
			{"rejected upstream", model.ShareInput{CalendarID: "c1", Email: "ghost@unknown.io"}, repository.ErrRejected},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				before := len(repo.invites)
				if _, err := uc.ShareCalendar(ctx, sc, tt.input); !errors.Is(err, tt.want) {
					t.Errorf("expected %v, got %v", tt.want, err)
				}
				if len(repo.invites) != before {
					t.Errorf("no invite should be recorded")
				}
			})
		}
	})

	t.Run("calendars unchanged", func(t *testing.T) {
		out, err := uc.ListCalendars(ctx, sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Owned) != 1 || len(out.Shared) != 1 {
			t.Errorf("unexpected calendars %+v", out)
		}
	})
}

func TestLayouts(t *testing.T) {
	uc, sc := newTestUseCase(t)
	ctx := context.Background()

	t.Run("day", func(t *testing.T) {
		out, err := uc.DayLayout(ctx, sc, calendar.DayLayoutInput{Date: day})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Timed) != 3 {
			t.Fatalf("expected 3 timed events, got %d", len(out.Timed))
		}
		first := out.Timed[0]
		if first.Event.ID != "e1" || first.Position.TotalColumns != 2 || first.Position.Column != 0 {
			t.Errorf("unexpected first placement %+v", first.Position)
		}
		if first.Box.Top != 720 || first.Box.Left != 70 || first.Box.Width != 296 {
			t.Errorf("unexpected first box %+v", first.Box)
		}
		if out.Timed[1].Position.Column != 1 {
			t.Errorf("overlapping event should take the second column")
		}
		if lunch := out.Timed[2]; lunch.Position.TotalColumns != 1 {
			t.Errorf("lone event should span one column, got %d", lunch.Position.TotalColumns)
		}
	})

	t.Run("week defaults to the current week", func(t *testing.T) {
		out, err := uc.WeekLayout(ctx, sc, calendar.WeekLayoutInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Start.Weekday() != time.Sunday || len(out.Days) != 7 {
			t.Fatalf("unexpected week %v with %d days", out.Start, len(out.Days))
		}
		monday := out.Days[1]
		if len(monday.Timed) != 3 {
			t.Errorf("expected the monday events in lane 1, got %d", len(monday.Timed))
		}
	})
}

func TestFiltersAndGroups(t *testing.T) {
	uc, sc := newTestUseCase(t)
	ctx := context.Background()

	t.Run("categories", func(t *testing.T) {
		if _, err := uc.ToggleCategory(ctx, sc, "bogus"); !errors.Is(err, calendar.ErrInvalidCategory) {
			t.Errorf("expected ErrInvalidCategory, got %v", err)
		}
		out, err := uc.ClearCategories(ctx, sc)
		if err != nil || len(out.Selected) != 0 {
			t.Fatalf("unexpected result %+v %v", out, err)
		}
		events, _ := uc.ListEvents(ctx, sc, calendar.ListEventsInput{})
		if len(events) != 3 {
			t.Errorf("uncategorized events should stay visible, got %d", len(events))
		}
		out, _ = uc.ToggleCategory(ctx, sc, model.CategoryHealth)
		if len(out.Selected) != 1 || out.Selected[0] != string(model.CategoryHealth) {
			t.Errorf("unexpected selection %v", out.Selected)
		}
		out, _ = uc.SelectAllCategories(ctx, sc)
		if len(out.Selected) != len(model.Categories) {
			t.Errorf("expected every category selected, got %v", out.Selected)
		}
	})

	t.Run("groups", func(t *testing.T) {
		if _, err := uc.CreateGroup(ctx, sc, calendar.GroupInput{Name: "  "}); !errors.Is(err, calendar.ErrEmptyGroupName) {
			t.Errorf("expected ErrEmptyGroupName, got %v", err)
		}
		grp, err := uc.CreateGroup(ctx, sc, calendar.GroupInput{Name: "Everything", CalendarIDs: []string{"c1", "c2", "c1", "ghost"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(grp.Group.CalendarIDs) != 2 || !grp.Visible {
			t.Errorf("unexpected group %+v", grp)
		}

		toggled, err := uc.ToggleGroup(ctx, sc, grp.Group.ID)
		if err != nil || toggled.Visible || toggled.PartiallyVisible {
			t.Fatalf("expected group hidden, got %+v %v", toggled, err)
		}
		events, _ := uc.ListEvents(ctx, sc, calendar.ListEventsInput{})
		if len(events) != 0 {
			t.Errorf("expected no visible events, got %d", len(events))
		}

		updated, err := uc.UpdateGroup(ctx, sc, calendar.GroupInput{ID: grp.Group.ID, Name: "Renamed"})
		if err != nil || updated.Group.Name != "Renamed" || len(updated.Group.CalendarIDs) != 2 {
			t.Errorf("unexpected update %+v %v", updated, err)
		}
		if err := uc.DeleteGroup(ctx, sc, grp.Group.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.DeleteGroup(ctx, sc, grp.Group.ID); !errors.Is(err, calendar.ErrGroupNotFound) {
			t.Errorf("expected ErrGroupNotFound, got %v", err)
		}
		if _, err := uc.ToggleGroup(ctx, sc, grp.Group.ID); !errors.Is(err, calendar.ErrGroupNotFound) {
			t.Errorf("expected ErrGroupNotFound, got %v", err)
		}
	})
}

func TestExportAndLogout(t *testing.T) {
	uc, sc := newTestUseCase(t)
	ctx := context.Background()

	out, err := uc.ExportICS(ctx, sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := string(out.Content)
	for _, want := range []string{"BEGIN:VCALENDAR", "SUMMARY:Standup", "UID:c2/e3", "END:VCALENDAR"} {
		if !strings.Contains(body, want) {
			t.Errorf("export missing %q", want)
		}
	}
	if out.Filename != "calendar-20240506.ics" {
		t.Errorf("unexpected filename %s", out.Filename)
	}

	if !uc.Logout(ctx, sc) {
		t.Errorf("expected a live session to end")
	}
	if uc.Logout(ctx, sc) {
		t.Errorf("second logout should find no session")
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("short query returns nothing", func(t *testing.T) {
		uc, sc := newTestUseCase(t)
		out, err := uc.Search(ctx, sc, calendar.SearchInput{Query: " s "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Events == nil || out.Calendars == nil || len(out.Events)+len(out.Calendars) != 0 {
			t.Errorf("expected empty lists, got %+v", out)
		}
	})

	t.Run("matches titles and calendar names case-insensitively", func(t *testing.T) {
		uc, sc := newTestUseCase(t)
		out, err := uc.Search(ctx, sc, calendar.SearchInput{Query: "REVIEW"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Events) != 1 || out.Events[0].ID != "e2" {
			t.Errorf("expected e2, got %+v", out.Events)
		}

		out, _ = uc.Search(ctx, sc, calendar.SearchInput{Query: "tea"})
		if len(out.Calendars) != 1 || out.Calendars[0].ID != "c2" || !out.Calendars[0].IsShared {
			t.Errorf("expected shared calendar c2, got %+v", out.Calendars)
		}
	})

	t.Run("ignores visibility filters", func(t *testing.T) {
		uc, sc := newTestUseCase(t)
		hidden := false
		if _, err := uc.SetVisibility(ctx, sc, calendar.SetVisibilityInput{CalendarID: "c2", Visible: &hidden}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, _ := uc.Search(ctx, sc, calendar.SearchInput{Query: "lunch"})
		if len(out.Events) != 1 || out.Events[0].ID != "e3" {
			t.Errorf("expected hidden calendar's event, got %+v", out.Events)
		}
	})

	t.Run("matches descriptions, sorts by start and caps results", func(t *testing.T) {
		var events []model.Event
		for i := 0; i < SearchLimit+2; i++ {
			start := at(20-i, 0)
			events = append(events, model.Event{
				ID:          fmt.Sprintf("e%d", i),
				Title:       "Block",
				Description: "weekly planning",
				Start:       start,
				End:         start.Add(30 * time.Minute),
			})
		}
		uc := newUseCaseWith(t, &fakeRepo{
			calendars: []model.Calendar{{ID: "c1", Name: "Work", IsDefault: true}},
			events:    map[string][]model.Event{"c1": events},
		})
		out, err := uc.Search(ctx, model.Scope{UserID: "u2"}, calendar.SearchInput{Query: "Planning"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Events) != SearchLimit {
			t.Fatalf("expected %d events, got %d", SearchLimit, len(out.Events))
		}
		for i := 1; i < len(out.Events); i++ {
			if out.Events[i].Start.Before(out.Events[i-1].Start) {
				t.Fatalf("events not sorted by start at %d", i)
			}
		}
		if out.Events[0].ID != fmt.Sprintf("e%d", SearchLimit+1) {
			t.Errorf("expected earliest event first, got %s", out.Events[0].ID)
		}
	})
}

func TestRenderICSAllDay(t *testing.T) {
	category := model.CategoryTravel
	body := renderICS([]model.Event{{
		ID:         "trip",
		CalendarID: "c1",
		Title:      "Trip",
		Start:      day,
		End:        day,
		AllDay:     true,
		Category:   &category,
		Meeting: &model.Meeting{
			Link:      "https://meet.google.com/abc",
			Attendees: []model.Attendee{{Email: "a@x.io", Status: model.AttendeeAccepted}},
		},
		Reminders: []model.Reminder{{Minutes: 15}},
	}}, day)

	for _, want := range []string{"DTSTART;VALUE=DATE:20240506", "DTEND;VALUE=DATE:20240507", "CATEGORIES:travel", "PARTSTAT=ACCEPTED", "TRIGGER:-PT15M"} {
		if !strings.Contains(body, want) {
			t.Errorf("all-day export missing %q in\n%s", want, body)
		}
	}
}
