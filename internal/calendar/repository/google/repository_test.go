package google

import (
	"context"
	"errors"
	"testing"
	"time"

	"shared-calendar/internal/calendar/repository"
	"shared-calendar/internal/model"
	"shared-calendar/pkg/gcalendar"
	pkgLog "shared-calendar/pkg/log"
)

type mockSource struct {
	calendars []gcalendar.Calendar
	events    []gcalendar.Event
	lastReq   gcalendar.ListEventsRequest
}

func (m *mockSource) ListCalendars(ctx context.Context) ([]gcalendar.Calendar, error) {
	return m.calendars, nil
}

func (m *mockSource) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.lastReq = req
	return m.events, nil
}

func TestCalendarsAndShares(t *testing.T) {
	src := &mockSource{calendars: []gcalendar.Calendar{
		{ID: "me", Summary: "Me", Primary: true, AccessRole: "owner", BackgroundColor: "#fff000"},
		{ID: "team", Summary: "Team", AccessRole: "writer"},
		{ID: "hol", Summary: "Holidays", AccessRole: "reader"},
	}}
	repo := New(src, Options{}, pkgLog.NewNop())
	ctx := context.Background()

	owned, err := repo.ListCalendars(ctx, model.Scope{})
	if err != nil || len(owned) != 1 || !owned[0].IsDefault {
		t.Fatalf("unexpected owned calendars %+v %v", owned, err)
	}
	shares, err := repo.ListShares(ctx, model.Scope{})
	if err != nil || len(shares) != 2 {
		t.Fatalf("unexpected shares %+v %v", shares, err)
	}
	if shares[0].Role != model.RoleEditor || shares[1].Role != model.RoleViewer {
		t.Errorf("unexpected roles %s %s", shares[0].Role, shares[1].Role)
	}
}

func TestListEvents(t *testing.T) {
	now := time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)
	src := &mockSource{events: []gcalendar.Event{{
		ID:              "e1",
		Summary:         "Sync",
		StartTime:       now,
		EndTime:         now.Add(time.Hour),
		MeetingLink:     "https://us02web.zoom.us/j/123",
		Attendees:       []gcalendar.Attendee{{Email: "a@x.io", ResponseStatus: "needsAction"}},
		ReminderMinutes: []int{5},
	}}}
	repo := New(src, Options{LookBack: time.Hour, LookAhead: 2 * time.Hour, Now: func() time.Time { return now }}, pkgLog.NewNop())

	events, err := repo.ListEvents(context.Background(), model.Scope{}, "me")
	if err != nil || len(events) != 1 {
		t.Fatalf("unexpected events %+v %v", events, err)
	}
	ev := events[0]
	if ev.CalendarID != "me" || ev.Meeting.Platform != model.PlatformZoom || ev.Meeting.Attendees[0].Status != model.AttendeePending {
		t.Errorf("unexpected event %+v", ev)
	}
	if !src.lastReq.TimeMin.Equal(now.Add(-time.Hour)) || !src.lastReq.TimeMax.Equal(now.Add(2*time.Hour)) {
		t.Errorf("unexpected window %v..%v", src.lastReq.TimeMin, src.lastReq.TimeMax)
	}
}

func TestPlatformOf(t *testing.T) {
	tests := map[string]model.MeetingPlatform{
		"":                                "",
		"https://meet.google.com/abc":     model.PlatformMeet,
		"https://teams.microsoft.com/l/x": model.PlatformTeams,
		"https://example.com/room":        model.PlatformOther,
	}
	for link, want := range tests {
		if got := platformOf(link); got != want {
			t.Errorf("platformOf(%q) = %q, want %q", link, got, want)
		}
	}
}

func TestMutationsAreReadOnly(t *testing.T) {
	repo := New(&mockSource{}, Options{}, pkgLog.NewNop())
	ctx := context.Background()
	if _, err := repo.CreateEvent(ctx, model.Scope{}, repository.CreateEventOptions{}); !errors.Is(err, repository.ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
	if err := repo.DeleteCalendar(ctx, model.Scope{}, "x"); !errors.Is(err, repository.ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
	if _, err := repo.ShareCalendar(ctx, model.Scope{}, model.ShareInput{CalendarID: "x"}); !errors.Is(err, repository.ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
}
