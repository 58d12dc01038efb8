package google

import (
	"context"
	"net/url"
	"strings"
	"time"

	"shared-calendar/internal/calendar/repository"
	"shared-calendar/internal/model"
	"shared-calendar/pkg/gcalendar"
	pkgLog "shared-calendar/pkg/log"
)

const (
	DefaultLookBack  = 30 * 24 * time.Hour
	DefaultLookAhead = 180 * 24 * time.Hour
)

// Source lists calendars and events of one Google account.
type Source interface {
	ListCalendars(ctx context.Context) ([]gcalendar.Calendar, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Options bound the event window fetched per calendar.
type Options struct {
	LookBack  time.Duration
	LookAhead time.Duration
	Location  *time.Location
	Now       func() time.Time
}

type implRepository struct {
	source Source
	opts   Options
	l      pkgLog.Logger
}

// New creates a read-only repository over a Google account. Calendars the
// account owns are listed as owned, the rest as shares.
func New(source Source, opts Options, l pkgLog.Logger) repository.Repository {
	if opts.LookBack <= 0 {
		opts.LookBack = DefaultLookBack
	}
	if opts.LookAhead <= 0 {
		opts.LookAhead = DefaultLookAhead
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &implRepository{source: source, opts: opts, l: l}
}

func (r *implRepository) ListCalendars(ctx context.Context, sc model.Scope) ([]model.Calendar, error) {
	cals, err := r.source.ListCalendars(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Calendar
	for _, c := range cals {
		if c.AccessRole == "owner" {
			out = append(out, toCalendar(c))
		}
	}
	return out, nil
}

func (r *implRepository) ListShares(ctx context.Context, sc model.Scope) ([]model.Share, error) {
	cals, err := r.source.ListCalendars(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Share
	for _, c := range cals {
		if c.AccessRole == "owner" {
			continue
		}
		cal := toCalendar(c)
		out = append(out, model.Share{ID: c.ID, Role: roleOf(c.AccessRole), Calendar: &cal})
	}
	return out, nil
}

func (r *implRepository) ListEvents(ctx context.Context, sc model.Scope, calendarID string) ([]model.Event, error) {
	now := r.opts.Now()
	events, err := r.source.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    now.Add(-r.opts.LookBack),
		TimeMax:    now.Add(r.opts.LookAhead),
		Location:   r.opts.Location,
	})
	if err != nil {
		r.l.Warnf(ctx, "google repository: list events of %s: %v", calendarID, err)
		return nil, err
	}
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		out = append(out, toEvent(e, calendarID))
	}
	return out, nil
}

func (r *implRepository) CreateEvent(ctx context.Context, sc model.Scope, opt repository.CreateEventOptions) (model.Event, error) {
	return model.Event{}, repository.ErrReadOnly
}

func (r *implRepository) DeleteEvent(ctx context.Context, sc model.Scope, eventID string) error {
	return repository.ErrReadOnly
}

func (r *implRepository) CreateCalendar(ctx context.Context, sc model.Scope, input model.CalendarInput) (model.Calendar, error) {
	return model.Calendar{}, repository.ErrReadOnly
}

func (r *implRepository) DeleteCalendar(ctx context.Context, sc model.Scope, calendarID string) error {
	return repository.ErrReadOnly
}

func (r *implRepository) ShareCalendar(ctx context.Context, sc model.Scope, input model.ShareInput) (model.ShareInvite, error) {
	return model.ShareInvite{}, repository.ErrReadOnly
}

func toCalendar(c gcalendar.Calendar) model.Calendar {
	return model.Calendar{
		ID:        c.ID,
		Name:      c.Summary,
		IsDefault: c.Primary,
		Color:     c.BackgroundColor,
	}
}

func roleOf(accessRole string) model.Role {
	if accessRole == "writer" {
		return model.RoleEditor
	}
	return model.RoleViewer
}

func toEvent(e gcalendar.Event, calendarID string) model.Event {
	ev := model.Event{
		ID:          e.ID,
		CalendarID:  calendarID,
		Title:       e.Summary,
		Description: e.Description,
		Start:       e.StartTime,
		End:         e.EndTime,
		AllDay:      e.AllDay,
	}
	if e.MeetingLink != "" || len(e.Attendees) > 0 {
		m := &model.Meeting{Platform: platformOf(e.MeetingLink), Link: e.MeetingLink}
		attendees := make([]model.Attendee, 0, len(e.Attendees))
		for _, a := range e.Attendees {
			attendees = append(attendees, model.Attendee{Email: a.Email, Name: a.Name, Status: statusOf(a.ResponseStatus)})
		}
		m.Attendees = model.DedupAttendees(attendees)
		ev.Meeting = m
	}
	for _, minutes := range e.ReminderMinutes {
		ev.Reminders = append(ev.Reminders, model.Reminder{Minutes: minutes})
	}
	return ev
}

func platformOf(link string) model.MeetingPlatform {
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil {
		return model.PlatformOther
	}
	host := strings.ToLower(u.Hostname())
	switch {
	case strings.HasSuffix(host, "zoom.us"):
		return model.PlatformZoom
	case strings.HasSuffix(host, "teams.microsoft.com"), strings.HasSuffix(host, "teams.live.com"):
		return model.PlatformTeams
	case host == "meet.google.com":
		return model.PlatformMeet
	default:
		return model.PlatformOther
	}
}

func statusOf(responseStatus string) model.AttendeeStatus {
	switch responseStatus {
	case "accepted":
		return model.AttendeeAccepted
	case "declined":
		return model.AttendeeDeclined
	case "tentative":
		return model.AttendeeTentative
	default:
		return model.AttendeePending
	}
}
