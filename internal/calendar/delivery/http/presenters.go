package http

import (
	"fmt"
	"time"

	"shared-calendar/internal/calendar"
	"shared-calendar/internal/layout"
	"shared-calendar/internal/model"
	"shared-calendar/pkg/response"
)

// --- Request DTOs ---

type createCalendarReq struct {
	Name      string `json:"name"      binding:"required,max=255"`
	Color     string `json:"color"     binding:"omitempty,hexcolor"`
	IsDefault bool   `json:"isDefault"`
}

func (r createCalendarReq) toInput() model.CalendarInput {
	return model.CalendarInput{Name: r.Name, Color: r.Color, IsDefault: r.IsDefault}
}

type shareReq struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"  binding:"omitempty,oneof=viewer editor"`
}

func (r shareReq) toInput(calendarID string) model.ShareInput {
	return model.ShareInput{CalendarID: calendarID, Email: r.Email, Role: model.Role(r.Role)}
}

type forceQuery struct {
	Force bool `form:"force"`
}

type attendeeReq struct {
	Email  string `json:"email"  binding:"required,email"`
	Name   string `json:"name"`
	Status string `json:"status" binding:"omitempty,oneof=pending accepted declined tentative"`
}

type meetingReq struct {
	Platform  string        `json:"platform"  binding:"omitempty,oneof=zoom teams meet other"`
	Link      string        `json:"link"      binding:"omitempty,url"`
	Attendees []attendeeReq `json:"attendees" binding:"omitempty,dive"`
}

type reminderReq struct {
	Minutes int `json:"time" binding:"min=0"`
}

type createEventReq struct {
	Title       string        `json:"title"       binding:"required,max=255"`
	Description string        `json:"description" binding:"max=5000"`
	Start       time.Time     `json:"start"       binding:"required"`
	End         time.Time     `json:"end"         binding:"required"`
	AllDay      bool          `json:"allDay"`
	Category    string        `json:"category"`
	Meeting     *meetingReq   `json:"meeting"`
	Reminders   []reminderReq `json:"reminders"   binding:"omitempty,dive"`
}

func (r createEventReq) validate() error {
	if r.Category != "" && !model.Category(r.Category).Valid() {
		return calendar.ErrInvalidCategory
	}
	return nil
}

func (r createEventReq) toInput(calendarID string) calendar.CreateEventInput {
	in := model.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Start:       r.Start,
		End:         r.End,
		AllDay:      r.AllDay,
	}
	if r.Category != "" {
		cat := model.Category(r.Category)
		in.Category = &cat
	}
	if r.Meeting != nil {
		m := &model.Meeting{Platform: model.MeetingPlatform(r.Meeting.Platform), Link: r.Meeting.Link}
		for _, a := range r.Meeting.Attendees {
			m.Attendees = append(m.Attendees, model.Attendee{Email: a.Email, Name: a.Name, Status: model.AttendeeStatus(a.Status)})
		}
		in.Meeting = m
	}
	for _, rem := range r.Reminders {
		in.Reminders = append(in.Reminders, model.Reminder{Minutes: rem.Minutes})
	}
	return calendar.CreateEventInput{CalendarID: calendarID, Event: in}
}

type dayLayoutQuery struct {
	Date  string  `form:"date"`
	TZ    string  `form:"tz"`
	Width float64 `form:"width" binding:"min=0"`
}

type weekLayoutQuery struct {
	Start string `form:"start"`
	TZ    string `form:"tz"`
}

type searchQuery struct {
	Q string `form:"q" binding:"max=200"`
}

type visibilityReq struct {
	Visible *bool `json:"visible"`
}

type groupReq struct {
	Name        string   `json:"name"        binding:"max=255"`
	Color       string   `json:"color"       binding:"omitempty,hexcolor"`
	CalendarIDs []string `json:"calendarIds"`
}

func (r groupReq) toInput(id string) calendar.GroupInput {
	return calendar.GroupInput{ID: id, Name: r.Name, Color: r.Color, CalendarIDs: r.CalendarIDs}
}

// --- Response DTOs ---

type calendarResp struct {
	model.Calendar
	Visible bool `json:"visible"`
}

func newCalendarResps(views []calendar.CalendarView) []calendarResp {
	out := make([]calendarResp, len(views))
	for i, v := range views {
		out[i] = calendarResp{Calendar: v.Calendar, Visible: v.Visible}
	}
	return out
}

type listCalendarsResp struct {
	Owned  []calendarResp `json:"owned"`
	Shared []calendarResp `json:"shared"`
}

func (h *handler) newListCalendarsResp(out calendar.ListCalendarsOutput) listCalendarsResp {
	return listCalendarsResp{Owned: newCalendarResps(out.Owned), Shared: newCalendarResps(out.Shared)}
}

type eventsResp struct {
	Events []model.Event `json:"events"`
	Count  int           `json:"count"`
}

func (h *handler) newEventsResp(events []model.Event) eventsResp {
	if events == nil {
		events = []model.Event{}
	}
	return eventsResp{Events: events, Count: len(events)}
}

type searchResp struct {
	Events    []model.Event    `json:"events"`
	Calendars []model.Calendar `json:"calendars"`
}

func newSearchResp(out calendar.SearchOutput) searchResp {
	resp := searchResp{Events: out.Events, Calendars: out.Calendars}
	if resp.Events == nil {
		resp.Events = []model.Event{}
	}
	if resp.Calendars == nil {
		resp.Calendars = []model.Calendar{}
	}
	return resp
}

type placedEventResp struct {
	Event        model.Event `json:"event"`
	Column       int         `json:"column"`
	TotalColumns int         `json:"totalColumns"`
	Box          layout.Box  `json:"box"`
}

type dayResp struct {
	Date   string            `json:"date"`
	AllDay []model.Event     `json:"allDay"`
	Timed  []placedEventResp `json:"timed"`
}

func newDayResp(out calendar.DayLayoutOutput) dayResp {
	resp := dayResp{
		Date:   out.Day.Format(response.DateFormat),
		AllDay: out.AllDay,
		Timed:  make([]placedEventResp, len(out.Timed)),
	}
	if resp.AllDay == nil {
		resp.AllDay = []model.Event{}
	}
	for i, p := range out.Timed {
		resp.Timed[i] = placedEventResp{
			Event:        p.Event,
			Column:       p.Position.Column,
			TotalColumns: p.Position.TotalColumns,
			Box:          p.Box,
		}
	}
	return resp
}

type weekResp struct {
	Start string    `json:"start"`
	Days  []dayResp `json:"days"`
}

func (h *handler) newWeekResp(out calendar.WeekLayoutOutput) weekResp {
	days := make([]dayResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = newDayResp(d)
	}
	return weekResp{Start: out.Start.Format(response.DateFormat), Days: days}
}

type visibilityResp struct {
	CalendarID string `json:"calendarId"`
	Visible    bool   `json:"visible"`
}

type categoriesResp struct {
	Selected []string `json:"selected"`
}

func (h *handler) newCategoriesResp(out calendar.CategoriesOutput) categoriesResp {
	if out.Selected == nil {
		out.Selected = []string{}
	}
	return categoriesResp{Selected: out.Selected}
}

type groupResp struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Color            string   `json:"color"`
	CalendarIDs      []string `json:"calendarIds"`
	CreatedAt        string   `json:"createdAt"`
	Visible          bool     `json:"visible"`
	PartiallyVisible bool     `json:"partiallyVisible"`
}

func newGroupResp(v calendar.GroupView) groupResp {
	ids := v.Group.CalendarIDs
	if ids == nil {
		ids = []string{}
	}
	return groupResp{
		ID:               v.Group.ID,
		Name:             v.Group.Name,
		Color:            v.Group.Color,
		CalendarIDs:      ids,
		CreatedAt:        v.Group.CreatedAt,
		Visible:          v.Visible,
		PartiallyVisible: v.PartiallyVisible,
	}
}

func (h *handler) newGroupsResp(views []calendar.GroupView) []groupResp {
	out := make([]groupResp, len(views))
	for i, v := range views {
		out[i] = newGroupResp(v)
	}
	return out
}

func attachment(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}
