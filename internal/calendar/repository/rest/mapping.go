package rest

import (
	"shared-calendar/internal/model"
	"shared-calendar/pkg/calendarapi"
)

func toCalendar(c calendarapi.Calendar) model.Calendar {
	return model.Calendar{
		ID:        c.ID,
		Name:      c.Name,
		OwnerID:   c.User.ID,
		OwnerName: c.User.Name,
		IsDefault: c.IsDefault,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
	}
}

func toEvent(e calendarapi.Event) model.Event {
	ev := model.Event{
		ID:          e.ID,
		CalendarID:  e.Calendar,
		Title:       e.Title,
		Description: e.Description,
		Start:       e.Start,
		End:         e.End,
		AllDay:      e.AllDay,
	}
	if cat := model.Category(e.Category); cat.Valid() {
		ev.Category = &cat
	}
	if e.Meeting != nil {
		m := &model.Meeting{
			Platform: model.MeetingPlatform(e.Meeting.Platform),
			Link:     e.Meeting.Link,
		}
		attendees := make([]model.Attendee, 0, len(e.Meeting.Attendees))
		for _, a := range e.Meeting.Attendees {
			attendees = append(attendees, model.Attendee{
				UserID: a.User,
				Email:  a.Email,
				Name:   a.Name,
				Status: model.AttendeeStatus(a.Status),
			})
		}
		m.Attendees = model.DedupAttendees(attendees)
		ev.Meeting = m
	}
	for _, r := range e.Reminders {
		ev.Reminders = append(ev.Reminders, model.Reminder{Minutes: r.Time, Sent: r.Sent})
	}
	return ev
}

func toEventRequest(in model.EventInput) calendarapi.EventRequest {
	req := calendarapi.EventRequest{
		Title:       in.Title,
		Description: in.Description,
		Start:       in.Start,
		End:         in.End,
		AllDay:      in.AllDay,
	}
	if in.Category != nil {
		req.Category = string(*in.Category)
	}
	if in.Meeting != nil {
		m := &calendarapi.Meeting{
			Platform: string(in.Meeting.Platform),
			Link:     in.Meeting.Link,
		}
		for _, a := range in.Meeting.Attendees {
			m.Attendees = append(m.Attendees, calendarapi.Attendee{
				User:   a.UserID,
				Email:  a.Email,
				Name:   a.Name,
				Status: string(a.Status),
			})
		}
		req.Meeting = m
	}
	for _, r := range in.Reminders {
		req.Reminders = append(req.Reminders, calendarapi.Reminder{Time: r.Minutes})
	}
	return req
}
