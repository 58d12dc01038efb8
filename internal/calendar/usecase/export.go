package usecase

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"shared-calendar/internal/calendar"
	"shared-calendar/internal/model"
)

const productID = "-//shared-calendar//EN"

// ExportICS renders the visible event stream as an iCalendar document.
func (uc *implUseCase) ExportICS(ctx context.Context, sc model.Scope) (calendar.ExportOutput, error) {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return calendar.ExportOutput{}, err
	}
	events := visibleEvents(ctx, s, false)
	body := renderICS(events, uc.now())
	uc.l.Debugf(ctx, "uc.ExportICS: %d events for %s", len(events), sc.UserID)
	return calendar.ExportOutput{
		Filename: fmt.Sprintf("calendar-%s.ics", uc.now().In(uc.loc).Format("20060102")),
		Content:  []byte(body),
	}, nil
}

func renderICS(events []model.Event, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	for _, ev := range events {
		// Event ids are only unique per calendar.
		vev := cal.AddEvent(ev.CalendarID + "/" + ev.ID)
		vev.SetDtStampTime(stamp)
		vev.SetSummary(ev.Title)
		if ev.Description != "" {
			vev.SetDescription(ev.Description)
		}
		if ev.AllDay {
			vev.SetAllDayStartAt(ev.Start)
			end := ev.End
			if !end.After(ev.Start) {
				end = ev.Start.AddDate(0, 0, 1)
			}
			vev.SetAllDayEndAt(end)
		} else {
			vev.SetStartAt(ev.Start)
			vev.SetEndAt(ev.End)
		}
		if ev.Category != nil {
			vev.AddProperty(ics.ComponentPropertyCategories, string(*ev.Category))
		}
		if ev.CalendarName != "" {
			vev.SetLocation(ev.CalendarName)
		}
		if m := ev.Meeting; m != nil {
			if m.Link != "" {
				vev.SetURL(m.Link)
			}
			for _, a := range m.Attendees {
				params := []ics.PropertyParameter{partStat(a.Status)}
				if a.Name != "" {
					params = append(params, ics.WithCN(a.Name))
				}
				vev.AddAttendee(a.Email, params...)
			}
		}
		for _, r := range ev.Reminders {
			alarm := vev.AddAlarm()
			alarm.SetAction(ics.ActionDisplay)
			alarm.SetTrigger(fmt.Sprintf("-PT%dM", r.Minutes))
		}
	}
	return cal.Serialize()
}

func partStat(status model.AttendeeStatus) ics.ParticipationStatus {
	switch status {
	case model.AttendeeAccepted:
		return ics.ParticipationStatusAccepted
	case model.AttendeeDeclined:
		return ics.ParticipationStatusDeclined
	case model.AttendeeTentative:
		return ics.ParticipationStatusTentative
	default:
		return ics.ParticipationStatusNeedsAction
	}
}
