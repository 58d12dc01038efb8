package usecase

import (
	"context"
	"time"

	"shared-calendar/internal/calendar"
	"shared-calendar/internal/layout"
	"shared-calendar/internal/model"
	"shared-calendar/pkg/datemath"
)

// DayLayout packs the visible events of one day and computes their boxes.
func (uc *implUseCase) DayLayout(ctx context.Context, sc model.Scope, input calendar.DayLayoutInput) (calendar.DayLayoutOutput, error) {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return calendar.DayLayoutOutput{}, err
	}
	loc := uc.location(input.Location)
	date := input.Date
	if date.IsZero() {
		date = uc.now()
	}
	width := input.LaneWidth
	if width <= 0 {
		width = DefaultLaneWidth
	}

	day := layout.Day(visibleEvents(ctx, s, false), date, loc)
	out := calendar.DayLayoutOutput{Day: day.Day, AllDay: day.AllDay}
	for _, p := range day.Timed {
		out.Timed = append(out.Timed, calendar.PlacedEvent{
			Event:    p.Event,
			Position: layout.Position{Column: p.Column, TotalColumns: p.TotalColumns},
			Box:      layout.DefaultDayGeometry.Box(p, day.Day, width),
		})
	}
	return out, nil
}

// WeekLayout packs the visible events of seven days. A zero start means the
// week containing today, starting on Sunday.
func (uc *implUseCase) WeekLayout(ctx context.Context, sc model.Scope, input calendar.WeekLayoutInput) (calendar.WeekLayoutOutput, error) {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return calendar.WeekLayoutOutput{}, err
	}
	loc := uc.location(input.Location)
	start := input.Start
	if start.IsZero() {
		start = datemath.NewParser(loc).StartOfWeek(uc.now())
	}

	days := layout.Week(visibleEvents(ctx, s, false), start, loc)
	out := calendar.WeekLayoutOutput{Start: layout.StartOfDay(start, loc), Days: make([]calendar.DayLayoutOutput, len(days))}
	for i, d := range days {
		dayOut := calendar.DayLayoutOutput{Day: d.Day, AllDay: d.AllDay}
		for _, p := range d.Timed {
			dayOut.Timed = append(dayOut.Timed, calendar.PlacedEvent{
				Event:    p.Event,
				Position: layout.Position{Column: p.Column, TotalColumns: p.TotalColumns},
				Box:      layout.DefaultWeekGeometry.Box(p, d.Day, i),
			})
		}
		out.Days[i] = dayOut
	}
	return out, nil
}

func (uc *implUseCase) location(loc *time.Location) *time.Location {
	if loc != nil {
		return loc
	}
	return uc.loc
}
