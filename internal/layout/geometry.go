package layout

import "time"

// DayGeometry maps a placed event onto the day view in pixels.
type DayGeometry struct {
	HourHeight float64 // px per hour
	MinHeight  float64 // px, keeps short events clickable
	LaneOffset float64 // px left of the lane taken by the hour labels
	Gutter     float64 // px between neighbouring columns
}

// DefaultDayGeometry matches the day view grid.
var DefaultDayGeometry = DayGeometry{
	HourHeight: 80,
	MinHeight:  40,
	LaneOffset: 70,
	Gutter:     4,
}

// Box positions p inside a lane laneWidth pixels wide. dayStart is the local
// midnight the vertical axis is measured from.
func (g DayGeometry) Box(p Placed, dayStart time.Time, laneWidth float64) Box {
	total := p.TotalColumns
	if total < 1 {
		total = 1
	}
	colWidth := laneWidth / float64(total)

	return Box{
		Top:    minutesBetween(dayStart, p.Event.Start) / 60 * g.HourHeight,
		Height: g.height(p),
		Left:   g.LaneOffset + colWidth*float64(p.Column),
		Width:  max(colWidth-g.Gutter, 0),
		ZIndex: p.Column + 1,
	}
}

func (g DayGeometry) height(p Placed) float64 {
	minutes := max(minutesBetween(p.Event.Start, p.Event.End), 0)
	return max(minutes/60*g.HourHeight, g.MinHeight)
}

// WeekGeometry maps a placed event onto the week grid in percent of the row.
// The first of the eight lanes holds the hour labels.
type WeekGeometry struct {
	HourHeight float64 // px per hour
	MinHeight  float64 // px
	DayLane    float64 // percent of the row per day
	Gap        float64 // percent between neighbouring columns
}

// DefaultWeekGeometry matches the week view grid.
var DefaultWeekGeometry = WeekGeometry{
	HourHeight: 64,
	MinHeight:  24,
	DayLane:    100.0 / 8,
	Gap:        0.3,
}

// Box positions p in the lane of weekday dayIndex (0..6).
func (g WeekGeometry) Box(p Placed, dayStart time.Time, dayIndex int) Box {
	total := p.TotalColumns
	if total < 1 {
		total = 1
	}
	colWidth := g.DayLane / float64(total)
	minutes := max(minutesBetween(p.Event.Start, p.Event.End), 0)

	return Box{
		Top:    minutesBetween(dayStart, p.Event.Start) / 60 * g.HourHeight,
		Height: max(minutes/60*g.HourHeight, g.MinHeight),
		Left:   float64(dayIndex+1)*g.DayLane + colWidth*float64(p.Column),
		Width:  max(colWidth-g.Gap, 0),
		ZIndex: p.Column + 1,
	}
}

func minutesBetween(from, to time.Time) float64 {
	return to.Sub(from).Minutes()
}
