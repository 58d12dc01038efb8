package layout

import (
	"time"

	"shared-calendar/internal/model"
)

// Placed is a timed event with its column inside its overlap group.
type Placed struct {
	Event        model.Event
	Column       int
	TotalColumns int
}

// Position is the column assignment of one event.
type Position struct {
	Column       int `json:"column"`
	TotalColumns int `json:"totalColumns"`
}

// DayLayout holds the events of one day split into the all-day strip and
// the column-packed timed lane.
type DayLayout struct {
	Day    time.Time
	AllDay []model.Event
	Timed  []Placed
}

// Box is the rendered rectangle of a timed event. Units depend on the geometry
// that produced it: pixels for the day view, percentages for the week view.
type Box struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	ZIndex int     `json:"zIndex"`
}
