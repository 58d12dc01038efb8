package eventcache

import (
	"time"

	"shared-calendar/internal/model"
)

const (
	DefaultTTL         = 5 * time.Minute
	DefaultConcurrency = 8
)

// Freshness describes a calendar entry returned by Peek.
type Freshness int

const (
	Missing Freshness = iota
	Stale
	Fresh
)

func (f Freshness) String() string {
	switch f {
	case Fresh:
		return "fresh"
	case Stale:
		return "stale"
	default:
		return "missing"
	}
}

// Options configures a Cache. Zero values select the defaults.
type Options struct {
	TTL         time.Duration
	Concurrency int
	Now         func() time.Time
}

// flight is a pending load shared by every caller that coalesces onto it.
// events is written once before done is closed.
type flight struct {
	done   chan struct{}
	events []model.Event
}

func newFlight() *flight {
	return &flight{done: make(chan struct{})}
}

// entry is the per-calendar state. ready entries hold a usable event list;
// loading is set while a fetch for the calendar is in flight.
type entry struct {
	events   []model.Event
	loadedAt time.Time
	ready    bool
	loading  *flight
}
