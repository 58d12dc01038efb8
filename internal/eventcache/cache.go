package eventcache

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"shared-calendar/internal/model"
	pkgLog "shared-calendar/pkg/log"
)

// Cache holds the events of one user's calendars: a list per calendar plus
// the merged aggregate. Readers always see a fully committed state.
type Cache struct {
	l           pkgLog.Logger
	fetcher     Fetcher
	source      CalendarSource
	ttl         time.Duration
	concurrency int
	now         func() time.Time

	mu        sync.Mutex
	entries   map[string]*entry
	all       []model.Event
	committed bool
	batch     *flight
	gen       uint64

	// Mutations applied while loads are in flight are journaled so a load
	// that fetched before them can replay them on commit.
	seq     uint64
	loads   int
	journal []mutation

	bg sync.WaitGroup
}

// New creates an empty cache reading calendars from source.
func New(l pkgLog.Logger, fetcher Fetcher, source CalendarSource, opts Options) *Cache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Cache{
		l:           l,
		fetcher:     fetcher,
		source:      source,
		ttl:         opts.TTL,
		concurrency: opts.Concurrency,
		now:         opts.Now,
		entries:     map[string]*entry{},
	}
}

// TTL returns the freshness window of a calendar entry.
func (c *Cache) TTL() time.Duration { return c.ttl }

// LoadAll returns the aggregate event list. Without force it joins a batch
// already in flight or returns the committed aggregate when it is non-empty.
// Otherwise it fetches every calendar in parallel and commits the merged
// result. A caller whose ctx ends early gets the last committed aggregate; the
// batch itself always runs to completion.
func (c *Cache) LoadAll(ctx context.Context, force bool) []model.Event {
	c.mu.Lock()
	if !force {
		if f := c.batch; f != nil {
			c.mu.Unlock()
			return c.waitAll(ctx, f)
		}
		if len(c.all) > 0 {
			out := clone(c.all)
			c.mu.Unlock()
			return out
		}
	}

	f := newFlight()
	c.batch = f
	gen := c.gen
	since := c.beginLoad()
	cals := c.source.Calendars()
	c.mu.Unlock()

	c.bg.Add(1)
	go func() {
		defer c.bg.Done()
		c.runBatch(context.WithoutCancel(ctx), f, gen, since, cals)
	}()
	return c.waitAll(ctx, f)
}

func (c *Cache) runBatch(ctx context.Context, f *flight, gen, since uint64, cals []model.Calendar) {
	fetched := make([][]model.Event, len(cals))
	ok := make([]bool, len(cals))

	g := new(errgroup.Group)
	g.SetLimit(c.concurrency)
	for i, cal := range cals {
		g.Go(func() error {
			events, err := c.fetcher.ListEvents(ctx, cal.ID)
			if err != nil {
				c.l.Warnf(ctx, "eventcache.runBatch: calendar %s: %v", cal.ID, err)
				return nil
			}
			fetched[i] = Enrich(events, cal)
			ok[i] = true
			return nil
		})
	}
	_ = g.Wait()

	now := c.now()
	c.mu.Lock()
	defer close(f.done)
	defer c.mu.Unlock()
	defer c.endLoad()

	if c.batch == f {
		c.batch = nil
	}
	if gen != c.gen {
		f.events = clone(c.all)
		return
	}

	merged := make([]model.Event, 0)
	for i, cal := range cals {
		if _, live := c.source.Lookup(cal.ID); !live {
			continue
		}
		e := c.entries[cal.ID]
		if ok[i] {
			if e == nil {
				e = &entry{}
				c.entries[cal.ID] = e
			}
			e.events = c.replay(fetched[i], cal.ID, since)
			e.loadedAt = now
			e.ready = true
		}
		if e != nil && e.ready {
			merged = append(merged, e.events...)
		}
	}

	c.all = merged
	c.committed = true
	f.events = merged
}

func (c *Cache) waitAll(ctx context.Context, f *flight) []model.Event {
	select {
	case <-f.done:
		return clone(f.events)
	case <-ctx.Done():
		return c.Snapshot()
	}
}

// LoadOne returns the events of one calendar. A fresh entry is returned
// without I/O unless force is set. Concurrent loads of the same calendar share
// one fetch. When the fetch fails the last known events are returned.
func (c *Cache) LoadOne(ctx context.Context, calendarID string, force bool) []model.Event {
	c.mu.Lock()
	e := c.entries[calendarID]
	if !force && e != nil {
		if e.ready && c.now().Sub(e.loadedAt) < c.ttl {
			out := clone(e.events)
			c.mu.Unlock()
			return out
		}
		if f := e.loading; f != nil {
			c.mu.Unlock()
			return c.waitOne(ctx, f, calendarID)
		}
	}

	if e == nil {
		e = &entry{}
		c.entries[calendarID] = e
	}
	f := newFlight()
	e.loading = f
	gen := c.gen
	since := c.beginLoad()
	c.mu.Unlock()

	c.bg.Add(1)
	go func() {
		defer c.bg.Done()
		c.runOne(context.WithoutCancel(ctx), calendarID, e, f, gen, since)
	}()
	return c.waitOne(ctx, f, calendarID)
}

func (c *Cache) runOne(ctx context.Context, calendarID string, e *entry, f *flight, gen, since uint64) {
	events, err := c.fetcher.ListEvents(ctx, calendarID)
	cal, known := c.source.Lookup(calendarID)
	if err == nil {
		events = Enrich(events, cal)
	}

	now := c.now()
	c.mu.Lock()
	defer close(f.done)
	defer c.mu.Unlock()
	defer c.endLoad()

	if e.loading == f {
		e.loading = nil
	}
	live := gen == c.gen && c.entries[calendarID] == e

	if err != nil {
		c.l.Warnf(ctx, "eventcache.runOne: calendar %s: %v", calendarID, err)
		if live && e.ready {
			f.events = e.events
		}
		if live && !e.ready {
			delete(c.entries, calendarID)
		}
		return
	}

	events = c.replay(events, calendarID, since)
	f.events = events
	if !live {
		return
	}
	if !known {
		if !e.ready {
			delete(c.entries, calendarID)
		}
		return
	}

	e.events = events
	e.loadedAt = now
	e.ready = true
	if c.committed {
		c.all = replaceCalendar(c.all, calendarID, events)
	}
}

func (c *Cache) waitOne(ctx context.Context, f *flight, calendarID string) []model.Event {
	select {
	case <-f.done:
		return clone(f.events)
	case <-ctx.Done():
		c.mu.Lock()
		defer c.mu.Unlock()
		if e := c.entries[calendarID]; e != nil && e.ready {
			return clone(e.events)
		}
		return []model.Event{}
	}
}

// Snapshot returns the last committed aggregate without blocking.
func (c *Cache) Snapshot() []model.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.all)
}

// Peek returns the cached events of one calendar without blocking. A stale
// entry is returned as is and a background refresh is started for it.
func (c *Cache) Peek(calendarID string) ([]model.Event, Freshness) {
	c.mu.Lock()
	e := c.entries[calendarID]
	if e == nil || !e.ready {
		c.mu.Unlock()
		return []model.Event{}, Missing
	}
	out := clone(e.events)
	if c.now().Sub(e.loadedAt) < c.ttl {
		c.mu.Unlock()
		return out, Fresh
	}
	revalidate := e.loading == nil
	c.mu.Unlock()

	if revalidate {
		c.bg.Add(1)
		go func() {
			defer c.bg.Done()
			c.LoadOne(context.Background(), calendarID, false)
		}()
	}
	return out, Stale
}

// StaleCalendars lists the ready calendars whose entry is older than the TTL
// and that have no load in flight.
func (c *Cache) StaleCalendars() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	var ids []string
	for id, e := range c.entries {
		if e.ready && e.loading == nil && now.Sub(e.loadedAt) >= c.ttl {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Wait blocks until every background load started by the cache has finished.
func (c *Cache) Wait() {
	c.bg.Wait()
}
