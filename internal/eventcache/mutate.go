package eventcache

import "shared-calendar/internal/model"

// AppendEvent adds ev to its calendar entry and to the committed aggregate.
// An event with the same id is replaced, so repeating the call is harmless.
// A calendar without an entry gets one that is immediately stale.
func (c *Cache) AppendEvent(ev model.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entries[ev.CalendarID]
	if e == nil {
		e = &entry{}
		c.entries[ev.CalendarID] = e
	}
	e.events = upsert(e.events, ev)
	e.ready = true
	c.record(mutation{calendarID: ev.CalendarID, eventID: ev.ID, event: &ev})

	if c.committed {
		c.all = upsert(c.all, ev)
	}
}

// RemoveEvent deletes an event from its calendar entry and the aggregate.
// It reports whether anything was removed.
func (c *Cache) RemoveEvent(calendarID, eventID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	var fromEntry, fromAll bool
	if e := c.entries[calendarID]; e != nil {
		e.events, fromEntry = without(e.events, calendarID, eventID)
	}
	c.all, fromAll = without(c.all, calendarID, eventID)
	c.record(mutation{calendarID: calendarID, eventID: eventID})
	return fromEntry || fromAll
}

// DropCalendar forgets a calendar entirely. Unknown ids are ignored.
func (c *Cache) DropCalendar(calendarID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, calendarID)
	c.all = withoutCalendar(c.all, calendarID)
}

// Reset empties the cache. Loads still in flight finish but are not committed.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = map[string]*entry{}
	c.all = nil
	c.committed = false
	c.batch = nil
	c.gen++
	c.journal = nil
}

// mutation is a journaled AppendEvent (event set) or RemoveEvent.
type mutation struct {
	seq        uint64
	calendarID string
	eventID    string
	event      *model.Event
}

// beginLoad registers a load and returns the sequence it fetches after.
// Callers hold c.mu.
func (c *Cache) beginLoad() uint64 {
	c.loads++
	return c.seq
}

// endLoad unregisters a load; the journal is dropped once no load needs it.
// Callers hold c.mu.
func (c *Cache) endLoad() {
	c.loads--
	if c.loads == 0 {
		c.journal = nil
	}
}

// record journals m while any load is in flight. Callers hold c.mu.
func (c *Cache) record(m mutation) {
	c.seq++
	if c.loads == 0 {
		return
	}
	m.seq = c.seq
	c.journal = append(c.journal, m)
}

// replay applies the journaled mutations of calendarID newer than since to a
// freshly fetched list, so a fetch that raced a mutation cannot undo it.
// Callers hold c.mu.
func (c *Cache) replay(events []model.Event, calendarID string, since uint64) []model.Event {
	for _, m := range c.journal {
		if m.seq <= since || m.calendarID != calendarID {
			continue
		}
		if m.event != nil {
			events = upsert(events, *m.event)
		} else {
			events, _ = without(events, calendarID, m.eventID)
		}
	}
	return events
}

func upsert(events []model.Event, ev model.Event) []model.Event {
	out := make([]model.Event, 0, len(events)+1)
	replaced := false
	for _, cur := range events {
		if cur.ID == ev.ID && cur.CalendarID == ev.CalendarID {
			out = append(out, ev)
			replaced = true
			continue
		}
		out = append(out, cur)
	}
	if !replaced {
		out = append(out, ev)
	}
	return out
}

func without(events []model.Event, calendarID, eventID string) ([]model.Event, bool) {
	out := make([]model.Event, 0, len(events))
	removed := false
	for _, ev := range events {
		if ev.ID == eventID && ev.CalendarID == calendarID {
			removed = true
			continue
		}
		out = append(out, ev)
	}
	return out, removed
}
