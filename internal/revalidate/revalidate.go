package revalidate

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"shared-calendar/internal/eventcache"
	pkgLog "shared-calendar/pkg/log"
)

const (
	DefaultSchedule = "@every 1m"
	runTimeout      = 50 * time.Second
	maxConcurrent   = 4
)

// CacheSource lists the caches of the live sessions.
type CacheSource interface {
	Caches() []*eventcache.Cache
}

// Revalidator periodically refreshes stale calendar entries so readers keep
// getting fresh data without waiting on a fetch.
type Revalidator struct {
	l      pkgLog.Logger
	source CacheSource
	cron   *cron.Cron
}

// New schedules the revalidation job. schedule accepts standard five-field
// cron expressions and descriptors such as "@every 1m".
func New(l pkgLog.Logger, source CacheSource, schedule string) (*Revalidator, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	r := &Revalidator{
		l:      l,
		source: source,
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
	if _, err := r.cron.AddFunc(schedule, r.tick); err != nil {
		return nil, fmt.Errorf("revalidate: invalid schedule %q: %w", schedule, err)
	}
	return r, nil
}

func (r *Revalidator) Start() {
	r.cron.Start()
}

// Stop stops the scheduler and waits for a running job until ctx ends.
func (r *Revalidator) Stop(ctx context.Context) {
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (r *Revalidator) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if n := r.RunOnce(ctx); n > 0 {
		r.l.Debugf(ctx, "revalidate: refreshed %d stale calendars", n)
	}
}

// RunOnce force-reloads every stale calendar of every live cache and returns
// how many calendars were refreshed.
func (r *Revalidator) RunOnce(ctx context.Context) int {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	refreshed := 0
	for _, c := range r.source.Caches() {
		for _, id := range c.StaleCalendars() {
			refreshed++
			g.Go(func() error {
				c.LoadOne(gctx, id, true)
				return nil
			})
		}
	}
	_ = g.Wait()
	return refreshed
}
