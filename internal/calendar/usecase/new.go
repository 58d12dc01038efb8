package usecase

import (
	"context"
	"time"

	"shared-calendar/internal/calendar"
	"shared-calendar/internal/model"
	"shared-calendar/internal/session"
	"shared-calendar/pkg/log"
)

// DefaultLaneWidth is the day view lane width in pixels when the caller sends none.
const DefaultLaneWidth = 600

// Sessions resolves the live state of a signed-in user.
type Sessions interface {
	Get(ctx context.Context, sc model.Scope) (*session.Session, error)
	End(userID string) bool
}

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	l        log.Logger
	sessions Sessions
	loc      *time.Location
	now      func() time.Time
}

var _ calendar.UseCase = (*implUseCase)(nil)

// New creates a calendar UseCase. loc is the zone days are cut in when a
// request names none.
func New(l log.Logger, sessions Sessions, loc *time.Location) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:        l,
		sessions: sessions,
		loc:      loc,
		now:      time.Now,
	}
}

func (uc *implUseCase) session(ctx context.Context, sc model.Scope) (*session.Session, error) {
	s, err := uc.sessions.Get(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "uc.session %s: %v", sc.UserID, err)
		return nil, err
	}
	return s, nil
}
