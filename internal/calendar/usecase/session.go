package usecase

import (
	"context"

	"shared-calendar/internal/model"
)

// Logout discards the user's session. Persisted preferences survive.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) bool {
	ended := uc.sessions.End(sc.UserID)
	uc.l.Infof(ctx, "uc.Logout %s: session live=%v", sc.UserID, ended)
	return ended
}
