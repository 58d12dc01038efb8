package sync

import (
	"shared-calendar/internal/filter"
	pkgLog "shared-calendar/pkg/log"
)

// Synchronizer applies mutations to the backing store and keeps the cache
// and filter state of one user consistent with them.
type Synchronizer struct {
	l          pkgLog.Logger
	userID     string
	backend    Backend
	registry   Registry
	cache      Cache
	visibility *filter.VisibilitySet
	groups     *filter.Groups
	prefs      PrefsStore
}

func New(
	l pkgLog.Logger,
	userID string,
	backend Backend,
	registry Registry,
	cache Cache,
	visibility *filter.VisibilitySet,
	groups *filter.Groups,
	prefs PrefsStore,
) *Synchronizer {
	return &Synchronizer{
		l:          l,
		userID:     userID,
		backend:    backend,
		registry:   registry,
		cache:      cache,
		visibility: visibility,
		groups:     groups,
		prefs:      prefs,
	}
}

// WebhookHandler receives change notifications from the backing store.
type WebhookHandler struct {
	sessions Sessions
	security *SecurityValidator
	l        pkgLog.Logger
}

func NewWebhookHandler(sessions Sessions, securityConfig SecurityConfig, l pkgLog.Logger) *WebhookHandler {
	return &WebhookHandler{
		sessions: sessions,
		security: NewSecurityValidator(securityConfig),
		l:        l,
	}
}
