package sync

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgResponse "shared-calendar/pkg/response"
)

// HandleCalendarWebhook processes change notifications from the backing store.
func (h *WebhookHandler) HandleCalendarWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.Forbidden(c)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.security.ValidateSignature(body, c.GetHeader(SignatureHeader)); err != nil {
		h.l.Warnf(ctx, "webhook: signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	var n Notification
	if err := json.Unmarshal(body, &n); err != nil {
		h.l.Errorf(ctx, "webhook: failed to parse payload: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}
	if n.UserID == "" || n.CalendarID == "" {
		pkgResponse.Error(c, errMissingTarget, nil)
		return
	}

	switch n.Type {
	case NotificationEventCreated, NotificationEventUpdated, NotificationEventDeleted, NotificationCalendarDeleted:
	default:
		h.l.Infof(ctx, "webhook: unsupported notification type: %s", n.Type)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported notification type"})
		return
	}

	s, ok := h.sessions.Synchronizer(n.UserID)
	if !ok {
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "no live session"})
		return
	}

	go h.applyAsync(s, n)

	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

func (h *WebhookHandler) applyAsync(s *Synchronizer, n Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.Apply(ctx, n); err != nil {
		h.l.Errorf(ctx, "webhook: apply %s for calendar %s: %v", n.Type, n.CalendarID, err)
		return
	}
	h.l.Infof(ctx, "webhook: applied %s for calendar %s", n.Type, n.CalendarID)
}
