package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shared-calendar/internal/calendar"
	"shared-calendar/internal/calendar/repository"
	"shared-calendar/internal/registry"
	"shared-calendar/internal/session"
	calendarSync "shared-calendar/internal/sync"
	"shared-calendar/pkg/calendarapi"
	"shared-calendar/pkg/response"
)

var (
	errUnauthenticated = errors.New("missing user scope")
	errInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD or a relative day")
	errInvalidTimezone = errors.New("invalid timezone")
)

// mapError translates domain and use-case errors into an HTTP status.
func (h *handler) mapError(err error) int {
	switch {
	case errors.Is(err, calendar.ErrCalendarNotFound),
		errors.Is(err, calendar.ErrGroupNotFound),
		errors.Is(err, calendarSync.ErrCalendarNotFound),
		errors.Is(err, registry.ErrCalendarNotFound),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, calendar.ErrInvalidCategory),
		errors.Is(err, calendar.ErrEmptyGroupName),
		errors.Is(err, calendar.ErrInvalidRole),
		errors.Is(err, calendar.ErrEmptyEmail),
		errors.Is(err, repository.ErrRejected),
		errors.Is(err, calendarSync.ErrEmptyTitle),
		errors.Is(err, calendarSync.ErrInvalidRange),
		errors.Is(err, registry.ErrEmptyName),
		errors.Is(err, errInvalidDate),
		errors.Is(err, errInvalidTimezone):
		return http.StatusBadRequest
	case errors.Is(err, calendarSync.ErrReadOnlyCalendar),
		errors.Is(err, repository.ErrReadOnly),
		errors.Is(err, repository.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, session.ErrEmptyUser),
		errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized
	}

	switch status := calendarapi.StatusOf(err); {
	case status == http.StatusUnauthorized:
		return http.StatusUnauthorized
	case status != 0:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (h *handler) writeError(c *gin.Context, err error) {
	status := h.mapError(err)
	switch status {
	case http.StatusInternalServerError:
		h.l.Errorf(c.Request.Context(), "calendar.http: %v", err)
		response.InternalError(c, err)
	case http.StatusUnauthorized:
		response.Unauthorized(c)
	case http.StatusBadGateway:
		h.l.Warnf(c.Request.Context(), "calendar.http: upstream: %v", err)
		response.ErrorWithStatus(c, status, errors.New("calendar backend unavailable"))
	default:
		response.ErrorWithStatus(c, status, err)
	}
}
