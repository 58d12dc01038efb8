package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shared-calendar/internal/calendar"
	"shared-calendar/pkg/response"
)

// ListCalendars godoc
// @Summary     List calendars
// @Description Returns the owned and shared calendars of the user with their colors and visibility.
// @Tags        Calendars
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listCalendarsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Calendar backend unavailable"
// @Router      /api/v1/calendars [GET]
func (h *handler) ListCalendars(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out, err := h.uc.ListCalendars(ctx, sc)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, h.newListCalendarsResp(out))
}

// CreateCalendar godoc
// @Summary     Create a calendar
// @Description Creates an owned calendar. Without a color one is assigned deterministically.
// @Tags        Calendars
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createCalendarReq true "Calendar data"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendars [POST]
func (h *handler) CreateCalendar(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req createCalendarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	cal, err := h.uc.CreateCalendar(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateCalendar: %v", err)
		h.writeError(c, err)
		return
	}
	response.OK(c, calendarResp{Calendar: cal, Visible: true})
}

// DeleteCalendar godoc
// @Summary     Delete a calendar
// @Description Deletes an owned calendar and forgets it in the cache, the visibility set and the groups.
// @Tags        Calendars
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Calendar ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Shared calendar"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendars/{id} [DELETE]
func (h *handler) DeleteCalendar(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.uc.DeleteCalendar(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.DeleteCalendar: %v", err)
		h.writeError(c, err)
		return
	}
	response.OK(c, nil)
}

// Search godoc
// @Summary     Search events and calendars
// @Description Case-insensitive match on event titles, descriptions and calendar names across every accessible calendar. Queries shorter than two characters return empty lists. Each list holds at most ten entries; events are sorted by start.
// @Tags        Events
// @Produce     json
// @Security    BearerAuth
// @Param       q query string false "Search text"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Search(ctx, sc, calendar.SearchInput{Query: q.Q})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, newSearchResp(out))
}

// ShareCalendar godoc
// @Summary     Share a calendar
// @Description Invites a user by email to an owned calendar as viewer (default) or editor. The grant stays pending until accepted.
// @Tags        Calendars
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string   true "Calendar ID"
// @Param       body body shareReq true "Invitee"
// @Success     200 {object} model.ShareInvite
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Not the owner"
// @Failure     404 {object} response.Resp "Calendar not found"
// @Router      /api/v1/calendars/{id}/shares [POST]
func (h *handler) ShareCalendar(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req shareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	invite, err := h.uc.ShareCalendar(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, invite)
}

// ListEvents godoc
// @Summary     List visible events
// @Description Returns the merged event stream of every calendar after visibility and category filtering.
// @Tags        Events
// @Produce     json
// @Security    BearerAuth
// @Param       force query bool false "Bypass the cache"
// @Success     200 {object} eventsResp
// @Router      /api/v1/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var q forceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err, nil)
		return
	}

	events, err := h.uc.ListEvents(ctx, sc, calendar.ListEventsInput{Force: q.Force})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, h.newEventsResp(events))
}

// CalendarEvents godoc
// @Summary     List the events of a calendar
// @Description Returns the unfiltered events of one calendar, served from the cache when fresh.
// @Tags        Events
// @Produce     json
// @Security    BearerAuth
// @Param       id    path  string true  "Calendar ID"
// @Param       force query bool   false "Bypass the cache"
// @Success     200 {object} eventsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendars/{id}/events [GET]
func (h *handler) CalendarEvents(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var q forceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err, nil)
		return
	}

	events, err := h.uc.CalendarEvents(ctx, sc, calendar.CalendarEventsInput{CalendarID: c.Param("id"), Force: q.Force})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, h.newEventsResp(events))
}

// CreateEvent godoc
// @Summary     Create an event
// @Description Creates an event on a calendar the user may edit and appends it to the cache.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string         true "Calendar ID"
// @Param       body body createEventReq true "Event data"
// @Success     200 {object} model.Event
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Read-only calendar"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendars/{id}/events [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	req, err := h.processCreateEventReq(c)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidCategory) {
			h.writeError(c, err)
			return
		}
		response.Error(c, err, nil)
		return
	}

	ev, err := h.uc.CreateEvent(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateEvent: %v", err)
		h.writeError(c, err)
		return
	}
	response.OK(c, ev)
}

// DeleteEvent godoc
// @Summary     Delete an event
// @Description Deletes an event. An event already gone upstream counts as deleted.
// @Tags        Events
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string true "Calendar ID"
// @Param       eventId path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Read-only calendar"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendars/{id}/events/{eventId} [DELETE]
func (h *handler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	err = h.uc.DeleteEvent(ctx, sc, calendar.DeleteEventInput{CalendarID: c.Param("id"), EventID: c.Param("eventId")})
	if err != nil {
		h.l.Warnf(ctx, "uc.DeleteEvent: %v", err)
		h.writeError(c, err)
		return
	}
	response.OK(c, nil)
}

// DayLayout godoc
// @Summary     Day layout
// @Description Packs the visible timed events of one day into columns and returns their boxes in pixels.
// @Tags        Layout
// @Produce     json
// @Security    BearerAuth
// @Param       date  query string false "Day as YYYY-MM-DD or relative (tomorrow, next monday), today when absent"
// @Param       tz    query string false "IANA zone the day is cut in"
// @Param       width query number false "Lane width in pixels"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/layout/day [GET]
func (h *handler) DayLayout(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	in, err := h.processDayLayoutReq(c)
	if err != nil {
		h.writeBindError(c, err)
		return
	}

	out, err := h.uc.DayLayout(ctx, sc, in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, newDayResp(out))
}

// WeekLayout godoc
// @Summary     Week layout
// @Description Packs the visible timed events of seven days, each day independently. Boxes are in percent of the row.
// @Tags        Layout
// @Produce     json
// @Security    BearerAuth
// @Param       start query string false "First day as YYYY-MM-DD or relative, the current week's Sunday when absent"
// @Param       tz    query string false "IANA zone days are cut in"
// @Success     200 {object} weekResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/layout/week [GET]
func (h *handler) WeekLayout(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	in, err := h.processWeekLayoutReq(c)
	if err != nil {
		h.writeBindError(c, err)
		return
	}

	out, err := h.uc.WeekLayout(ctx, sc, in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, h.newWeekResp(out))
}

// ExportICS godoc
// @Summary     Export visible events
// @Description Returns the visible event stream as an iCalendar file.
// @Tags        Events
// @Produce     text/calendar
// @Security    BearerAuth
// @Success     200 {string} string "iCalendar document"
// @Router      /api/v1/events.ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out, err := h.uc.ExportICS(ctx, sc)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Header("Content-Disposition", attachment(out.Filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", out.Content)
}

// Logout godoc
// @Summary     End the session
// @Description Drops the cached calendars, events and filters of the user. Saved preferences are kept.
// @Tags        Session
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, gin.H{"ended": h.uc.Logout(ctx, sc)})
}

// writeBindError reports query errors. Known parse errors keep their message.
func (h *handler) writeBindError(c *gin.Context, err error) {
	if errors.Is(err, errInvalidDate) || errors.Is(err, errInvalidTimezone) {
		h.writeError(c, err)
		return
	}
	response.Error(c, err, nil)
}
