package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"shared-calendar/internal/calendar"
	"shared-calendar/internal/middleware"
	"shared-calendar/internal/model"
	"shared-calendar/pkg/datemath"
)

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, errUnauthenticated
	}
	return sc, nil
}

// processCreateEventReq binds and validates the event body and the calendar path param.
func (h *handler) processCreateEventReq(c *gin.Context) (createEventReq, error) {
	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processDayLayoutReq reads the day and zone of a day layout request. An
// absent date means today; relative phrases such as "tomorrow" resolve in the
// requested zone.
func (h *handler) processDayLayoutReq(c *gin.Context) (calendar.DayLayoutInput, error) {
	var q dayLayoutQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return calendar.DayLayoutInput{}, err
	}
	loc, err := h.location(q.TZ)
	if err != nil {
		return calendar.DayLayoutInput{}, err
	}
	date, err := parseDate(q.Date, loc)
	if err != nil {
		return calendar.DayLayoutInput{}, err
	}
	return calendar.DayLayoutInput{Date: date, Location: loc, LaneWidth: q.Width}, nil
}

// processWeekLayoutReq reads the first day and zone of a week layout request.
func (h *handler) processWeekLayoutReq(c *gin.Context) (calendar.WeekLayoutInput, error) {
	var q weekLayoutQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return calendar.WeekLayoutInput{}, err
	}
	loc, err := h.location(q.TZ)
	if err != nil {
		return calendar.WeekLayoutInput{}, err
	}
	start, err := parseDate(q.Start, loc)
	if err != nil {
		return calendar.WeekLayoutInput{}, err
	}
	return calendar.WeekLayoutInput{Start: start, Location: loc}, nil
}

// processVisibilityReq reads the optional body of a visibility change. An
// empty body toggles.
func (h *handler) processVisibilityReq(c *gin.Context) (calendar.SetVisibilityInput, error) {
	in := calendar.SetVisibilityInput{CalendarID: c.Param("id")}
	if c.Request.ContentLength == 0 {
		return in, nil
	}
	var req visibilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return in, err
	}
	in.Visible = req.Visible
	return in, nil
}

func (h *handler) location(tz string) (*time.Location, error) {
	if tz == "" {
		return h.loc, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, errInvalidTimezone
	}
	return loc, nil
}

func parseDate(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := datemath.NewParser(loc).Parse(value, time.Now())
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}
