package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarHTTP "shared-calendar/internal/calendar/delivery/http"
	calendarUC "shared-calendar/internal/calendar/usecase"
	"shared-calendar/internal/middleware"
)

// setupCalendarDomain wires the calendar use case over the session manager
// and registers its routes under /api/v1.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := calendarUC.New(srv.l, srv.sessions, srv.location)
	h := calendarHTTP.New(srv.l, uc, srv.location)
	calendarHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Calendar domain registered")
	return nil
}
