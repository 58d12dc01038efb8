package http

import (
	"github.com/gin-gonic/gin"

	"shared-calendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// requires an authenticated scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	api := rg.Group("", mw.Auth())

	calendars := api.Group("/calendars")
	{
		calendars.GET("", h.ListCalendars)
		calendars.POST("", h.CreateCalendar)
		calendars.DELETE("/:id", h.DeleteCalendar)
		calendars.POST("/:id/shares", h.ShareCalendar)
		calendars.GET("/:id/events", h.CalendarEvents)
		calendars.POST("/:id/events", h.CreateEvent)
		calendars.DELETE("/:id/events/:eventId", h.DeleteEvent)
	}

	api.GET("/events", h.ListEvents)
	api.GET("/events.ics", h.ExportICS)
	api.GET("/search", h.Search)

	api.GET("/layout/day", h.DayLayout)
	api.GET("/layout/week", h.WeekLayout)

	api.PUT("/visibility/:id", h.SetVisibility)

	categories := api.Group("/categories")
	{
		categories.PUT("/:category", h.ToggleCategory)
		categories.POST("/all", h.SelectAllCategories)
		categories.DELETE("", h.ClearCategories)
	}

	groups := api.Group("/groups")
	{
		groups.GET("", h.ListGroups)
		groups.POST("", h.CreateGroup)
		groups.PUT("/:id", h.UpdateGroup)
		groups.DELETE("/:id", h.DeleteGroup)
		groups.POST("/:id/toggle", h.ToggleGroup)
	}

	api.POST("/logout", h.Logout)
}
