package routes

import (
	"survey_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCalendar = "/calendar"

func addCalendarRoutes(rg *gin.RouterGroup, h *handlers.CalendarHandler) {
	calendar := rg.Group(PathCalendar)
	{
		calendar.GET("/days", h.GetRange)
		calendar.GET("/days/:date", h.GetDay)
		calendar.GET("/months/:year/:month", h.GetMonth)
		calendar.GET("/months/:year/:month/window", h.GetWindow)
		calendar.POST("/notes", h.CreateNote)
		calendar.DELETE("/notes/:date/:id", h.DeleteNote)
	}
}
