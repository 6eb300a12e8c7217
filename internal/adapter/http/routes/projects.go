package routes

import (
	"survey_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathProjects = "/projects"

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", h.CreateProject)
		projects.GET("", h.ListProjects)
		projects.GET("/export", h.ExportSchedule)
		projects.GET("/:id", h.GetProject)
		projects.PATCH("/:id/dates", h.UpdateDates)
		projects.PATCH("/:id/status", h.SetStatus)
		projects.PATCH("/:id/notes", h.SetNotes)
		projects.PATCH("/:id/multiple-dates", h.SetMultipleDates)
	}
}
