package routes

import (
	"survey_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathReviews = "/reviews"

func addReviewRoutes(rg *gin.RouterGroup, h *handlers.ReviewHandler) {
	reviews := rg.Group(PathReviews)
	{
		reviews.GET("", h.ListReviews)
		reviews.PATCH("/:organization/rating", h.SetRating)
		reviews.PATCH("/:organization/notes", h.SetNotes)
	}
}
