package handlers

import (
	"net/http"

	request "survey_tracker/internal/adapter/http/dto/request"
	response "survey_tracker/internal/adapter/http/dto/response"
	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/usecase"
	"survey_tracker/pkg"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// ListReviews godoc
// @Summary      Organization reviews, one per organization with a project
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  response.ReviewResponse
// @Router       /reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	list, err := h.usecase.ListReviews(c.Request.Context())
	if err != nil {
		writeError(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReviews(list))
}

// SetRating godoc
// @Summary      Set one 0-5 rating (0 clears it)
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        organization  path      string                       true  "Organization"
// @Param        rating        body      request.ReviewRatingRequest  true  "Rating"
// @Success      200           {object}  response.ReviewResponse
// @Success      204           "Unknown organization, nothing changed"
// @Failure      400           {object}  pkg.HTTPError
// @Router       /reviews/{organization}/rating [patch]
func (h *ReviewHandler) SetRating(c *gin.Context) {
	var payload request.ReviewRatingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c, func() (entities.Review, error) {
		return h.usecase.SetRating(c.Request.Context(), c.Param("organization"), payload.RatingField(), *payload.Value)
	})
}

// SetNotes godoc
// @Summary      Replace the review notes
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        organization  path      string                      true  "Organization"
// @Param        notes         body      request.ReviewNotesRequest  true  "Notes"
// @Success      200           {object}  response.ReviewResponse
// @Success      204           "Unknown organization, nothing changed"
// @Router       /reviews/{organization}/notes [patch]
func (h *ReviewHandler) SetNotes(c *gin.Context) {
	var payload request.ReviewNotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c, func() (entities.Review, error) {
		return h.usecase.SetReviewNotes(c.Request.Context(), c.Param("organization"), payload.Notes)
	})
}

func (h *ReviewHandler) respond(c *gin.Context, update func() (entities.Review, error)) {
	r, err := update()
	if err != nil {
		writeError(c, mapReviewError(err))
		return
	}
	if r.Organization == "" {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, response.FromReview(r))
}

func mapReviewError(err error) *pkg.AppError {
	if appErr, ok := mapInputError(err); ok {
		return appErr
	}
	return internalError(err)
}
