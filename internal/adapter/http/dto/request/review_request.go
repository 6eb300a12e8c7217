package request

import (
	"strings"

	"survey_tracker/internal/domain/entities"
)

type ReviewRatingRequest struct {
	Field string `json:"field" binding:"required" enums:"quality,responsiveness,delivered_on_time,overall_review"`
	Value *int   `json:"value" binding:"required" minimum:"0" maximum:"5"`
}

func (r ReviewRatingRequest) RatingField() entities.RatingField {
	return entities.RatingField(strings.TrimSpace(r.Field))
}

type ReviewNotesRequest struct {
	Notes string `json:"notes"`
}
