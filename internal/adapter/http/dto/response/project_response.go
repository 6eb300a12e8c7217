package response

import (
	"time"

	"survey_tracker/internal/domain/entities"
)

type ProjectResponse struct {
	ID              string    `json:"id"`
	QuoteID         string    `json:"quote_id,omitempty"`
	SurveyType      string    `json:"survey_type"`
	Discipline      string    `json:"discipline,omitempty"`
	Organization    string    `json:"organization"`
	Contact         string    `json:"contact"`
	Email           string    `json:"email"`
	SiteVisitDate   *string   `json:"site_visit_date"`
	FirstDraftDate  *string   `json:"first_draft_date"`
	FinalReportDate *string   `json:"final_report_date"`
	Notes           string    `json:"notes"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"status_label"`
	MultipleDates   bool      `json:"multiple_dates"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:              p.ID,
		QuoteID:         p.QuoteID,
		SurveyType:      p.SurveyType,
		Discipline:      p.Discipline,
		Organization:    p.Organization,
		Contact:         p.Contact,
		Email:           p.Email,
		SiteVisitDate:   formatOptionalDate(p.SiteVisitDate),
		FirstDraftDate:  formatOptionalDate(p.FirstDraftDate),
		FinalReportDate: formatOptionalDate(p.FinalReportDate),
		Notes:           p.Notes,
		Status:          string(p.Status),
		StatusLabel:     p.Status.Label(),
		MultipleDates:   p.MultipleDates,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func FromProjects(list []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(list))
	for i, p := range list {
		out[i] = FromProject(p)
	}
	return out
}
