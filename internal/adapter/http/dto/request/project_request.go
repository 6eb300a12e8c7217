package request

import (
	"strings"

	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/usecase"
)

// ProjectRequest adds a project by hand, outside the quote workflow.
type ProjectRequest struct {
	SurveyType      string  `json:"survey_type"`
	Discipline      string  `json:"discipline"`
	Organization    string  `json:"organization"`
	Contact         string  `json:"contact"`
	Email           string  `json:"email"`
	SiteVisitDate   *string `json:"site_visit_date"`
	FirstDraftDate  *string `json:"first_draft_date"`
	FinalReportDate *string `json:"final_report_date"`
	Notes           string  `json:"notes"`
	Status          string  `json:"status"`
	MultipleDates   bool    `json:"multiple_dates"`
}

func (r ProjectRequest) ToInput() (usecase.ProjectInput, error) {
	in := usecase.ProjectInput{
		SurveyType:    r.SurveyType,
		Discipline:    r.Discipline,
		Organization:  r.Organization,
		Contact:       r.Contact,
		Email:         r.Email,
		Notes:         r.Notes,
		Status:        entities.ProjectStatus(strings.TrimSpace(r.Status)),
		MultipleDates: r.MultipleDates,
	}
	var err error
	if in.SiteVisitDate, err = ParseOptionalDate(r.SiteVisitDate); err != nil {
		return usecase.ProjectInput{}, err
	}
	if in.FirstDraftDate, err = ParseOptionalDate(r.FirstDraftDate); err != nil {
		return usecase.ProjectInput{}, err
	}
	if in.FinalReportDate, err = ParseOptionalDate(r.FinalReportDate); err != nil {
		return usecase.ProjectInput{}, err
	}
	return in, nil
}

// ProjectDatesRequest sets one milestone. A null or empty date clears it.
type ProjectDatesRequest struct {
	Field string  `json:"field" binding:"required" enums:"site_visit,first_draft,final_report"`
	Date  *string `json:"date"`
}

func (r ProjectDatesRequest) Milestone() entities.MilestoneField {
	return entities.MilestoneField(strings.TrimSpace(r.Field))
}

type ProjectStatusRequest struct {
	Status string `json:"status" binding:"required" enums:"in_progress,works_completed,scheduled,delayed"`
}

type ProjectNotesRequest struct {
	Notes string `json:"notes"`
}

type ProjectMultipleDatesRequest struct {
	MultipleDates *bool `json:"multiple_dates" binding:"required"`
}
