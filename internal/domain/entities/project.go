package entities

import (
	"time"

	"cloud.google.com/go/civil"
)

// ProjectStatus tracks a survey in progress.
//
// Only in_progress and works_completed are set by the workflow itself; scheduled and delayed
// are accepted from users as forward states.
type ProjectStatus string

const (
	ProjectStatusInProgress     ProjectStatus = "in_progress"
	ProjectStatusWorksCompleted ProjectStatus = "works_completed"
	ProjectStatusScheduled      ProjectStatus = "scheduled"
	ProjectStatusDelayed        ProjectStatus = "delayed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusInProgress, ProjectStatusWorksCompleted, ProjectStatusScheduled, ProjectStatusDelayed:
		return true
	}
	return false
}

func (s ProjectStatus) Label() string {
	switch s {
	case ProjectStatusWorksCompleted:
		return "Works Completed"
	case ProjectStatusInProgress:
		return "In Progress"
	case ProjectStatusScheduled:
		return "Scheduled"
	case ProjectStatusDelayed:
		return "Delayed"
	default:
		return string(s)
	}
}

// MilestoneField names one of the three dated checkpoints of a project.
type MilestoneField string

const (
	MilestoneSiteVisit   MilestoneField = "site_visit"
	MilestoneFirstDraft  MilestoneField = "first_draft"
	MilestoneFinalReport MilestoneField = "final_report"
)

// Milestones lists the fields in calendar order.
var Milestones = []MilestoneField{MilestoneSiteVisit, MilestoneFirstDraft, MilestoneFinalReport}

func (f MilestoneField) Valid() bool {
	switch f {
	case MilestoneSiteVisit, MilestoneFirstDraft, MilestoneFinalReport:
		return true
	}
	return false
}

// EventType maps the milestone onto its timeline event type.
func (f MilestoneField) EventType() EventType {
	switch f {
	case MilestoneFirstDraft:
		return EventTypeFirstDraft
	case MilestoneFinalReport:
		return EventTypeFinalReport
	default:
		return EventTypeSiteVisit
	}
}

// Project is a survey in progress.
//
// QuoteID is a weak back-reference: projects added manually have none, and a project
// outlives the deletion of its quote.
type Project struct {
	ID              string        `json:"id"`
	QuoteID         string        `json:"quote_id,omitempty"`
	SurveyType      string        `json:"survey_type"`
	Discipline      string        `json:"discipline,omitempty"`
	Organization    string        `json:"organization"`
	Contact         string        `json:"contact"`
	Email           string        `json:"email"`
	SiteVisitDate   *civil.Date   `json:"site_visit_date"`
	FirstDraftDate  *civil.Date   `json:"first_draft_date"`
	FinalReportDate *civil.Date   `json:"final_report_date"`
	Notes           string        `json:"notes"`
	Status          ProjectStatus `json:"status"`
	MultipleDates   bool          `json:"multiple_dates"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Milestone returns the date stored for f, or nil when unset.
func (p Project) Milestone(f MilestoneField) *civil.Date {
	switch f {
	case MilestoneSiteVisit:
		return p.SiteVisitDate
	case MilestoneFirstDraft:
		return p.FirstDraftDate
	case MilestoneFinalReport:
		return p.FinalReportDate
	}
	return nil
}

// SetMilestone stores a copy of d for f. A nil d clears the milestone.
func (p *Project) SetMilestone(f MilestoneField, d *civil.Date) {
	var v *civil.Date
	if d != nil {
		c := *d
		v = &c
	}
	switch f {
	case MilestoneSiteVisit:
		p.SiteVisitDate = v
	case MilestoneFirstDraft:
		p.FirstDraftDate = v
	case MilestoneFinalReport:
		p.FinalReportDate = v
	}
}

func (p Project) Clone() Project {
	out := p
	for _, f := range Milestones {
		out.SetMilestone(f, p.Milestone(f))
	}
	return out
}
