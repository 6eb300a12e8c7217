package entities

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const (
	LabelTargetSubmissionDate = "Target Submission Date"
	LabelReportsIn            = "Reports In"
)

// CalendarNote is a manual annotation on a calendar day. Notes are never edited in place.
type CalendarNote struct {
	ID           string     `json:"id"`
	Date         civil.Date `json:"date"`
	Text         string     `json:"text"`
	IsTargetDate bool       `json:"is_target_date"`
	IsReportsIn  bool       `json:"is_reports_in"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Empty reports whether the note carries neither text nor a flag.
func (n CalendarNote) Empty() bool {
	return strings.TrimSpace(n.Text) == "" && !n.IsTargetDate && !n.IsReportsIn
}

// Label is the text shown for the note, falling back to the flag name when the text is empty.
func (n CalendarNote) Label() string {
	if strings.TrimSpace(n.Text) != "" {
		return n.Text
	}
	if n.IsTargetDate {
		return LabelTargetSubmissionDate
	}
	return LabelReportsIn
}

type EventType string

const (
	EventTypeSiteVisit   EventType = "SITE_VISIT"
	EventTypeFirstDraft  EventType = "FIRST_DRAFT"
	EventTypeFinalReport EventType = "FINAL_REPORT"
)

// Rank orders event types within a day.
func (t EventType) Rank() int {
	switch t {
	case EventTypeSiteVisit:
		return 0
	case EventTypeFirstDraft:
		return 1
	case EventTypeFinalReport:
		return 2
	}
	return 3
}

func (t EventType) Label() string {
	switch t {
	case EventTypeSiteVisit:
		return "Site Visit"
	case EventTypeFirstDraft:
		return "First Draft Due"
	case EventTypeFinalReport:
		return "Final Report Due"
	}
	return string(t)
}

// TimelineEvent is a view of one non-null milestone date of a project. It is never stored.
type TimelineEvent struct {
	ProjectID    string     `json:"project_id"`
	Organization string     `json:"organization"`
	Date         civil.Date `json:"date"`
	Type         EventType  `json:"type"`
	Description  string     `json:"description"`
}

// TimelineEventsFor lists the events of p in milestone order.
func TimelineEventsFor(p Project) []TimelineEvent {
	var out []TimelineEvent
	for _, f := range Milestones {
		d := p.Milestone(f)
		if d == nil {
			continue
		}
		t := f.EventType()
		out = append(out, TimelineEvent{
			ProjectID:    p.ID,
			Organization: p.Organization,
			Date:         *d,
			Type:         t,
			Description:  fmt.Sprintf("%s - %s - %s", t.Label(), p.SurveyType, p.Organization),
		})
	}
	return out
}

// DayHighlight is the visual emphasis of a calendar day.
type DayHighlight string

const (
	HighlightTarget       DayHighlight = "target"
	HighlightToday        DayHighlight = "today"
	HighlightInMonth      DayHighlight = "in_month"
	HighlightOutsideMonth DayHighlight = "outside_month"
)

// CalendarDay aggregates everything shown on one calendar cell.
type CalendarDay struct {
	Date      civil.Date      `json:"date"`
	Events    []TimelineEvent `json:"events"`
	Notes     []CalendarNote  `json:"notes"`
	IsTarget  bool            `json:"is_target"`
	IsToday   bool            `json:"is_today"`
	InMonth   bool            `json:"in_month"`
	Highlight DayHighlight    `json:"highlight"`
}

// ResolveHighlight applies the precedence target > today > in-month.
func ResolveHighlight(isTarget, isToday, inMonth bool) DayHighlight {
	switch {
	case isTarget:
		return HighlightTarget
	case isToday:
		return HighlightToday
	case inMonth:
		return HighlightInMonth
	default:
		return HighlightOutsideMonth
	}
}

// CalendarMonth is a 6x7 grid of days starting on a Sunday.
type CalendarMonth struct {
	Year  int           `json:"year"`
	Month time.Month    `json:"month"`
	Days  []CalendarDay `json:"days"`
}
