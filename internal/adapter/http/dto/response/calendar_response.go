package response

import (
	"time"

	"survey_tracker/internal/domain/entities"
)

type TimelineEventResponse struct {
	ProjectID    string `json:"project_id"`
	Organization string `json:"organization"`
	Date         string `json:"date"`
	Type         string `json:"type"`
	Label        string `json:"label"`
	Description  string `json:"description"`
}

type CalendarNoteResponse struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	Text         string    `json:"text"`
	Label        string    `json:"label"`
	IsTargetDate bool      `json:"is_target_date"`
	IsReportsIn  bool      `json:"is_reports_in"`
	CreatedAt    time.Time `json:"created_at"`
}

type CalendarDayResponse struct {
	Date      string                  `json:"date"`
	Weekday   string                  `json:"weekday"`
	Events    []TimelineEventResponse `json:"events"`
	Notes     []CalendarNoteResponse  `json:"notes"`
	IsTarget  bool                    `json:"is_target"`
	IsToday   bool                    `json:"is_today"`
	InMonth   bool                    `json:"in_month"`
	Highlight string                  `json:"highlight"`
}

type CalendarMonthResponse struct {
	Year      int                   `json:"year"`
	Month     int                   `json:"month"`
	MonthName string                `json:"month_name"`
	Days      []CalendarDayResponse `json:"days"`
}

func FromCalendarNote(n entities.CalendarNote) CalendarNoteResponse {
	return CalendarNoteResponse{
		ID:           n.ID,
		Date:         n.Date.String(),
		Text:         n.Text,
		Label:        n.Label(),
		IsTargetDate: n.IsTargetDate,
		IsReportsIn:  n.IsReportsIn,
		CreatedAt:    n.CreatedAt,
	}
}

func FromCalendarDay(d entities.CalendarDay) CalendarDayResponse {
	events := make([]TimelineEventResponse, len(d.Events))
	for i, ev := range d.Events {
		events[i] = TimelineEventResponse{
			ProjectID:    ev.ProjectID,
			Organization: ev.Organization,
			Date:         ev.Date.String(),
			Type:         string(ev.Type),
			Label:        ev.Type.Label(),
			Description:  ev.Description,
		}
	}
	notes := make([]CalendarNoteResponse, len(d.Notes))
	for i, n := range d.Notes {
		notes[i] = FromCalendarNote(n)
	}
	return CalendarDayResponse{
		Date:      d.Date.String(),
		Weekday:   d.Date.In(time.UTC).Weekday().String(),
		Events:    events,
		Notes:     notes,
		IsTarget:  d.IsTarget,
		IsToday:   d.IsToday,
		InMonth:   d.InMonth,
		Highlight: string(d.Highlight),
	}
}

func FromCalendarDays(days []entities.CalendarDay) []CalendarDayResponse {
	out := make([]CalendarDayResponse, len(days))
	for i, d := range days {
		out[i] = FromCalendarDay(d)
	}
	return out
}

func FromCalendarMonth(m entities.CalendarMonth) CalendarMonthResponse {
	return CalendarMonthResponse{
		Year:      m.Year,
		Month:     int(m.Month),
		MonthName: m.Month.String(),
		Days:      FromCalendarDays(m.Days),
	}
}

func FromCalendarMonths(months []entities.CalendarMonth) []CalendarMonthResponse {
	out := make([]CalendarMonthResponse, len(months))
	for i, m := range months {
		out[i] = FromCalendarMonth(m)
	}
	return out
}
