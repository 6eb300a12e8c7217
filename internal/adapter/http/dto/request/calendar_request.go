package request

import "survey_tracker/internal/usecase"

type CalendarNoteRequest struct {
	Date         string `json:"date" binding:"required" example:"2024-04-05"`
	Text         string `json:"text"`
	IsTargetDate bool   `json:"is_target_date"`
	IsReportsIn  bool   `json:"is_reports_in"`
}

func (r CalendarNoteRequest) ToInput() (usecase.NoteInput, error) {
	d, err := ParseDate(r.Date)
	if err != nil {
		return usecase.NoteInput{}, err
	}
	return usecase.NoteInput{
		Date:         d,
		Text:         r.Text,
		IsTargetDate: r.IsTargetDate,
		IsReportsIn:  r.IsReportsIn,
	}, nil
}
