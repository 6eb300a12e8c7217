package response

import (
	"time"

	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/usecase"

	"cloud.google.com/go/civil"
)

type LineItemResponse struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Quantity    *int    `json:"quantity,omitempty"`
}

type QuoteResponse struct {
	ID             string             `json:"id"`
	Discipline     string             `json:"discipline"`
	SurveyType     string             `json:"survey_type"`
	Organization   string             `json:"organization"`
	Contact        string             `json:"contact"`
	Email          string             `json:"email"`
	LineItems      []LineItemResponse `json:"line_items"`
	Total          float64            `json:"total"`
	TurnaroundDate string             `json:"turnaround_date"`
	Instruction    string             `json:"instruction"`
	Status         string             `json:"status"`
	StatusLabel    string             `json:"status_label"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]LineItemResponse, len(q.LineItems))
	for i, it := range q.LineItems {
		items[i] = LineItemResponse{Description: it.Description, Amount: it.Amount, Quantity: it.Quantity}
	}
	return QuoteResponse{
		ID:             q.ID,
		Discipline:     q.Discipline,
		SurveyType:     q.SurveyType,
		Organization:   q.Organization,
		Contact:        q.Contact,
		Email:          q.Email,
		LineItems:      items,
		Total:          q.Total(),
		TurnaroundDate: formatDate(q.TurnaroundDate),
		Instruction:    string(q.Instruction),
		Status:         string(q.Status()),
		StatusLabel:    q.Status().Label(),
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

func FromQuotes(list []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(list))
	for i, q := range list {
		out[i] = FromQuote(q)
	}
	return out
}

type QuoteGroupResponse struct {
	Discipline string          `json:"discipline"`
	SurveyType string          `json:"survey_type"`
	Quotes     []QuoteResponse `json:"quotes"`
}

func FromQuoteGroups(groups []usecase.QuoteGroup) []QuoteGroupResponse {
	out := make([]QuoteGroupResponse, len(groups))
	for i, g := range groups {
		out[i] = QuoteGroupResponse{Discipline: g.Discipline, SurveyType: g.SurveyType, Quotes: FromQuotes(g.Quotes)}
	}
	return out
}

func formatDate(d civil.Date) string {
	if !d.IsValid() {
		return ""
	}
	return d.String()
}

func formatOptionalDate(d *civil.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
