package request

import (
	"errors"
	"fmt"
	"strings"

	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/usecase"

	"cloud.google.com/go/civil"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// ParseDate parses a calendar day. Blank input yields the zero date and no error, leaving
// presence checks to the use case.
func ParseDate(s string) (civil.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return civil.Date{}, nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// ParseOptionalDate maps nil or blank input to nil.
func ParseOptionalDate(s *string) (*civil.Date, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	d, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type LineItemRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Quantity    *int    `json:"quantity,omitempty"`
}

type QuoteRequest struct {
	Discipline     string            `json:"discipline"`
	SurveyType     string            `json:"survey_type"`
	Organization   string            `json:"organization"`
	Contact        string            `json:"contact"`
	Email          string            `json:"email"`
	LineItems      []LineItemRequest `json:"line_items"`
	TurnaroundDate string            `json:"turnaround_date" example:"2024-04-01"`
}

func (r QuoteRequest) ToInput() (usecase.QuoteInput, error) {
	turnaround, err := ParseDate(r.TurnaroundDate)
	if err != nil {
		return usecase.QuoteInput{}, err
	}
	items := make([]usecase.LineItemInput, len(r.LineItems))
	for i, it := range r.LineItems {
		items[i] = usecase.LineItemInput{Description: it.Description, Amount: it.Amount, Quantity: it.Quantity}
	}
	return usecase.QuoteInput{
		Discipline:     r.Discipline,
		SurveyType:     r.SurveyType,
		Organization:   r.Organization,
		Contact:        r.Contact,
		Email:          r.Email,
		LineItems:      items,
		TurnaroundDate: turnaround,
	}, nil
}

type InstructionRequest struct {
	Instruction string `json:"instruction" binding:"required" enums:"pending,yes,no"`
}

func (r InstructionRequest) Decision() entities.Instruction {
	return entities.Instruction(strings.ToLower(strings.TrimSpace(r.Instruction)))
}
