package entities

import (
	"time"

	"cloud.google.com/go/civil"
)

// Instruction is the organization's decision on whether to proceed with a quoted survey.
//
// Domain notes:
//   - The quote status is never stored independently; it is always derived from the instruction.
//   - Transitions into and out of InstructionYes drive project creation/removal.
type Instruction string

const (
	InstructionPending Instruction = "pending"
	InstructionYes     Instruction = "yes"
	InstructionNo      Instruction = "no"
)

// Valid reports whether i is one of the known instruction decisions.
func (i Instruction) Valid() bool {
	switch i {
	case InstructionPending, InstructionYes, InstructionNo:
		return true
	}
	return false
}

// QuoteStatus is the display mirror of Instruction.
type QuoteStatus string

const (
	QuoteStatusPending       QuoteStatus = "pending"
	QuoteStatusInstructed    QuoteStatus = "instructed"
	QuoteStatusNotInstructed QuoteStatus = "not_instructed"
)

// StatusForInstruction maps an instruction decision onto the quote status shown to users.
func StatusForInstruction(i Instruction) QuoteStatus {
	switch i {
	case InstructionYes:
		return QuoteStatusInstructed
	case InstructionNo:
		return QuoteStatusNotInstructed
	default:
		return QuoteStatusPending
	}
}

// Label returns the human readable status.
func (s QuoteStatus) Label() string {
	switch s {
	case QuoteStatusInstructed:
		return "Instructed"
	case QuoteStatusNotInstructed:
		return "Not Instructed"
	default:
		return "Pending"
	}
}

type LineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Quantity    *int    `json:"quantity,omitempty"`
}

// Quote is a surveying quote submitted by/for an organization.
//
// Ordering: quotes are kept in insertion order, which is also the display order.
type Quote struct {
	ID             string      `json:"id"`
	Discipline     string      `json:"discipline"`
	SurveyType     string      `json:"survey_type"`
	Organization   string      `json:"organization"`
	Contact        string      `json:"contact"`
	Email          string      `json:"email"`
	LineItems      []LineItem  `json:"line_items"`
	TurnaroundDate civil.Date  `json:"turnaround_date"`
	Instruction    Instruction `json:"instruction"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Status is derived from the instruction so the two can never diverge.
func (q Quote) Status() QuoteStatus {
	return StatusForInstruction(q.Instruction)
}

// Total sums the line-item amounts. Quantity is informational only.
func (q Quote) Total() float64 {
	total := 0.0
	for _, it := range q.LineItems {
		total += it.Amount
	}
	return total
}

// Clone returns a deep copy so stored quotes never share line-item backing arrays with callers.
func (q Quote) Clone() Quote {
	out := q
	if q.LineItems != nil {
		out.LineItems = make([]LineItem, len(q.LineItems))
		for i, it := range q.LineItems {
			out.LineItems[i] = it
			if it.Quantity != nil {
				qty := *it.Quantity
				out.LineItems[i].Quantity = &qty
			}
		}
	}
	return out
}
