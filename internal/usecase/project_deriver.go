package usecase

import (
	"time"

	"survey_tracker/internal/domain/entities"

	"github.com/google/uuid"
)

// ProjectChange is the project-store reaction to an instruction transition.
type ProjectChange int

const (
	ProjectChangeNone ProjectChange = iota
	ProjectChangeCreate
	ProjectChangeRemove
)

func (c ProjectChange) String() string {
	switch c {
	case ProjectChangeCreate:
		return "create"
	case ProjectChangeRemove:
		return "remove"
	default:
		return "none"
	}
}

// DeriveProjectChange decides what happens to the quote's project when its instruction moves
// from old to new. Only transitions that touch "yes" on exactly one side change anything, so
// repeating a decision is always a no-op.
func DeriveProjectChange(old, new entities.Instruction) ProjectChange {
	switch {
	case old != entities.InstructionYes && new == entities.InstructionYes:
		return ProjectChangeCreate
	case old == entities.InstructionYes && new != entities.InstructionYes:
		return ProjectChangeRemove
	default:
		return ProjectChangeNone
	}
}

// NewProjectFromQuote builds the project created when q is instructed.
func NewProjectFromQuote(q entities.Quote, id string, now time.Time) entities.Project {
	return entities.Project{
		ID:           id,
		QuoteID:      q.ID,
		SurveyType:   entities.ProjectSurveyLabel(q.Discipline, q.SurveyType),
		Discipline:   q.Discipline,
		Organization: q.Organization,
		Contact:      q.Contact,
		Email:        q.Email,
		Notes:        "Instructed from quote #" + q.ID,
		Status:       entities.ProjectStatusInProgress,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// newID returns a time-ordered unique identifier.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
