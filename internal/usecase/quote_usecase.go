package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/usecase/interfaces"
	"survey_tracker/pkg/logger"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrDeleteNotConfirmed = errors.New("quote deletion not confirmed")
)

type LineItemInput struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Quantity    *int    `json:"quantity,omitempty" validate:"omitempty,gte=1"`
}

// QuoteInput carries every mutable field of a quote, for both creation and edit.
type QuoteInput struct {
	Discipline     string          `json:"discipline" validate:"required"`
	SurveyType     string          `json:"survey_type" validate:"required"`
	Organization   string          `json:"organization" validate:"required"`
	Contact        string          `json:"contact" validate:"required"`
	Email          string          `json:"email" validate:"required,email"`
	LineItems      []LineItemInput `json:"line_items" validate:"min=1,dive"`
	TurnaroundDate civil.Date      `json:"turnaround_date"`
}

func (in QuoteInput) normalize() QuoteInput {
	out := in
	out.Discipline = strings.TrimSpace(in.Discipline)
	out.SurveyType = strings.TrimSpace(in.SurveyType)
	out.Organization = strings.TrimSpace(in.Organization)
	out.Contact = strings.TrimSpace(in.Contact)
	out.Email = strings.TrimSpace(in.Email)
	out.LineItems = make([]LineItemInput, len(in.LineItems))
	for i, it := range in.LineItems {
		it.Description = strings.TrimSpace(it.Description)
		out.LineItems[i] = it
	}
	return out
}

func (in QuoteInput) validate() error {
	ve := &ValidationError{}
	if err := validateStruct(ve, in); err != nil {
		return err
	}
	if !in.TurnaroundDate.IsValid() {
		ve.add("turnaround_date", "required")
	}
	if in.Discipline != "" {
		d, ok := entities.LookupDiscipline(in.Discipline)
		switch {
		case !ok:
			ve.add("discipline", "oneof")
		case in.SurveyType != "" && !d.Offers(in.SurveyType):
			ve.add("survey_type", "oneof")
		}
	}
	return ve.result()
}

func (in QuoteInput) lineItems() []entities.LineItem {
	out := make([]entities.LineItem, len(in.LineItems))
	for i, it := range in.LineItems {
		out[i] = entities.LineItem{Description: it.Description, Amount: it.Amount}
		if it.Quantity != nil {
			qty := *it.Quantity
			out[i].Quantity = &qty
		}
	}
	return out
}

// apply copies the mutable fields onto q. Identity, instruction and creation time are kept.
func (in QuoteInput) apply(q *entities.Quote) {
	q.Discipline = in.Discipline
	q.SurveyType = in.SurveyType
	q.Organization = in.Organization
	q.Contact = in.Contact
	q.Email = in.Email
	q.LineItems = in.lineItems()
	q.TurnaroundDate = in.TurnaroundDate
}

// QuoteGroup is one discipline/survey-type bucket of the quotes table.
type QuoteGroup struct {
	Discipline string           `json:"discipline"`
	SurveyType string           `json:"survey_type"`
	Quotes     []entities.Quote `json:"quotes"`
}

// IQuoteUseCase exposes the quote workflow.
//
// Instruction changes are the only path that creates or removes derived projects:
//   - pending/no -> yes creates exactly one project
//   - yes -> pending/no removes the quote's projects
//   - anything else leaves projects untouched
type IQuoteUseCase interface {
	AddQuote(ctx context.Context, in QuoteInput) (entities.Quote, error)
	EditQuote(ctx context.Context, id string, in QuoteInput) (entities.Quote, error)
	SetInstruction(ctx context.Context, id string, decision entities.Instruction) (entities.Quote, error)
	DeleteQuote(ctx context.Context, id string, confirmed bool) (bool, error)
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	GroupQuotes(ctx context.Context) ([]QuoteGroup, error)
}

type QuoteUseCase struct {
	tx       interfaces.ITransactor
	quotes   interfaces.IQuoteRepository
	projects interfaces.IProjectRepository
	sync     reviewSynchronizer
	now      func() time.Time
	newID    func() string
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	tx interfaces.ITransactor,
	quotes interfaces.IQuoteRepository,
	projects interfaces.IProjectRepository,
	reviews interfaces.IReviewRepository,
) *QuoteUseCase {
	return &QuoteUseCase{
		tx:       tx,
		quotes:   quotes,
		projects: projects,
		sync:     newReviewSynchronizer(projects, reviews),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    newID,
	}
}

func (u *QuoteUseCase) AddQuote(ctx context.Context, in QuoteInput) (entities.Quote, error) {
	in = in.normalize()
	if err := in.validate(); err != nil {
		return entities.Quote{}, err
	}

	now := u.now()
	q := entities.Quote{
		ID:          u.newID(),
		Instruction: entities.InstructionPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	in.apply(&q)

	var created entities.Quote
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = u.quotes.Create(ctx, q)
		return err
	})
	if err != nil {
		logger.L().Error("[quote][usecase] create failed", zap.Error(err))
		return entities.Quote{}, err
	}
	logger.L().Info("[quote][usecase] quote created",
		zap.String("quote_id", created.ID),
		zap.String("organization", created.Organization),
		zap.Float64("total", created.Total()),
	)
	return created, nil
}

// EditQuote replaces the mutable fields of a quote. An unknown id is a no-op and returns a
// zero Quote.
func (u *QuoteUseCase) EditQuote(ctx context.Context, id string, in QuoteInput) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	in = in.normalize()
	if err := in.validate(); err != nil {
		return entities.Quote{}, err
	}

	var out entities.Quote
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		q, err := u.quotes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if q.ID == "" {
			return nil
		}
		in.apply(&q)
		q.UpdatedAt = u.now()
		out, err = u.quotes.Update(ctx, q)
		return err
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return out, nil
}

// SetInstruction records the organization's decision and derives the project change in the
// same transaction, so no reader sees the quote without its project (or the reverse).
func (u *QuoteUseCase) SetInstruction(ctx context.Context, id string, decision entities.Instruction) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !decision.Valid() {
		return entities.Quote{}, invalidField("instruction", "oneof")
	}

	var (
		out    entities.Quote
		change ProjectChange
	)
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		q, err := u.quotes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if q.ID == "" {
			return nil
		}

		now := u.now()
		change = DeriveProjectChange(q.Instruction, decision)
		q.Instruction = decision
		q.UpdatedAt = now
		if out, err = u.quotes.Update(ctx, q); err != nil {
			return err
		}

		switch change {
		case ProjectChangeCreate:
			if _, err := u.projects.Create(ctx, NewProjectFromQuote(q, u.newID(), now)); err != nil {
				return err
			}
		case ProjectChangeRemove:
			if _, err := u.projects.DeleteByQuoteID(ctx, q.ID); err != nil {
				return err
			}
		default:
			return nil
		}
		return u.sync.Sync(ctx)
	})
	if err != nil {
		logger.L().Error("[quote][usecase] set instruction failed", zap.String("quote_id", id), zap.Error(err))
		return entities.Quote{}, err
	}
	if out.ID != "" {
		logger.L().Info("[quote][usecase] instruction set",
			zap.String("quote_id", out.ID),
			zap.String("instruction", string(out.Instruction)),
			zap.Stringer("project_change", change),
		)
	}
	return out, nil
}

// DeleteQuote removes a quote after explicit confirmation. Derived projects are kept.
func (u *QuoteUseCase) DeleteQuote(ctx context.Context, id string, confirmed bool) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, ErrInvalidQuoteID
	}
	if !confirmed {
		return false, ErrDeleteNotConfirmed
	}

	var deleted bool
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = u.quotes.Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, err
	}
	if deleted {
		logger.L().Info("[quote][usecase] quote deleted", zap.String("quote_id", id))
	}
	return deleted, nil
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	var q entities.Quote
	err := u.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		q, err = u.quotes.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	var out []entities.Quote
	err := u.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		out, err = u.quotes.List(ctx)
		return err
	})
	return out, err
}

// GroupQuotes buckets quotes by discipline and survey type in catalog order. Empty buckets are
// included so the table layout does not shift as quotes come and go.
func (u *QuoteUseCase) GroupQuotes(ctx context.Context) ([]QuoteGroup, error) {
	quotes, err := u.ListQuotes(ctx)
	if err != nil {
		return nil, err
	}

	var groups []QuoteGroup
	for _, d := range entities.Catalog {
		for _, t := range d.SurveyTypes {
			g := QuoteGroup{Discipline: d.Name, SurveyType: t, Quotes: []entities.Quote{}}
			for _, q := range quotes {
				if q.Discipline == d.Name && q.SurveyType == t {
					g.Quotes = append(g.Quotes, q)
				}
			}
			groups = append(groups, g)
		}
	}
	return groups, nil
}
