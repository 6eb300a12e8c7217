package usecase

import (
	"context"
	"errors"
	"testing"

	"survey_tracker/internal/domain/entities"
	mock_interfaces "survey_tracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type quoteMocks struct {
	tx       *passThroughTx
	quotes   *mock_interfaces.MockIQuoteRepository
	projects *mock_interfaces.MockIProjectRepository
	reviews  *mock_interfaces.MockIReviewRepository
}

func newQuoteUseCaseWithMocks(t *testing.T) (*QuoteUseCase, quoteMocks) {
	ctrl := gomock.NewController(t)
	m := quoteMocks{
		tx:       &passThroughTx{},
		quotes:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		projects: mock_interfaces.NewMockIProjectRepository(ctrl),
		reviews:  mock_interfaces.NewMockIReviewRepository(ctrl),
	}
	uc := NewQuoteUseCase(m.tx, m.quotes, m.projects, m.reviews)
	uc.now = fixedClock
	uc.newID = sequentialIDs("id-")
	return uc, m
}

func TestQuoteUseCase_AddQuote(t *testing.T) {
	t.Run("missing fields rejected before any write", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)

		_, err := uc.AddQuote(context.Background(), QuoteInput{Organization: "  "})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected *ValidationError, got %T", err)
		}
		want := map[string]bool{
			"discipline": true, "survey_type": true, "organization": true, "contact": true,
			"email": true, "line_items": true, "turnaround_date": true,
		}
		for _, f := range ve.Fields {
			delete(want, f.Field)
		}
		if len(want) != 0 {
			t.Fatalf("missing field errors %v in %+v", want, ve.Fields)
		}
		if m.tx.commits != 0 {
			t.Fatalf("expected no transaction")
		}
	})

	t.Run("negative amount and empty description", func(t *testing.T) {
		uc, _ := newQuoteUseCaseWithMocks(t)
		in := validQuoteInput()
		in.LineItems = []LineItemInput{{Description: " ", Amount: -1}}

		_, err := uc.AddQuote(context.Background(), in)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		got := map[string]string{}
		for _, f := range ve.Fields {
			got[f.Field] = f.Rule
		}
		if got["line_items[0].description"] != "required" || got["line_items[0].amount"] != "gte" {
			t.Fatalf("unexpected field errors: %+v", ve.Fields)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc, _ := newQuoteUseCaseWithMocks(t)
		in := validQuoteInput()
		in.Email = "not-an-email"

		_, err := uc.AddQuote(context.Background(), in)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("survey type outside discipline", func(t *testing.T) {
		uc, _ := newQuoteUseCaseWithMocks(t)
		in := validQuoteInput()
		in.SurveyType = "Floor Plans"

		_, err := uc.AddQuote(context.Background(), in)
		var ve *ValidationError
		if !errors.As(err, &ve) || len(ve.Fields) != 1 || ve.Fields[0] != (FieldError{Field: "survey_type", Rule: "oneof"}) {
			t.Fatalf("expected survey_type oneof error, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))

		_, err := uc.AddQuote(context.Background(), validQuoteInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID != "id-1" || q.Organization != "Acme" || q.Instruction != entities.InstructionPending {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if !q.CreatedAt.Equal(fixedNow) || !q.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)

		in := validQuoteInput()
		in.Organization = "  Acme  "
		res, err := uc.AddQuote(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status() != entities.QuoteStatusPending || res.Total() != 2000 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestQuoteUseCase_EditQuote(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newQuoteUseCaseWithMocks(t)
		_, err := uc.EditQuote(context.Background(), "  ", validQuoteInput())
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quote{}, nil)

		res, err := uc.EditQuote(context.Background(), "q-9", validQuoteInput())
		if err != nil || res.ID != "" {
			t.Fatalf("expected zero quote and nil error, got %+v %v", res, err)
		}
	})

	t.Run("keeps identity and instruction", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		created := fixedNow.AddDate(0, 0, -3)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
			ID: "q-1", Organization: "Old", Instruction: entities.InstructionYes, CreatedAt: created,
		}, nil)
		m.quotes.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		in := validQuoteInput()
		in.Organization = "Beta"
		res, err := uc.EditQuote(context.Background(), "q-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "q-1" || res.Organization != "Beta" || res.Instruction != entities.InstructionYes {
			t.Fatalf("unexpected quote: %+v", res)
		}
		if !res.CreatedAt.Equal(created) || !res.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected timestamps: %+v", res)
		}
	})
}

func TestQuoteUseCase_SetInstruction(t *testing.T) {
	t.Run("invalid decision", func(t *testing.T) {
		uc, _ := newQuoteUseCaseWithMocks(t)
		_, err := uc.SetInstruction(context.Background(), "q-1", entities.Instruction("maybe"))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quote{}, nil)

		res, err := uc.SetInstruction(context.Background(), "q-9", entities.InstructionYes)
		if err != nil || res.ID != "" {
			t.Fatalf("expected no-op, got %+v %v", res, err)
		}
	})

	t.Run("pending to yes creates project and review", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		q := entities.Quote{
			ID: "q-1", Discipline: "Building Survey", SurveyType: "Level 2",
			Organization: "Acme", Contact: "Jane", Email: "jane@acme.com",
			Instruction: entities.InstructionPending,
		}
		var project entities.Project
		gomock.InOrder(
			m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil),
			m.quotes.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
			),
			m.projects.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p entities.Project) (entities.Project, error) {
					project = p
					return p, nil
				},
			),
			m.projects.EXPECT().List(gomock.Any()).DoAndReturn(
				func(context.Context) ([]entities.Project, error) { return []entities.Project{project}, nil },
			),
			m.reviews.EXPECT().List(gomock.Any()).Return(nil, nil),
			m.reviews.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, r entities.Review) (entities.Review, error) {
					if r.Organization != "Acme" || r.Name != "Jane" || r.Quality != 0 {
						t.Fatalf("unexpected review: %+v", r)
					}
					return r, nil
				},
			),
		)

		res, err := uc.SetInstruction(context.Background(), " q-1 ", entities.InstructionYes)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status() != entities.QuoteStatusInstructed {
			t.Fatalf("expected instructed, got %s", res.Status())
		}
		if project.QuoteID != "q-1" || project.SurveyType != "Building Survey - Level 2" ||
			project.Status != entities.ProjectStatusInProgress || project.Notes != "Instructed from quote #q-1" {
			t.Fatalf("unexpected project: %+v", project)
		}
	})

	t.Run("yes to no removes projects and stale review", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Instruction: entities.InstructionYes}, nil)
		m.quotes.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		m.projects.EXPECT().DeleteByQuoteID(gomock.Any(), "q-1").Return(1, nil)
		m.projects.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.reviews.EXPECT().List(gomock.Any()).Return([]entities.Review{{Organization: "Acme"}}, nil)
		m.reviews.EXPECT().Delete(gomock.Any(), "Acme").Return(nil)

		res, err := uc.SetInstruction(context.Background(), "q-1", entities.InstructionNo)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status() != entities.QuoteStatusNotInstructed {
			t.Fatalf("expected not_instructed, got %s", res.Status())
		}
	})

	t.Run("repeated yes leaves projects alone", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Instruction: entities.InstructionYes}, nil)
		m.quotes.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		if _, err := uc.SetInstruction(context.Background(), "q-1", entities.InstructionYes); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("project create error aborts", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Instruction: entities.InstructionNo}, nil)
		m.quotes.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		m.projects.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Project{}, errors.New("db"))

		_, err := uc.SetInstruction(context.Background(), "q-1", entities.InstructionYes)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if m.tx.commits != 0 {
			t.Fatalf("expected rollback")
		}
	})
}

func TestQuoteUseCase_DeleteQuote(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		uc, _ := newQuoteUseCaseWithMocks(t)
		ok, err := uc.DeleteQuote(context.Background(), "q-1", false)
		if !errors.Is(err, ErrDeleteNotConfirmed) || ok {
			t.Fatalf("expected ErrDeleteNotConfirmed, got %v %v", ok, err)
		}
	})

	t.Run("confirmed delete leaves projects", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().Delete(gomock.Any(), "q-1").Return(true, nil)

		ok, err := uc.DeleteQuote(context.Background(), "q-1", true)
		if err != nil || !ok {
			t.Fatalf("expected deletion, got %v %v", ok, err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().Delete(gomock.Any(), "q-9").Return(false, nil)

		ok, err := uc.DeleteQuote(context.Background(), "q-9", true)
		if err != nil || ok {
			t.Fatalf("expected no-op, got %v %v", ok, err)
		}
	})
}

func TestQuoteUseCase_GetQuote(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quote{}, nil)

		_, err := uc.GetQuote(context.Background(), "q-9")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		q, err := uc.GetQuote(context.Background(), "q-1")
		if err != nil || q.ID != "q-1" {
			t.Fatalf("unexpected result: %+v %v", q, err)
		}
		if m.tx.reads != 1 {
			t.Fatalf("expected a read-only transaction")
		}
	})
}

func TestQuoteUseCase_GroupQuotes(t *testing.T) {
	uc, m := newQuoteUseCaseWithMocks(t)
	m.quotes.EXPECT().List(gomock.Any()).Return([]entities.Quote{
		{ID: "a", Discipline: "Measured Survey", SurveyType: "Elevations"},
		{ID: "b", Discipline: "Building Survey", SurveyType: "Level 1"},
		{ID: "c", Discipline: "Measured Survey", SurveyType: "Elevations"},
	}, nil)

	groups, err := uc.GroupQuotes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := 0
	for _, d := range entities.Catalog {
		total += len(d.SurveyTypes)
	}
	if len(groups) != total {
		t.Fatalf("expected %d groups, got %d", total, len(groups))
	}
	if groups[0].Discipline != "Building Survey" || groups[0].SurveyType != "Level 1" || len(groups[0].Quotes) != 1 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	for _, g := range groups {
		if g.SurveyType == "Elevations" {
			if len(g.Quotes) != 2 || g.Quotes[0].ID != "a" || g.Quotes[1].ID != "c" {
				t.Fatalf("unexpected elevations group: %+v", g)
			}
		}
	}
}
