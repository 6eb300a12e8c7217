package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"survey_tracker/internal/domain/entities"
	mock_interfaces "survey_tracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type projectMocks struct {
	tx       *passThroughTx
	projects *mock_interfaces.MockIProjectRepository
	reviews  *mock_interfaces.MockIReviewRepository
	exporter *mock_interfaces.MockIScheduleExporter
}

func newProjectUseCaseWithMocks(t *testing.T) (*ProjectUseCase, projectMocks) {
	ctrl := gomock.NewController(t)
	m := projectMocks{
		tx:       &passThroughTx{},
		projects: mock_interfaces.NewMockIProjectRepository(ctrl),
		reviews:  mock_interfaces.NewMockIReviewRepository(ctrl),
		exporter: mock_interfaces.NewMockIScheduleExporter(ctrl),
	}
	uc := NewProjectUseCase(m.tx, m.projects, m.reviews, m.exporter)
	uc.now = fixedClock
	uc.newID = sequentialIDs("p-")
	return uc, m
}

// expectSync answers the synchronizer's reads with the given state.
func (m projectMocks) expectSync(projects []entities.Project, reviews []entities.Review) {
	m.projects.EXPECT().List(gomock.Any()).Return(projects, nil)
	m.reviews.EXPECT().List(gomock.Any()).Return(reviews, nil)
}

func TestProjectUseCase_AddProject(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc, m := newProjectUseCaseWithMocks(t)

		_, err := uc.AddProject(context.Background(), ProjectInput{Email: "nope", Status: "paused"})
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		got := map[string]string{}
		for _, f := range ve.Fields {
			got[f.Field] = f.Rule
		}
		if got["survey_type"] != "required" || got["organization"] != "required" ||
			got["email"] != "email" || got["status"] != "oneof" {
			t.Fatalf("unexpected field errors: %+v", ve.Fields)
		}
		if m.tx.commits != 0 {
			t.Fatalf("expected no transaction")
		}
	})

	t.Run("manual project without quote", func(t *testing.T) {
		uc, m := newProjectUseCaseWithMocks(t)
		visit := day(2024, time.April, 3)

		m.projects.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)
		m.expectSync([]entities.Project{{ID: "p-1", Organization: "Beta", Contact: "Bo"}}, nil)
		m.reviews.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) { return r, nil },
		)

		p, err := uc.AddProject(context.Background(), ProjectInput{
			SurveyType:    " Topographical Survey - Standard ",
			Organization:  "Beta",
			Contact:       "Bo",
			SiteVisitDate: &visit,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "p-1" || p.QuoteID != "" || p.Status != entities.ProjectStatusInProgress {
			t.Fatalf("unexpected project: %+v", p)
		}
		if p.SurveyType != "Topographical Survey - Standard" {
			t.Fatalf("expected trimmed survey type, got %q", p.SurveyType)
		}
		visit = day(2030, time.January, 1)
		if p.SiteVisitDate == nil || *p.SiteVisitDate != day(2024, time.April, 3) {
			t.Fatalf("expected a copied site visit date, got %v", p.SiteVisitDate)
		}
	})
}

func TestProjectUseCase_UpdateDates(t *testing.T) {
	t.Run("invalid field", func(t *testing.T) {
		uc, _ := newProjectUseCaseWithMocks(t)
		_, err := uc.UpdateDates(context.Background(), "p-1", entities.MilestoneField("kickoff"), nil)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newProjectUseCaseWithMocks(t)
		_, err := uc.UpdateDates(context.Background(), "", entities.MilestoneSiteVisit, nil)
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		uc, m := newProjectUseCaseWithMocks(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.Project{}, nil)

		p, err := uc.UpdateDates(context.Background(), "p-9", entities.MilestoneSiteVisit, datePtr(day(2024, time.May, 1)))
		if err != nil || p.ID != "" {
			t.Fatalf("expected no-op, got %+v %v", p, err)
		}
	})

	t.Run("set then clear", func(t *testing.T) {
		uc, m := newProjectUseCaseWithMocks(t)
		stored := entities.Project{ID: "p-1", Organization: "Acme"}
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").DoAndReturn(
			func(context.Context, string) (entities.Project, error) { return stored.Clone(), nil },
		).Times(2)
		m.projects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				stored = p.Clone()
				return p, nil
			},
		).Times(2)
		m.projects.EXPECT().List(gomock.Any()).Return([]entities.Project{stored}, nil).Times(2)
		m.reviews.EXPECT().List(gomock.Any()).Return([]entities.Review{{Organization: "Acme"}}, nil).Times(2)

		p, err := uc.UpdateDates(context.Background(), "p-1", entities.MilestoneFirstDraft, datePtr(day(2024, time.May, 10)))
		if err != nil || p.FirstDraftDate == nil || *p.FirstDraftDate != day(2024, time.May, 10) {
			t.Fatalf("unexpected result: %+v %v", p, err)
		}

		p, err = uc.UpdateDates(context.Background(), "p-1", entities.MilestoneFirstDraft, nil)
		if err != nil || p.FirstDraftDate != nil {
			t.Fatalf("expected cleared date, got %+v %v", p, err)
		}
	})
}

func TestProjectUseCase_SetStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newProjectUseCaseWithMocks(t)
		_, err := uc.SetStatus(context.Background(), "p-1", entities.ProjectStatus("done"))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("works completed", func(t *testing.T) {
		uc, m := newProjectUseCaseWithMocks(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Organization: "Acme"}, nil)
		m.projects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)
		m.expectSync([]entities.Project{{ID: "p-1", Organization: "Acme"}}, []entities.Review{{Organization: "Acme"}})

		p, err := uc.SetStatus(context.Background(), "p-1", entities.ProjectStatusWorksCompleted)
		if err != nil || p.Status != entities.ProjectStatusWorksCompleted || !p.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected result: %+v %v", p, err)
		}
	})

	t.Run("sync error rolls back", func(t *testing.T) {
		uc, m := newProjectUseCaseWithMocks(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1"}, nil)
		m.projects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)
		m.projects.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.SetStatus(context.Background(), "p-1", entities.ProjectStatusDelayed)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if m.tx.commits != 0 {
			t.Fatalf("expected rollback")
		}
	})
}

func TestProjectUseCase_SetNotesAndMultipleDates(t *testing.T) {
	uc, m := newProjectUseCaseWithMocks(t)
	m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Organization: "Acme"}, nil).Times(2)
	m.projects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
	).Times(2)
	m.projects.EXPECT().List(gomock.Any()).Return([]entities.Project{{ID: "p-1", Organization: "Acme"}}, nil).Times(2)
	m.reviews.EXPECT().List(gomock.Any()).Return([]entities.Review{{Organization: "Acme"}}, nil).Times(2)

	p, err := uc.SetNotes(context.Background(), "p-1", "access via rear gate")
	if err != nil || p.Notes != "access via rear gate" {
		t.Fatalf("unexpected result: %+v %v", p, err)
	}
	p, err = uc.SetMultipleDates(context.Background(), "p-1", true)
	if err != nil || !p.MultipleDates {
		t.Fatalf("unexpected result: %+v %v", p, err)
	}
}

func TestProjectUseCase_GetProject(t *testing.T) {
	uc, m := newProjectUseCaseWithMocks(t)
	m.projects.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.Project{}, nil)

	_, err := uc.GetProject(context.Background(), "p-9")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectUseCase_ExportSchedule(t *testing.T) {
	t.Run("no exporter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewProjectUseCase(&passThroughTx{}, mock_interfaces.NewMockIProjectRepository(ctrl), nil, nil)
		if err := uc.ExportSchedule(context.Background(), io.Discard); !errors.Is(err, ErrExporterNotConfigured) {
			t.Fatalf("expected ErrExporterNotConfigured, got %v", err)
		}
	})

	t.Run("writes listed projects", func(t *testing.T) {
		uc, m := newProjectUseCaseWithMocks(t)
		list := []entities.Project{{ID: "p-1"}, {ID: "p-2"}}
		m.projects.EXPECT().List(gomock.Any()).Return(list, nil)
		m.exporter.EXPECT().WriteSchedule(gomock.Any(), gomock.Any(), list).DoAndReturn(
			func(_ context.Context, w io.Writer, _ []entities.Project) error {
				_, err := w.Write([]byte("xlsx"))
				return err
			},
		)

		var buf bytes.Buffer
		if err := uc.ExportSchedule(context.Background(), &buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "xlsx" {
			t.Fatalf("unexpected output %q", buf.String())
		}
	})

	t.Run("exporter error", func(t *testing.T) {
		uc, m := newProjectUseCaseWithMocks(t)
		m.projects.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.exporter.EXPECT().WriteSchedule(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk"))

		if err := uc.ExportSchedule(context.Background(), io.Discard); err == nil || err.Error() != "disk" {
			t.Fatalf("expected disk error, got %v", err)
		}
	})
}
