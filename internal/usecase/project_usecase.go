package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/usecase/interfaces"
	"survey_tracker/pkg/logger"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"
)

var (
	ErrProjectNotFound       = errors.New("project not found")
	ErrInvalidProjectID      = errors.New("invalid project id")
	ErrExporterNotConfigured = errors.New("schedule exporter not configured")
)

// ProjectInput describes a manually added project. Dates are optional.
type ProjectInput struct {
	SurveyType      string                 `json:"survey_type" validate:"required"`
	Discipline      string                 `json:"discipline"`
	Organization    string                 `json:"organization" validate:"required"`
	Contact         string                 `json:"contact"`
	Email           string                 `json:"email" validate:"omitempty,email"`
	SiteVisitDate   *civil.Date            `json:"site_visit_date"`
	FirstDraftDate  *civil.Date            `json:"first_draft_date"`
	FinalReportDate *civil.Date            `json:"final_report_date"`
	Notes           string                 `json:"notes"`
	Status          entities.ProjectStatus `json:"status"`
	MultipleDates   bool                   `json:"multiple_dates"`
}

func (in ProjectInput) normalize() ProjectInput {
	out := in
	out.SurveyType = strings.TrimSpace(in.SurveyType)
	out.Discipline = strings.TrimSpace(in.Discipline)
	out.Organization = strings.TrimSpace(in.Organization)
	out.Contact = strings.TrimSpace(in.Contact)
	out.Email = strings.TrimSpace(in.Email)
	if out.Status == "" {
		out.Status = entities.ProjectStatusInProgress
	}
	return out
}

func (in ProjectInput) validate() error {
	ve := &ValidationError{}
	if err := validateStruct(ve, in); err != nil {
		return err
	}
	if !in.Status.Valid() {
		ve.add("status", "oneof")
	}
	for _, d := range []struct {
		field string
		date  *civil.Date
	}{
		{"site_visit_date", in.SiteVisitDate},
		{"first_draft_date", in.FirstDraftDate},
		{"final_report_date", in.FinalReportDate},
	} {
		if d.date != nil && !d.date.IsValid() {
			ve.add(d.field, "date")
		}
	}
	return ve.result()
}

type IProjectUseCase interface {
	AddProject(ctx context.Context, in ProjectInput) (entities.Project, error)
	UpdateDates(ctx context.Context, id string, field entities.MilestoneField, date *civil.Date) (entities.Project, error)
	SetStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
	SetNotes(ctx context.Context, id, notes string) (entities.Project, error)
	SetMultipleDates(ctx context.Context, id string, multiple bool) (entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)
	ExportSchedule(ctx context.Context, w io.Writer) error
}

type ProjectUseCase struct {
	tx       interfaces.ITransactor
	projects interfaces.IProjectRepository
	sync     reviewSynchronizer
	exporter interfaces.IScheduleExporter
	now      func() time.Time
	newID    func() string
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

// NewProjectUseCase wires the project store. exporter may be nil, in which case ExportSchedule
// fails with ErrExporterNotConfigured.
func NewProjectUseCase(
	tx interfaces.ITransactor,
	projects interfaces.IProjectRepository,
	reviews interfaces.IReviewRepository,
	exporter interfaces.IScheduleExporter,
) *ProjectUseCase {
	return &ProjectUseCase{
		tx:       tx,
		projects: projects,
		sync:     newReviewSynchronizer(projects, reviews),
		exporter: exporter,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    newID,
	}
}

func (u *ProjectUseCase) AddProject(ctx context.Context, in ProjectInput) (entities.Project, error) {
	in = in.normalize()
	if err := in.validate(); err != nil {
		return entities.Project{}, err
	}

	now := u.now()
	p := entities.Project{
		ID:            u.newID(),
		SurveyType:    in.SurveyType,
		Discipline:    in.Discipline,
		Organization:  in.Organization,
		Contact:       in.Contact,
		Email:         in.Email,
		Notes:         in.Notes,
		Status:        in.Status,
		MultipleDates: in.MultipleDates,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	p.SetMilestone(entities.MilestoneSiteVisit, in.SiteVisitDate)
	p.SetMilestone(entities.MilestoneFirstDraft, in.FirstDraftDate)
	p.SetMilestone(entities.MilestoneFinalReport, in.FinalReportDate)

	var created entities.Project
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if created, err = u.projects.Create(ctx, p); err != nil {
			return err
		}
		return u.sync.Sync(ctx)
	})
	if err != nil {
		logger.L().Error("[project][usecase] create failed", zap.Error(err))
		return entities.Project{}, err
	}
	logger.L().Info("[project][usecase] project created",
		zap.String("project_id", created.ID),
		zap.String("organization", created.Organization),
	)
	return created, nil
}

// UpdateDates sets one milestone date. A nil date clears it.
func (u *ProjectUseCase) UpdateDates(ctx context.Context, id string, field entities.MilestoneField, date *civil.Date) (entities.Project, error) {
	if !field.Valid() {
		return entities.Project{}, invalidField("field", "oneof")
	}
	if date != nil && !date.IsValid() {
		return entities.Project{}, invalidField("date", "date")
	}
	return u.mutate(ctx, id, func(p *entities.Project) {
		p.SetMilestone(field, date)
	})
}

func (u *ProjectUseCase) SetStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	if !status.Valid() {
		return entities.Project{}, invalidField("status", "oneof")
	}
	return u.mutate(ctx, id, func(p *entities.Project) {
		p.Status = status
	})
}

func (u *ProjectUseCase) SetNotes(ctx context.Context, id, notes string) (entities.Project, error) {
	return u.mutate(ctx, id, func(p *entities.Project) {
		p.Notes = notes
	})
}

func (u *ProjectUseCase) SetMultipleDates(ctx context.Context, id string, multiple bool) (entities.Project, error) {
	return u.mutate(ctx, id, func(p *entities.Project) {
		p.MultipleDates = multiple
	})
}

// mutate applies fn to the stored project and resynchronizes reviews before commit.
// An unknown id is a no-op and yields a zero Project.
func (u *ProjectUseCase) mutate(ctx context.Context, id string, fn func(p *entities.Project)) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	var out entities.Project
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := u.projects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.ID == "" {
			return nil
		}
		fn(&p)
		p.UpdatedAt = u.now()
		if out, err = u.projects.Update(ctx, p); err != nil {
			return err
		}
		return u.sync.Sync(ctx)
	})
	if err != nil {
		logger.L().Error("[project][usecase] update failed", zap.String("project_id", id), zap.Error(err))
		return entities.Project{}, err
	}
	return out, nil
}

func (u *ProjectUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	var p entities.Project
	err := u.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		p, err = u.projects.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) ListProjects(ctx context.Context) ([]entities.Project, error) {
	var out []entities.Project
	err := u.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		out, err = u.projects.List(ctx)
		return err
	})
	return out, err
}

// ExportSchedule writes every project and its milestone dates through the configured exporter.
func (u *ProjectUseCase) ExportSchedule(ctx context.Context, w io.Writer) error {
	if u.exporter == nil {
		return ErrExporterNotConfigured
	}
	projects, err := u.ListProjects(ctx)
	if err != nil {
		return err
	}
	if err := u.exporter.WriteSchedule(ctx, w, projects); err != nil {
		logger.L().Error("[project][export] schedule export failed", zap.Error(err))
		return err
	}
	logger.L().Info("[project][export] schedule exported", zap.Int("projects", len(projects)))
	return nil
}
