package usecase

import (
	"context"
	"strings"

	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/usecase/interfaces"
	"survey_tracker/pkg/logger"

	"go.uber.org/zap"
)

// IReviewUseCase exposes organization reviews.
//
// Review records are never created or deleted directly: they follow the set of organizations
// that have projects (see reviewSynchronizer).
type IReviewUseCase interface {
	SetRating(ctx context.Context, organization string, field entities.RatingField, value int) (entities.Review, error)
	SetReviewNotes(ctx context.Context, organization, notes string) (entities.Review, error)
	ListReviews(ctx context.Context) ([]entities.Review, error)
	ReviewsByOrg(ctx context.Context) (map[string]entities.Review, error)
}

// reviewSynchronizer keeps one review per organization present in the project store.
//
// It must run inside the transaction of the project mutation that triggered it.
type reviewSynchronizer struct {
	projects interfaces.IProjectRepository
	reviews  interfaces.IReviewRepository
}

func newReviewSynchronizer(projects interfaces.IProjectRepository, reviews interfaces.IReviewRepository) reviewSynchronizer {
	return reviewSynchronizer{projects: projects, reviews: reviews}
}

func (s reviewSynchronizer) Sync(ctx context.Context) error {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return err
	}
	existing, err := s.reviews.List(ctx)
	if err != nil {
		return err
	}

	keys := make(map[string]bool, len(existing))
	for _, r := range existing {
		keys[r.Organization] = true
	}

	active := make(map[string]bool, len(projects))
	for _, p := range projects {
		if active[p.Organization] {
			continue
		}
		active[p.Organization] = true
		if keys[p.Organization] {
			continue
		}
		if _, err := s.reviews.Put(ctx, entities.NewReviewFor(p)); err != nil {
			return err
		}
		logger.L().Debug("[review][sync] review created", zap.String("organization", p.Organization))
	}

	for org := range keys {
		if active[org] {
			continue
		}
		if err := s.reviews.Delete(ctx, org); err != nil {
			return err
		}
		logger.L().Debug("[review][sync] review removed", zap.String("organization", org))
	}
	return nil
}

type ReviewUseCase struct {
	tx      interfaces.ITransactor
	reviews interfaces.IReviewRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(tx interfaces.ITransactor, reviews interfaces.IReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{tx: tx, reviews: reviews}
}

// SetRating stores a 0..5 rating (0 = unrated). Unknown organizations are a no-op.
func (u *ReviewUseCase) SetRating(ctx context.Context, organization string, field entities.RatingField, value int) (entities.Review, error) {
	if !field.Valid() {
		return entities.Review{}, invalidField("field", "oneof")
	}
	if value < entities.RatingUnrated || value > entities.RatingMax {
		return entities.Review{}, invalidField("value", "range")
	}
	return u.update(ctx, organization, func(r *entities.Review) {
		r.SetRating(field, value)
	})
}

func (u *ReviewUseCase) SetReviewNotes(ctx context.Context, organization, notes string) (entities.Review, error) {
	return u.update(ctx, organization, func(r *entities.Review) {
		r.Notes = notes
	})
}

func (u *ReviewUseCase) update(ctx context.Context, organization string, apply func(r *entities.Review)) (entities.Review, error) {
	organization = strings.TrimSpace(organization)
	var out entities.Review
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		r, err := u.reviews.Get(ctx, organization)
		if err != nil {
			return err
		}
		if r.Organization == "" {
			return nil
		}
		apply(&r)
		out, err = u.reviews.Put(ctx, r)
		return err
	})
	if err != nil {
		return entities.Review{}, err
	}
	return out, nil
}

func (u *ReviewUseCase) ListReviews(ctx context.Context) ([]entities.Review, error) {
	var out []entities.Review
	err := u.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		out, err = u.reviews.List(ctx)
		return err
	})
	return out, err
}

func (u *ReviewUseCase) ReviewsByOrg(ctx context.Context) (map[string]entities.Review, error) {
	list, err := u.ListReviews(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]entities.Review, len(list))
	for _, r := range list {
		out[r.Organization] = r
	}
	return out, nil
}
