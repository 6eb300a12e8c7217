package interfaces

import (
	"context"
	"survey_tracker/internal/domain/entities"
)

// IReviewRepository stores reviews keyed by organization name.
type IReviewRepository interface {
	Get(ctx context.Context, organization string) (entities.Review, error)
	List(ctx context.Context) ([]entities.Review, error)
	Put(ctx context.Context, r entities.Review) (entities.Review, error)
	Delete(ctx context.Context, organization string) error
}
