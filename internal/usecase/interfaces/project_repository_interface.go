package interfaces

import (
	"context"
	"survey_tracker/internal/domain/entities"
)

// IProjectRepository abstracts storage for Project. List returns projects in insertion order.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	DeleteByQuoteID(ctx context.Context, quoteID string) (int, error)
}
