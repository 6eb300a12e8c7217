package interfaces

import (
	"context"
	"survey_tracker/internal/domain/entities"
)

// IQuoteRepository abstracts storage for Quote.
//
// Lookups that miss return a zero Quote (empty ID) and a nil error; callers decide whether a
// miss is a no-op or a not-found.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) (bool, error)
}
