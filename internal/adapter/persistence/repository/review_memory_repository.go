package repository

import (
	"context"
	"sort"

	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/infrastructure/database"
	"survey_tracker/internal/usecase/interfaces"
)

// ReviewMemoryRepository stores reviews keyed by organization name.
type ReviewMemoryRepository struct {
	store *database.MemoryStore
}

var _ interfaces.IReviewRepository = (*ReviewMemoryRepository)(nil)

func NewReviewMemoryRepository(store *database.MemoryStore) *ReviewMemoryRepository {
	return &ReviewMemoryRepository{store: store}
}

func (r *ReviewMemoryRepository) Get(ctx context.Context, organization string) (entities.Review, error) {
	var out entities.Review
	err := r.store.Read(ctx, func(st *database.State) error {
		out = st.Reviews[organization]
		return nil
	})
	return out, err
}

// List returns reviews sorted by organization name.
func (r *ReviewMemoryRepository) List(ctx context.Context) ([]entities.Review, error) {
	var out []entities.Review
	err := r.store.Read(ctx, func(st *database.State) error {
		out = make([]entities.Review, 0, len(st.Reviews))
		for _, rv := range st.Reviews {
			out = append(out, rv)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Organization < out[j].Organization })
	return out, err
}

func (r *ReviewMemoryRepository) Put(ctx context.Context, rv entities.Review) (entities.Review, error) {
	err := r.store.Write(ctx, func(st *database.State) error {
		st.Reviews[rv.Organization] = rv
		return nil
	})
	if err != nil {
		return entities.Review{}, err
	}
	return rv, nil
}

func (r *ReviewMemoryRepository) Delete(ctx context.Context, organization string) error {
	return r.store.Write(ctx, func(st *database.State) error {
		delete(st.Reviews, organization)
		return nil
	})
}
