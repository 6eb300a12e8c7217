package repository

import (
	"context"
	"errors"

	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/infrastructure/database"
	"survey_tracker/internal/usecase/interfaces"
)

var ErrDuplicateID = errors.New("record with this id already exists")

// QuoteMemoryRepository persists Quote entities in the session memory store.
//
// Quotes are kept in a slice so insertion order is the display order. Returned quotes are
// clones; mutating them never affects stored state.
type QuoteMemoryRepository struct {
	store *database.MemoryStore
}

var _ interfaces.IQuoteRepository = (*QuoteMemoryRepository)(nil)

func NewQuoteMemoryRepository(store *database.MemoryStore) *QuoteMemoryRepository {
	return &QuoteMemoryRepository{store: store}
}

func (r *QuoteMemoryRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	err := r.store.Write(ctx, func(st *database.State) error {
		if indexOfQuote(st.Quotes, q.ID) >= 0 {
			return ErrDuplicateID
		}
		st.Quotes = append(st.Quotes, q.Clone())
		return nil
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q.Clone(), nil
}

func (r *QuoteMemoryRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var out entities.Quote
	err := r.store.Read(ctx, func(st *database.State) error {
		if i := indexOfQuote(st.Quotes, id); i >= 0 {
			out = st.Quotes[i].Clone()
		}
		return nil
	})
	return out, err
}

func (r *QuoteMemoryRepository) List(ctx context.Context) ([]entities.Quote, error) {
	var out []entities.Quote
	err := r.store.Read(ctx, func(st *database.State) error {
		out = make([]entities.Quote, 0, len(st.Quotes))
		for _, q := range st.Quotes {
			out = append(out, q.Clone())
		}
		return nil
	})
	return out, err
}

// Update replaces the stored quote with the same ID. A miss returns a zero Quote.
func (r *QuoteMemoryRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	var out entities.Quote
	err := r.store.Write(ctx, func(st *database.State) error {
		i := indexOfQuote(st.Quotes, q.ID)
		if i < 0 {
			return nil
		}
		st.Quotes[i] = q.Clone()
		out = q.Clone()
		return nil
	})
	return out, err
}

func (r *QuoteMemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.store.Write(ctx, func(st *database.State) error {
		i := indexOfQuote(st.Quotes, id)
		if i < 0 {
			return nil
		}
		st.Quotes = append(st.Quotes[:i], st.Quotes[i+1:]...)
		deleted = true
		return nil
	})
	return deleted, err
}

func indexOfQuote(quotes []entities.Quote, id string) int {
	if id == "" {
		return -1
	}
	for i := range quotes {
		if quotes[i].ID == id {
			return i
		}
	}
	return -1
}
