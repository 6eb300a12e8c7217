package repository

import (
	"context"

	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/infrastructure/database"
	"survey_tracker/internal/usecase/interfaces"

	"cloud.google.com/go/civil"
)

// CalendarNoteMemoryRepository keeps manual notes per day, in creation order.
type CalendarNoteMemoryRepository struct {
	store *database.MemoryStore
}

var _ interfaces.ICalendarNoteRepository = (*CalendarNoteMemoryRepository)(nil)

func NewCalendarNoteMemoryRepository(store *database.MemoryStore) *CalendarNoteMemoryRepository {
	return &CalendarNoteMemoryRepository{store: store}
}

func (r *CalendarNoteMemoryRepository) Create(ctx context.Context, n entities.CalendarNote) (entities.CalendarNote, error) {
	err := r.store.Write(ctx, func(st *database.State) error {
		for _, existing := range st.Notes[n.Date] {
			if existing.ID == n.ID {
				return ErrDuplicateID
			}
		}
		st.Notes[n.Date] = append(st.Notes[n.Date], n)
		return nil
	})
	if err != nil {
		return entities.CalendarNote{}, err
	}
	return n, nil
}

// ListBetween returns the notes of every day in [from, to] that has any.
func (r *CalendarNoteMemoryRepository) ListBetween(ctx context.Context, from, to civil.Date) (map[civil.Date][]entities.CalendarNote, error) {
	out := map[civil.Date][]entities.CalendarNote{}
	err := r.store.Read(ctx, func(st *database.State) error {
		for d, notes := range st.Notes {
			if d.Before(from) || d.After(to) || len(notes) == 0 {
				continue
			}
			out[d] = append([]entities.CalendarNote(nil), notes...)
		}
		return nil
	})
	return out, err
}

func (r *CalendarNoteMemoryRepository) Delete(ctx context.Context, date civil.Date, id string) (bool, error) {
	deleted := false
	err := r.store.Write(ctx, func(st *database.State) error {
		notes := st.Notes[date]
		for i := range notes {
			if notes[i].ID != id {
				continue
			}
			rest := append(append([]entities.CalendarNote(nil), notes[:i]...), notes[i+1:]...)
			if len(rest) == 0 {
				delete(st.Notes, date)
			} else {
				st.Notes[date] = rest
			}
			deleted = true
			return nil
		}
		return nil
	})
	return deleted, err
}
