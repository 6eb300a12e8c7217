package repository

import (
	"context"

	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/infrastructure/database"
	"survey_tracker/internal/usecase/interfaces"
)

// ProjectMemoryRepository persists Project entities in the session memory store.
//
// Lookup by quote id is a scan: the quote back-reference is weak and usually maps to one project.
type ProjectMemoryRepository struct {
	store *database.MemoryStore
}

var _ interfaces.IProjectRepository = (*ProjectMemoryRepository)(nil)

func NewProjectMemoryRepository(store *database.MemoryStore) *ProjectMemoryRepository {
	return &ProjectMemoryRepository{store: store}
}

func (r *ProjectMemoryRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	err := r.store.Write(ctx, func(st *database.State) error {
		if indexOfProject(st.Projects, p.ID) >= 0 {
			return ErrDuplicateID
		}
		st.Projects = append(st.Projects, p.Clone())
		return nil
	})
	if err != nil {
		return entities.Project{}, err
	}
	return p.Clone(), nil
}

func (r *ProjectMemoryRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	var out entities.Project
	err := r.store.Read(ctx, func(st *database.State) error {
		if i := indexOfProject(st.Projects, id); i >= 0 {
			out = st.Projects[i].Clone()
		}
		return nil
	})
	return out, err
}

func (r *ProjectMemoryRepository) List(ctx context.Context) ([]entities.Project, error) {
	var out []entities.Project
	err := r.store.Read(ctx, func(st *database.State) error {
		out = make([]entities.Project, 0, len(st.Projects))
		for _, p := range st.Projects {
			out = append(out, p.Clone())
		}
		return nil
	})
	return out, err
}

func (r *ProjectMemoryRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	var out entities.Project
	err := r.store.Write(ctx, func(st *database.State) error {
		i := indexOfProject(st.Projects, p.ID)
		if i < 0 {
			return nil
		}
		st.Projects[i] = p.Clone()
		out = p.Clone()
		return nil
	})
	return out, err
}

// DeleteByQuoteID removes every project derived from quoteID and reports how many went.
func (r *ProjectMemoryRepository) DeleteByQuoteID(ctx context.Context, quoteID string) (int, error) {
	removed := 0
	if quoteID == "" {
		return 0, nil
	}
	err := r.store.Write(ctx, func(st *database.State) error {
		kept := st.Projects[:0]
		for _, p := range st.Projects {
			if p.QuoteID == quoteID {
				removed++
				continue
			}
			kept = append(kept, p)
		}
		st.Projects = kept
		return nil
	})
	return removed, err
}

func indexOfProject(projects []entities.Project, id string) int {
	if id == "" {
		return -1
	}
	for i := range projects {
		if projects[i].ID == id {
			return i
		}
	}
	return -1
}
