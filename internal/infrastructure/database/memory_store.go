package database

import (
	"context"
	"errors"
	"sync"

	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/usecase/interfaces"

	"cloud.google.com/go/civil"
)

var ErrReadOnlyTransaction = errors.New("write attempted inside a read-only transaction")

// State is the whole ephemeral dataset of one running session.
//
// Ordering:
//   - Quotes and Projects keep insertion order (display order).
//   - Notes keep creation order per day.
type State struct {
	Quotes   []entities.Quote
	Projects []entities.Project
	Notes    map[civil.Date][]entities.CalendarNote
	Reviews  map[string]entities.Review
}

func newState() State {
	return State{
		Notes:   map[civil.Date][]entities.CalendarNote{},
		Reviews: map[string]entities.Review{},
	}
}

// Clone deep-copies the state so a transaction can be discarded without side effects.
func (s State) Clone() State {
	out := State{
		Quotes:   make([]entities.Quote, len(s.Quotes)),
		Projects: make([]entities.Project, len(s.Projects)),
		Notes:    make(map[civil.Date][]entities.CalendarNote, len(s.Notes)),
		Reviews:  make(map[string]entities.Review, len(s.Reviews)),
	}
	for i, q := range s.Quotes {
		out.Quotes[i] = q.Clone()
	}
	for i, p := range s.Projects {
		out.Projects[i] = p.Clone()
	}
	for d, notes := range s.Notes {
		out.Notes[d] = append([]entities.CalendarNote(nil), notes...)
	}
	for k, r := range s.Reviews {
		out.Reviews[k] = r
	}
	return out
}

type txKey struct{}

type txState struct {
	store    *MemoryStore
	state    *State
	readOnly bool
}

// MemoryStore holds the session state in process memory.
//
// Writes are serialized behind one lock and applied to a cloned state that is swapped in on
// commit, so readers only ever observe fully derived state.
type MemoryStore struct {
	mu    sync.RWMutex
	state State
}

var _ interfaces.ITransactor = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: newState()}
}

func (s *MemoryStore) current(ctx context.Context) (*txState, bool) {
	tx, ok := ctx.Value(txKey{}).(*txState)
	if !ok || tx.store != s {
		return nil, false
	}
	return tx, true
}

func (s *MemoryStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := s.current(ctx); ok {
		if tx.readOnly {
			return ErrReadOnlyTransaction
		}
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.state.Clone()
	if err := fn(context.WithValue(ctx, txKey{}, &txState{store: s, state: &work})); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *MemoryStore) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := s.current(ctx); ok {
		return fn(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(context.WithValue(ctx, txKey{}, &txState{store: s, state: &s.state, readOnly: true}))
}

// Read hands fn the state visible to ctx. fn must not mutate it.
func (s *MemoryStore) Read(ctx context.Context, fn func(st *State) error) error {
	if tx, ok := s.current(ctx); ok {
		return fn(tx.state)
	}
	return s.ReadOnly(ctx, func(ctx context.Context) error {
		return s.Read(ctx, fn)
	})
}

// Write hands fn the transactional state of ctx. Outside a transaction the single write is
// committed on its own.
func (s *MemoryStore) Write(ctx context.Context, fn func(st *State) error) error {
	if tx, ok := s.current(ctx); ok {
		if tx.readOnly {
			return ErrReadOnlyTransaction
		}
		return fn(tx.state)
	}
	return s.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.Write(ctx, fn)
	})
}
