package usecase

import (
	"context"
	"strconv"
	"time"

	"survey_tracker/internal/adapter/persistence/repository"
	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/infrastructure/database"

	"cloud.google.com/go/civil"
)

// passThroughTx runs fn directly; mocked repositories see every call.
type passThroughTx struct {
	commits int
	reads   int
}

func (tx *passThroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	tx.commits++
	return nil
}

func (tx *passThroughTx) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.reads++
	return fn(ctx)
}

var fixedNow = time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + strconv.Itoa(n)
	}
}

func validQuoteInput() QuoteInput {
	return QuoteInput{
		Discipline:     "Building Survey",
		SurveyType:     "Level 2",
		Organization:   "Acme",
		Contact:        "Jane Roe",
		Email:          "jane@acme.com",
		LineItems:      []LineItemInput{{Description: "Survey", Amount: 2000}},
		TurnaroundDate: civil.Date{Year: 2024, Month: time.April, Day: 1},
	}
}

func day(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func datePtr(d civil.Date) *civil.Date { return &d }

// tracker wires every use case over one in-memory store.
type tracker struct {
	store    *database.MemoryStore
	quotes   *QuoteUseCase
	projects *ProjectUseCase
	calendar *CalendarUseCase
	reviews  *ReviewUseCase
}

func newTracker(opts ...CalendarOption) tracker {
	store := database.NewMemoryStore()
	quoteRepo := repository.NewQuoteMemoryRepository(store)
	projectRepo := repository.NewProjectMemoryRepository(store)
	noteRepo := repository.NewCalendarNoteMemoryRepository(store)
	reviewRepo := repository.NewReviewMemoryRepository(store)

	return tracker{
		store:    store,
		quotes:   NewQuoteUseCase(store, quoteRepo, projectRepo, reviewRepo),
		projects: NewProjectUseCase(store, projectRepo, reviewRepo, nil),
		calendar: NewCalendarUseCase(store, projectRepo, noteRepo, opts...),
		reviews:  NewReviewUseCase(store, reviewRepo),
	}
}

func projectsForQuote(list []entities.Project, quoteID string) int {
	n := 0
	for _, p := range list {
		if p.QuoteID == quoteID {
			n++
		}
	}
	return n
}
