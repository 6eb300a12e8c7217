package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/usecase/interfaces"
	"survey_tracker/pkg/logger"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"
)

const (
	// MaxRangeDays bounds Range queries, inclusive of both ends.
	MaxRangeDays  = 366
	monthGridDays = 42
	windowMonths  = 3
)

var (
	ErrEmptyCalendarNote = errors.New("calendar note needs text or a flag")
	ErrInvalidDateRange  = errors.New("invalid date range")
)

type NoteInput struct {
	Date         civil.Date `json:"date"`
	Text         string     `json:"text"`
	IsTargetDate bool       `json:"is_target_date"`
	IsReportsIn  bool       `json:"is_reports_in"`
}

type ICalendarUseCase interface {
	AddNote(ctx context.Context, in NoteInput) (entities.CalendarNote, error)
	DeleteNote(ctx context.Context, date civil.Date, id string) (bool, error)
	EventsForDate(ctx context.Context, date civil.Date) (entities.CalendarDay, error)
	Range(ctx context.Context, from, to civil.Date) ([]entities.CalendarDay, error)
	MonthGrid(ctx context.Context, year int, month time.Month) (entities.CalendarMonth, error)
	ThreeMonthWindow(ctx context.Context, year int, month time.Month) ([]entities.CalendarMonth, error)
}

// CalendarUseCase projects milestone dates and manual notes onto days. Queries never write.
type CalendarUseCase struct {
	tx       interfaces.ITransactor
	projects interfaces.IProjectRepository
	notes    interfaces.ICalendarNoteRepository
	clock    func() time.Time
	loc      *time.Location
	newID    func() string
}

var _ ICalendarUseCase = (*CalendarUseCase)(nil)

type CalendarOption func(*CalendarUseCase)

// WithClock replaces the source of "now" used to flag today.
func WithClock(clock func() time.Time) CalendarOption {
	return func(u *CalendarUseCase) { u.clock = clock }
}

// WithLocation sets the time zone in which "today" is evaluated.
func WithLocation(loc *time.Location) CalendarOption {
	return func(u *CalendarUseCase) {
		if loc != nil {
			u.loc = loc
		}
	}
}

func NewCalendarUseCase(
	tx interfaces.ITransactor,
	projects interfaces.IProjectRepository,
	notes interfaces.ICalendarNoteRepository,
	opts ...CalendarOption,
) *CalendarUseCase {
	u := &CalendarUseCase{
		tx:       tx,
		projects: projects,
		notes:    notes,
		clock:    time.Now,
		loc:      time.Local,
		newID:    newID,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *CalendarUseCase) today() civil.Date {
	return civil.DateOf(u.clock().In(u.loc))
}

func (u *CalendarUseCase) AddNote(ctx context.Context, in NoteInput) (entities.CalendarNote, error) {
	if !in.Date.IsValid() {
		return entities.CalendarNote{}, invalidField("date", "required")
	}
	n := entities.CalendarNote{
		ID:           u.newID(),
		Date:         in.Date,
		Text:         in.Text,
		IsTargetDate: in.IsTargetDate,
		IsReportsIn:  in.IsReportsIn,
		CreatedAt:    u.clock().UTC(),
	}
	if n.Empty() {
		return entities.CalendarNote{}, &ValidationError{
			Fields: []FieldError{{Field: "text", Rule: "required_without_flags"}},
			Cause:  ErrEmptyCalendarNote,
		}
	}

	var created entities.CalendarNote
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = u.notes.Create(ctx, n)
		return err
	})
	if err != nil {
		logger.L().Error("[calendar][usecase] add note failed", zap.Error(err))
		return entities.CalendarNote{}, err
	}
	logger.L().Info("[calendar][usecase] note added",
		zap.String("note_id", created.ID),
		zap.String("date", created.Date.String()),
		zap.Bool("target", created.IsTargetDate),
	)
	return created, nil
}

func (u *CalendarUseCase) DeleteNote(ctx context.Context, date civil.Date, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if !date.IsValid() {
		return false, invalidField("date", "required")
	}
	if id == "" {
		return false, invalidField("id", "required")
	}

	var deleted bool
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = u.notes.Delete(ctx, date, id)
		return err
	})
	return deleted, err
}

func (u *CalendarUseCase) EventsForDate(ctx context.Context, date civil.Date) (entities.CalendarDay, error) {
	if !date.IsValid() {
		return entities.CalendarDay{}, invalidField("date", "required")
	}
	days, err := u.collect(ctx, date, date, func(civil.Date) bool { return true })
	if err != nil {
		return entities.CalendarDay{}, err
	}
	return days[0], nil
}

// Range returns one day per date in [from, to]. Every day of the range counts as in-month.
func (u *CalendarUseCase) Range(ctx context.Context, from, to civil.Date) ([]entities.CalendarDay, error) {
	if !from.IsValid() || !to.IsValid() || to.Before(from) {
		return nil, ErrInvalidDateRange
	}
	if to.DaysSince(from)+1 > MaxRangeDays {
		return nil, ErrInvalidDateRange
	}
	return u.collect(ctx, from, to, func(civil.Date) bool { return true })
}

// MonthGrid returns the 6x7 grid that starts on the Sunday on or before the 1st of month.
func (u *CalendarUseCase) MonthGrid(ctx context.Context, year int, month time.Month) (entities.CalendarMonth, error) {
	if err := validateYearMonth(year, month); err != nil {
		return entities.CalendarMonth{}, err
	}

	first := civil.Date{Year: year, Month: month, Day: 1}
	start := first.AddDays(-int(first.In(time.UTC).Weekday()))
	end := start.AddDays(monthGridDays - 1)

	days, err := u.collect(ctx, start, end, func(d civil.Date) bool {
		return d.Year == year && d.Month == month
	})
	if err != nil {
		return entities.CalendarMonth{}, err
	}
	return entities.CalendarMonth{Year: year, Month: month, Days: days}, nil
}

// ThreeMonthWindow returns the grids of the anchor month and the two following it.
func (u *CalendarUseCase) ThreeMonthWindow(ctx context.Context, year int, month time.Month) ([]entities.CalendarMonth, error) {
	if err := validateYearMonth(year, month); err != nil {
		return nil, err
	}
	out := make([]entities.CalendarMonth, 0, windowMonths)
	for i := 0; i < windowMonths; i++ {
		y, m := addMonths(year, month, i)
		grid, err := u.MonthGrid(ctx, y, m)
		if err != nil {
			return nil, err
		}
		out = append(out, grid)
	}
	return out, nil
}

// validateYearMonth must run before addMonths, which would fold an out-of-range month into a valid one.
func validateYearMonth(year int, month time.Month) error {
	if month < time.January || month > time.December {
		return invalidField("month", "range")
	}
	if year < 1 || year > 9999 {
		return invalidField("year", "range")
	}
	return nil
}

func addMonths(year int, month time.Month, n int) (int, time.Month) {
	idx := int(month) - 1 + n
	return year + idx/12, time.Month(idx%12 + 1)
}

// collect builds a CalendarDay for each date in [from, to] from one consistent snapshot.
func (u *CalendarUseCase) collect(ctx context.Context, from, to civil.Date, inMonth func(civil.Date) bool) ([]entities.CalendarDay, error) {
	var (
		projects []entities.Project
		notes    map[civil.Date][]entities.CalendarNote
	)
	err := u.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		if projects, err = u.projects.List(ctx); err != nil {
			return err
		}
		notes, err = u.notes.ListBetween(ctx, from, to)
		return err
	})
	if err != nil {
		return nil, err
	}

	events := map[civil.Date][]entities.TimelineEvent{}
	for _, p := range projects {
		for _, ev := range entities.TimelineEventsFor(p) {
			if ev.Date.Before(from) || ev.Date.After(to) {
				continue
			}
			events[ev.Date] = append(events[ev.Date], ev)
		}
	}

	today := u.today()
	days := make([]entities.CalendarDay, 0, to.DaysSince(from)+1)
	for d := from; !d.After(to); d = d.AddDays(1) {
		dayEvents := events[d]
		sort.SliceStable(dayEvents, func(i, j int) bool {
			return dayEvents[i].Type.Rank() < dayEvents[j].Type.Rank()
		})
		if dayEvents == nil {
			dayEvents = []entities.TimelineEvent{}
		}
		dayNotes := notes[d]
		if dayNotes == nil {
			dayNotes = []entities.CalendarNote{}
		}

		day := entities.CalendarDay{
			Date:    d,
			Events:  dayEvents,
			Notes:   dayNotes,
			IsToday: d == today,
			InMonth: inMonth(d),
		}
		for _, n := range dayNotes {
			if n.IsTargetDate {
				day.IsTarget = true
				break
			}
		}
		day.Highlight = entities.ResolveHighlight(day.IsTarget, day.IsToday, day.InMonth)
		days = append(days, day)
	}
	return days, nil
}
