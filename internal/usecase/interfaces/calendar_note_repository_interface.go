package interfaces

import (
	"context"
	"survey_tracker/internal/domain/entities"

	"cloud.google.com/go/civil"
)

// ICalendarNoteRepository stores manual calendar notes keyed by day, in creation order per day.
type ICalendarNoteRepository interface {
	Create(ctx context.Context, n entities.CalendarNote) (entities.CalendarNote, error)
	ListBetween(ctx context.Context, from, to civil.Date) (map[civil.Date][]entities.CalendarNote, error)
	Delete(ctx context.Context, date civil.Date, id string) (bool, error)
}
