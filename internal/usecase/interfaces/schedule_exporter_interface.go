package interfaces

import (
	"context"
	"io"
	"survey_tracker/internal/domain/entities"
)

// IScheduleExporter renders the project schedule into a downloadable document.
type IScheduleExporter interface {
	ContentType() string
	FileExtension() string
	WriteSchedule(ctx context.Context, w io.Writer, projects []entities.Project) error
}
