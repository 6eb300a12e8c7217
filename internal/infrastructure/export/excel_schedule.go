package export

import (
	"context"
	"fmt"
	"io"

	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/usecase/interfaces"

	"cloud.google.com/go/civil"
	"github.com/xuri/excelize/v2"
)

const (
	scheduleSheet = "Schedule"
	headerRow     = 3
)

var scheduleColumns = []struct {
	label string
	width float64
	value func(p entities.Project) any
}{
	{"Organization", 28, func(p entities.Project) any { return p.Organization }},
	{"Survey Type", 36, func(p entities.Project) any { return p.SurveyType }},
	{"Contact", 22, func(p entities.Project) any { return p.Contact }},
	{"Email", 28, func(p entities.Project) any { return p.Email }},
	{"Status", 18, func(p entities.Project) any { return p.Status.Label() }},
	{"Site Visit", 14, func(p entities.Project) any { return dateCell(p.SiteVisitDate) }},
	{"First Draft Due", 16, func(p entities.Project) any { return dateCell(p.FirstDraftDate) }},
	{"Final Report Due", 16, func(p entities.Project) any { return dateCell(p.FinalReportDate) }},
	{"Multiple Dates", 14, func(p entities.Project) any { return yesNo(p.MultipleDates) }},
	{"Quote", 38, func(p entities.Project) any { return p.QuoteID }},
	{"Notes", 48, func(p entities.Project) any { return p.Notes }},
}

// ExcelScheduleExporter renders the project schedule as an .xlsx workbook.
type ExcelScheduleExporter struct {
	title string
}

var _ interfaces.IScheduleExporter = (*ExcelScheduleExporter)(nil)

func NewExcelScheduleExporter(title string) *ExcelScheduleExporter {
	if title == "" {
		title = "Project Schedule"
	}
	return &ExcelScheduleExporter{title: title}
}

func (e *ExcelScheduleExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ExcelScheduleExporter) FileExtension() string { return ".xlsx" }

// WriteSchedule writes one row per project, in store order, below a title and a header row.
func (e *ExcelScheduleExporter) WriteSchedule(ctx context.Context, w io.Writer, projects []entities.Project) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", scheduleSheet); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(scheduleSheet, "A1", e.title); err != nil {
		return err
	}
	if err := f.SetCellStyle(scheduleSheet, "A1", "A1", titleStyle); err != nil {
		return err
	}
	if err := f.SetCellValue(scheduleSheet, "A2", fmt.Sprintf("%d projects", len(projects))); err != nil {
		return err
	}

	for i, col := range scheduleColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(scheduleSheet, cell, col.label); err != nil {
			return err
		}
		if err := f.SetCellStyle(scheduleSheet, cell, cell, headerStyle); err != nil {
			return err
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(scheduleSheet, name, name, col.width); err != nil {
			return err
		}
	}

	for r, p := range projects {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := make([]any, len(scheduleColumns))
		for i, col := range scheduleColumns {
			row[i] = col.value(p)
		}
		cell, err := excelize.CoordinatesToCellName(1, headerRow+1+r)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(scheduleSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func dateCell(d *civil.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
