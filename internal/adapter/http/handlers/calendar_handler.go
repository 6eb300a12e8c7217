package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	request "survey_tracker/internal/adapter/http/dto/request"
	response "survey_tracker/internal/adapter/http/dto/response"
	"survey_tracker/internal/usecase"
	"survey_tracker/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMonth = pkg.NewDomainErrorSimple("INVALID_MONTH", "year and month must be numbers", http.StatusBadRequest)

// CalendarHandler serves the day, range and month views plus manual notes.
type CalendarHandler struct {
	usecase usecase.ICalendarUseCase
}

func NewCalendarHandler(uc usecase.ICalendarUseCase) *CalendarHandler {
	return &CalendarHandler{usecase: uc}
}

// GetDay godoc
// @Summary      Events and notes for one day
// @Tags         calendar
// @Produce      json
// @Param        date  path      string  true  "Day (YYYY-MM-DD)"
// @Success      200   {object}  response.CalendarDayResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /calendar/days/{date} [get]
func (h *CalendarHandler) GetDay(c *gin.Context) {
	date, err := request.ParseDate(c.Param("date"))
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}

	day, err := h.usecase.EventsForDate(c.Request.Context(), date)
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCalendarDay(day))
}

// GetRange godoc
// @Summary      Every day between two dates, inclusive
// @Tags         calendar
// @Produce      json
// @Param        from  query     string  true  "First day (YYYY-MM-DD)"
// @Param        to    query     string  true  "Last day (YYYY-MM-DD)"
// @Success      200   {array}   response.CalendarDayResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /calendar/days [get]
func (h *CalendarHandler) GetRange(c *gin.Context) {
	from, err := request.ParseDate(c.Query("from"))
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	to, err := request.ParseDate(c.Query("to"))
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}

	days, err := h.usecase.Range(c.Request.Context(), from, to)
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCalendarDays(days))
}

// GetMonth godoc
// @Summary      Six-week grid for a month
// @Tags         calendar
// @Produce      json
// @Param        year   path      int  true  "Year"
// @Param        month  path      int  true  "Month (1-12)"
// @Success      200    {object}  response.CalendarMonthResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /calendar/months/{year}/{month} [get]
func (h *CalendarHandler) GetMonth(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		writeError(c, errInvalidMonth)
		return
	}

	m, err := h.usecase.MonthGrid(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCalendarMonth(m))
}

// GetWindow godoc
// @Summary      Three consecutive month grids starting at the given month
// @Tags         calendar
// @Produce      json
// @Param        year   path      int  true  "Year"
// @Param        month  path      int  true  "Month (1-12)"
// @Success      200    {array}   response.CalendarMonthResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /calendar/months/{year}/{month}/window [get]
func (h *CalendarHandler) GetWindow(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		writeError(c, errInvalidMonth)
		return
	}

	months, err := h.usecase.ThreeMonthWindow(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCalendarMonths(months))
}

// CreateNote godoc
// @Summary      Add a manual note to a day
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Param        note  body      request.CalendarNoteRequest  true  "Note"
// @Success      201   {object}  response.CalendarNoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /calendar/notes [post]
func (h *CalendarHandler) CreateNote(c *gin.Context) {
	var payload request.CalendarNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}

	note, err := h.usecase.AddNote(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCalendarNote(note))
}

// DeleteNote godoc
// @Summary      Remove a manual note
// @Tags         calendar
// @Param        date  path  string  true  "Day (YYYY-MM-DD)"
// @Param        id    path  string  true  "Note ID"
// @Success      204
// @Router       /calendar/notes/{date}/{id} [delete]
func (h *CalendarHandler) DeleteNote(c *gin.Context) {
	date, err := request.ParseDate(c.Param("date"))
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}

	if _, err := h.usecase.DeleteNote(c.Request.Context(), date, c.Param("id")); err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func yearMonth(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

func mapCalendarError(err error) *pkg.AppError {
	if appErr, ok := mapInputError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrInvalidDateRange) {
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "from must not be after to and the range is limited to a year", http.StatusBadRequest).
			WithDetail("max_days", usecase.MaxRangeDays)
	}
	return internalError(err)
}
