package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	response "survey_tracker/internal/adapter/http/dto/response"
	"survey_tracker/internal/adapter/persistence/repository"
	"survey_tracker/internal/infrastructure/database"
	"survey_tracker/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
)

func newCalendarRouter(t *testing.T) (*gin.Engine, *usecase.ProjectUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := database.NewMemoryStore()
	projectRepo := repository.NewProjectMemoryRepository(store)
	noteRepo := repository.NewCalendarNoteMemoryRepository(store)
	reviewRepo := repository.NewReviewMemoryRepository(store)
	clock := func() time.Time { return time.Date(2024, time.April, 5, 12, 0, 0, 0, time.UTC) }

	projects := usecase.NewProjectUseCase(store, projectRepo, reviewRepo, nil)
	h := NewCalendarHandler(usecase.NewCalendarUseCase(store, projectRepo, noteRepo,
		usecase.WithClock(clock), usecase.WithLocation(time.UTC)))

	r := gin.New()
	r.GET("/v1/calendar/days", h.GetRange)
	r.GET("/v1/calendar/days/:date", h.GetDay)
	r.GET("/v1/calendar/months/:year/:month", h.GetMonth)
	r.GET("/v1/calendar/months/:year/:month/window", h.GetWindow)
	r.POST("/v1/calendar/notes", h.CreateNote)
	r.DELETE("/v1/calendar/notes/:date/:id", h.DeleteNote)
	return r, projects
}

func TestCalendarHandler_Day(t *testing.T) {
	r, projects := newCalendarRouter(t)
	draft := civil.Date{Year: 2024, Month: time.April, Day: 5}
	if _, err := projects.AddProject(context.Background(), usecase.ProjectInput{
		SurveyType: "Level 2", Organization: "Acme", FirstDraftDate: &draft,
	}); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	w := serve(r, http.MethodPost, "/v1/calendar/notes", `{"date":"2024-04-05","is_target_date":true}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var note response.CalendarNoteResponse
	_ = json.Unmarshal(w.Body.Bytes(), &note)

	w = serve(r, http.MethodGet, "/v1/calendar/days/2024-04-05", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var day response.CalendarDayResponse
	if err := json.Unmarshal(w.Body.Bytes(), &day); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(day.Events) != 1 || len(day.Notes) != 1 {
		t.Fatalf("unexpected day %+v", day)
	}
	if !day.IsTarget || !day.IsToday || day.Highlight != "target" {
		t.Fatalf("expected target highlight on today, got %+v", day)
	}

	w = serve(r, http.MethodDelete, "/v1/calendar/notes/2024-04-05/"+note.ID, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	w = serve(r, http.MethodGet, "/v1/calendar/days/2024-04-05", "")
	_ = json.Unmarshal(w.Body.Bytes(), &day)
	if len(day.Notes) != 0 || day.IsTarget {
		t.Fatalf("expected note removed, got %+v", day)
	}
}

func TestCalendarHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"bad day", http.MethodGet, "/v1/calendar/days/05-04-2024", "", http.StatusBadRequest, "INVALID_DATE"},
		{"reversed range", http.MethodGet, "/v1/calendar/days?from=2024-04-10&to=2024-04-01", "", http.StatusBadRequest, "INVALID_DATE_RANGE"},
		{"range too long", http.MethodGet, "/v1/calendar/days?from=2024-01-01&to=2025-12-31", "", http.StatusBadRequest, "INVALID_DATE_RANGE"},
		{"non numeric month", http.MethodGet, "/v1/calendar/months/2024/april", "", http.StatusBadRequest, "INVALID_MONTH"},
		{"month out of range", http.MethodGet, "/v1/calendar/months/2024/13", "", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"window month out of range", http.MethodGet, "/v1/calendar/months/2024/13/window", "", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"window month negative", http.MethodGet, "/v1/calendar/months/2024/-11/window", "", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"empty note", http.MethodPost, "/v1/calendar/notes", `{"date":"2024-04-05","text":"  "}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"note without date", http.MethodPost, "/v1/calendar/notes", `{"text":"call"}`, http.StatusBadRequest, "INVALID_PAYLOAD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newCalendarRouter(t)
			w := serve(r, tt.method, tt.path, tt.body)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			var body map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["code"] != tt.code {
				t.Fatalf("expected code %s, got %v", tt.code, body)
			}
		})
	}
}

func TestCalendarHandler_Views(t *testing.T) {
	r, _ := newCalendarRouter(t)

	t.Run("range is inclusive", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/calendar/days?from=2024-04-01&to=2024-04-07", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var days []response.CalendarDayResponse
		_ = json.Unmarshal(w.Body.Bytes(), &days)
		if len(days) != 7 || days[0].Date != "2024-04-01" || days[6].Date != "2024-04-07" {
			t.Fatalf("unexpected range %+v", days)
		}
	})

	t.Run("month grid", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/calendar/months/2024/4", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var m response.CalendarMonthResponse
		_ = json.Unmarshal(w.Body.Bytes(), &m)
		if m.Month != 4 || m.MonthName != "April" || len(m.Days) != 42 {
			t.Fatalf("unexpected month %d %s with %d days", m.Month, m.MonthName, len(m.Days))
		}
	})

	t.Run("window crosses the year", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/calendar/months/2024/12/window", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var months []response.CalendarMonthResponse
		_ = json.Unmarshal(w.Body.Bytes(), &months)
		if len(months) != 3 || months[1].Year != 2025 || months[1].Month != 1 || months[2].Month != 2 {
			t.Fatalf("unexpected window %+v", months)
		}
	})
}
