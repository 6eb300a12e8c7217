package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"survey_tracker/internal/adapter/http/handlers/mocks"
	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validQuoteBody = `{
	"discipline": "Building Survey",
	"survey_type": "Level 2",
	"organization": "Acme",
	"contact": "Jane Roe",
	"email": "jane@acme.com",
	"line_items": [{"description": "Survey", "amount": 2000}],
	"turnaround_date": "2024-04-01"
}`

func sampleQuote() entities.Quote {
	return entities.Quote{
		ID:             "q-1",
		Discipline:     "Building Survey",
		SurveyType:     "Level 2",
		Organization:   "Acme",
		Contact:        "Jane Roe",
		Email:          "jane@acme.com",
		LineItems:      []entities.LineItem{{Description: "Survey", Amount: 2000}},
		TurnaroundDate: civil.Date{Year: 2024, Month: time.April, Day: 1},
		Instruction:    entities.InstructionPending,
	}
}

func newQuoteRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/quotes", h.CreateQuote)
	r.GET("/v1/quotes", h.ListQuotes)
	r.GET("/v1/quotes/grouped", h.GroupQuotes)
	r.GET("/v1/quotes/:id", h.GetQuote)
	r.PUT("/v1/quotes/:id", h.UpdateQuote)
	r.PATCH("/v1/quotes/:id/instruction", h.SetInstruction)
	r.DELETE("/v1/quotes/:id", h.DeleteQuote)
	return r, uc
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := serve(r, http.MethodPost, "/v1/quotes", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed turnaround date", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := serve(r, http.MethodPost, "/v1/quotes", `{"turnaround_date":"01/04/2024"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_DATE" {
			t.Fatalf("expected INVALID_DATE, got %v", body)
		}
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().AddQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{}, &usecase.ValidationError{
			Fields: []usecase.FieldError{{Field: "email", Rule: "email"}},
		})

		w := serve(r, http.MethodPost, "/v1/quotes", validQuoteBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Code    string `json:"code"`
			Details struct {
				Fields []usecase.FieldError `json:"fields"`
			} `json:"details"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Code != "VALIDATION_ERROR" || len(body.Details.Fields) != 1 || body.Details.Fields[0].Field != "email" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().AddQuote(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.QuoteInput) (entities.Quote, error) {
			if in.Organization != "Acme" || len(in.LineItems) != 1 || in.TurnaroundDate.Day != 1 {
				t.Fatalf("unexpected input %+v", in)
			}
			return sampleQuote(), nil
		})

		w := serve(r, http.MethodPost, "/v1/quotes", validQuoteBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" || body["turnaround_date"] != "2024-04-01" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestQuoteHandler_Reads(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().GetQuote(gomock.Any(), "missing").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := serve(r, http.MethodGet, "/v1/quotes/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().ListQuotes(gomock.Any()).Return([]entities.Quote{sampleQuote()}, nil)

		w := serve(r, http.MethodGet, "/v1/quotes", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 {
			t.Fatalf("expected one quote, got %v", body)
		}
	})

	t.Run("grouped", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().GroupQuotes(gomock.Any()).Return([]usecase.QuoteGroup{
			{Discipline: "Building Survey", SurveyType: "Level 2", Quotes: []entities.Quote{sampleQuote()}},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/quotes/grouped", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().ListQuotes(gomock.Any()).Return(nil, errors.New("boom"))

		w := serve(r, http.MethodGet, "/v1/quotes", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_UpdateQuote(t *testing.T) {
	t.Run("unknown id is a no-op", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().EditQuote(gomock.Any(), "missing", gomock.Any()).Return(entities.Quote{}, nil)

		w := serve(r, http.MethodPut, "/v1/quotes/missing", validQuoteBody)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().EditQuote(gomock.Any(), "q-1", gomock.Any()).Return(sampleQuote(), nil)

		w := serve(r, http.MethodPut, "/v1/quotes/q-1", validQuoteBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_SetInstruction(t *testing.T) {
	t.Run("missing instruction", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := serve(r, http.MethodPatch, "/v1/quotes/q-1/instruction", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("decision is normalized", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		q := sampleQuote()
		q.Instruction = entities.InstructionYes
		uc.EXPECT().SetInstruction(gomock.Any(), "q-1", entities.InstructionYes).Return(q, nil)

		w := serve(r, http.MethodPatch, "/v1/quotes/q-1/instruction", `{"instruction":" Yes "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown decision", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().SetInstruction(gomock.Any(), "q-1", entities.Instruction("maybe")).
			Return(entities.Quote{}, &usecase.ValidationError{Fields: []usecase.FieldError{{Field: "instruction", Rule: "oneof"}}})

		w := serve(r, http.MethodPatch, "/v1/quotes/q-1/instruction", `{"instruction":"maybe"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().SetInstruction(gomock.Any(), "missing", entities.InstructionNo).Return(entities.Quote{}, nil)

		w := serve(r, http.MethodPatch, "/v1/quotes/missing/instruction", `{"instruction":"no"}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_DeleteQuote(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().DeleteQuote(gomock.Any(), "q-1", false).Return(false, usecase.ErrDeleteNotConfirmed)

		w := serve(r, http.MethodDelete, "/v1/quotes/q-1", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().DeleteQuote(gomock.Any(), "q-1", true).Return(true, nil)

		w := serve(r, http.MethodDelete, "/v1/quotes/q-1?confirm=true", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
