package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
		if e.Error() != "QUOTE_NOT_FOUND: Quote not found" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		if body := e.ToHTTPError(); body.Code != "QUOTE_NOT_FOUND" || body.Details != nil {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wrapped cause stays internal", func(t *testing.T) {
		cause := errors.New("lock timeout")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to unwrap")
		}
		if body := e.ToHTTPError(); body.Message != "An internal error occurred" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("details copy", func(t *testing.T) {
		base := NewDomainErrorSimple("VALIDATION_ERROR", "Invalid input", http.StatusBadRequest)
		withFields := base.WithDetail("fields", []string{"email"})
		if base.Details != nil {
			t.Fatalf("expected base error to stay untouched")
		}
		if withFields.ToHTTPError().Details["fields"] == nil {
			t.Fatalf("expected fields detail")
		}
	})
}
