package usecase

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("validation failed")

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError is returned before any write when an input is rejected.
//
// errors.Is matches ErrValidation and, when set, the more specific Cause.
type ValidationError struct {
	Fields []FieldError
	Cause  error
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" ("+f.Rule+")")
	}
	msg := ErrValidation.Error()
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if len(parts) > 0 {
		msg += ": " + strings.Join(parts, ", ")
	}
	return msg
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValidation, e.Cause}
	}
	return []error{ErrValidation}
}

func (e *ValidationError) add(field, rule string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Rule: rule})
}

// result returns nil when nothing was collected so callers can `return v.result()`.
func (e *ValidationError) result() error {
	if len(e.Fields) == 0 && e.Cause == nil {
		return nil
	}
	return e
}

func invalidField(field, rule string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Rule: rule}}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs struct tag validation and collects field errors into ve.
func validateStruct(ve *ValidationError, s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		ve.add(fieldPath(fe.Namespace()), fe.Tag())
	}
	return nil
}

// fieldPath drops the root struct name: "QuoteInput.line_items[0].amount" -> "line_items[0].amount".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
