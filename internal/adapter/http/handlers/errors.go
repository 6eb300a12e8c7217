package handlers

import (
	"errors"
	"net/http"

	request "survey_tracker/internal/adapter/http/dto/request"
	"survey_tracker/internal/usecase"
	"survey_tracker/pkg"
	"survey_tracker/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidDate    = pkg.NewDomainErrorSimple("INVALID_DATE", "Dates must use the YYYY-MM-DD format", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.L().Error("[http][handler] request failed",
			zap.String("path", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(appErr.Err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapInputError covers the failures every handler shares. ok is false when err needs a
// handler-specific mapping.
func mapInputError(err error) (appErr *pkg.AppError, ok bool) {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid input", err, http.StatusBadRequest).
			WithDetail("fields", ve.Fields), true
	case errors.Is(err, request.ErrInvalidDate):
		return errInvalidDate, true
	default:
		return nil, false
	}
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
