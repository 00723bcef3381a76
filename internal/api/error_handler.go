package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/v4health/clinic-api/internal/api/handler"
	"github.com/v4health/clinic-api/internal/core/domain"
)

type errorResponse struct {
	Message string               `json:"message"`
	Errors  []handler.FieldError `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<message>"}, plus
//     "errors" for field validation failures.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return ve.Status, errorResponse{Message: "Validation failed", Errors: ve.Fields}
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		return http.StatusBadRequest, errorResponse{Message: conflictMessage(conflict.Kind)}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrStorage):
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("storage failure")
		return http.StatusInternalServerError, errorResponse{Message: "Internal server error"}
	case errors.Is(err, domain.ErrUploadTooLarge):
		return http.StatusRequestEntityTooLarge, errorResponse{Message: "File too large"}
	case errors.Is(err, domain.ErrUnsupportedUpload):
		return http.StatusBadRequest, errorResponse{Message: "Only image uploads are accepted"}
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, errorResponse{Message: invalidMessage(err)}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Message: "Internal server error"}
}

func conflictMessage(kind domain.Kind) string {
	if kind == domain.KindStaff {
		return "Username already exists"
	}
	return kind.Label() + " with this username or email already exists"
}

// invalidMessage drops the sentinel prefix from a wrapped ErrInvalidInput.
func invalidMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
	if msg == domain.ErrInvalidInput.Error() {
		return "Invalid input"
	}
	return msg
}
