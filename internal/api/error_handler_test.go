package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/v4health/clinic-api/internal/api/handler"
	"github.com/v4health/clinic-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v4health/doctors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "staff conflict",
			err:     &domain.ConflictError{Kind: domain.KindStaff, Key: domain.UniqueKey{Username: "jdoe"}},
			code:    http.StatusBadRequest,
			message: "Username already exists",
		},
		{
			name:    "doctor conflict",
			err:     &domain.ConflictError{Kind: domain.KindDoctor, Key: domain.UniqueKey{Username: "house", Email: "h@x.test"}},
			code:    http.StatusBadRequest,
			message: "Doctor with this username or email already exists",
		},
		{
			name:    "storage failure is generic",
			err:     domain.NewStorageError("insert patient", errors.New("dial tcp 10.0.0.5:5432: connection refused")),
			code:    http.StatusInternalServerError,
			message: "Internal server error",
		},
		{
			name:    "invalid input",
			err:     fmt.Errorf("%w: minute must be an integer between 0 and 255", domain.ErrInvalidInput),
			code:    http.StatusBadRequest,
			message: "minute must be an integer between 0 and 255",
		},
		{
			name:    "upload too large",
			err:     fmt.Errorf("%w: limit 10", domain.ErrUploadTooLarge),
			code:    http.StatusRequestEntityTooLarge,
			message: "File too large",
		},
		{
			name:    "echo http error",
			err:     echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			code:    http.StatusNotFound,
			message: "Not Found",
		},
		{
			name:    "unexpected",
			err:     errors.New("boom"),
			code:    http.StatusInternalServerError,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := renderError(t, tt.err)
			if code != tt.code {
				t.Errorf("expected %d, got %d", tt.code, code)
			}
			if body["message"] != tt.message {
				t.Errorf("expected message %q, got %v", tt.message, body["message"])
			}
		})
	}
}

func TestHTTPErrorHandler_StorageCauseNotLeaked(t *testing.T) {
	_, body := renderError(t, domain.NewStorageError("find staff", errors.New("password authentication failed for user clinic")))
	raw, _ := json.Marshal(body)
	if string(raw) != `{"message":"Internal server error"}` {
		t.Errorf("unexpected body %s", raw)
	}
}

func TestHTTPErrorHandler_ValidationFields(t *testing.T) {
	err := &handler.ValidationError{
		Status: http.StatusUnprocessableEntity,
		Fields: []handler.FieldError{{Field: "designation", Message: "designation is required"}},
	}
	code, body := renderError(t, err)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	errs, ok := body["errors"].([]any)
	if !ok || len(errs) != 1 {
		t.Fatalf("expected one field error, got %v", body["errors"])
	}
	first := errs[0].(map[string]any)
	if first["field"] != "designation" {
		t.Errorf("unexpected field error %v", first)
	}
}
