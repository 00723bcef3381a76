package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/v4health/clinic-api/internal/core/domain"
)

// bindAndValidate binds JSON, urlencoded or multipart bodies into req and
// runs the struct validator. Validation failures render with 400.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return validateStatus(c, req, http.StatusBadRequest)
}

// validateStatus runs the struct validator on an already bound request and
// renders failures with status.
func validateStatus(c echo.Context, req any, status int) error {
	if err := c.Validate(req); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			ve.Status = status
		}
		return err
	}
	return nil
}

// formFile returns the first multipart file present under one of fields.
// A request without any of them yields a nil file and no error.
func formFile(c echo.Context, fields ...string) (domain.Upload, multipart.File, error) {
	for _, field := range fields {
		fh, err := c.FormFile(field)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
				continue
			}
			return domain.Upload{}, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid multipart body")
		}

		f, err := fh.Open()
		if err != nil {
			return domain.Upload{}, nil, err
		}
		return domain.Upload{
			Field:        field,
			OriginalName: fh.Filename,
			ContentType:  fh.Header.Get(echo.HeaderContentType),
			Size:         fh.Size,
		}, f, nil
	}
	return domain.Upload{}, nil, nil
}
