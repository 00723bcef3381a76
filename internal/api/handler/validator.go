package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	_ = v.RegisterValidation("integer", isInteger)
	_ = v.RegisterValidation("intrange", inIntRange)
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		if name, _, _ := strings.Cut(sf.Tag.Get("form"), ","); name != "" && name != "-" {
			return name
		}
		return strings.ToLower(sf.Name)
	})
	return &echoValidator{v: v}
}

// FieldError is one entry of a validation failure response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field failure of a request and the status it
// is rendered with.
type ValidationError struct {
	Status int
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]FieldError, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, FieldError{Field: fe.Field(), Message: fieldError(fe)})
			}
			return &ValidationError{Status: http.StatusBadRequest, Fields: fields}
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "numeric":
		return field + " must be a number"
	case "number":
		return field + " must be numeric"
	case "integer":
		return field + " must be an integer"
	case "intrange":
		lo, hi, _ := strings.Cut(fe.Param(), "-")
		return fmt.Sprintf("%s must be an integer between %s and %s", field, lo, hi)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// isInteger accepts a base-10 integer in string form. Empty values are left
// to "required".
func isInteger(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return true
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// inIntRange checks an integer string against an inclusive "lo-hi" parameter.
func inIntRange(fl validator.FieldLevel) bool {
	lo, hi, ok := strings.Cut(fl.Param(), "-")
	if !ok {
		return false
	}
	min, err1 := strconv.Atoi(lo)
	max, err2 := strconv.Atoi(hi)
	n, err3 := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	return n >= min && n <= max
}
