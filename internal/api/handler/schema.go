package handler

import (
	"bytes"
	"encoding/json"
	"html"
	"strconv"
	"strings"
)

// messageResponse is the envelope of every non-validation error and of most
// successful writes.
type messageResponse struct {
	Message string `json:"message"`
}

// validationResponse is returned when one or more request fields are invalid.
type validationResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// createdResponse is returned by the catalog endpoints.
type createdResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// flexString binds a JSON string or JSON number, so numeric fields accept
// both {"amount": 5} and {"amount": "5"} as well as form values.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*f = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
	default:
		*f = flexString(b)
	}
	return nil
}

func (f flexString) String() string { return strings.TrimSpace(string(f)) }

// Int parses an already validated integer field.
func (f flexString) Int() int {
	n, _ := strconv.Atoi(f.String())
	return n
}

// clean trims and HTML-escapes free text that is stored and later rendered.
func clean(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
