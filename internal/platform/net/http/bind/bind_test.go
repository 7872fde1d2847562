package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "flagwatch/internal/platform/errors"
)

type payload struct {
	Date     string `json:"date" validate:"required,localdate"`
	FlagType string `json:"flag_type" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

func TestParseJSON_OK(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(
		`{"date":"2026-06-03","flag_type":"red"}`))

	got, err := ParseJSON[payload](r)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Date != "2026-06-03" || got.FlagType != "red" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_EmptyBody(t *testing.T) {
	// POST with no body is a JSON error
	r := httptest.NewRequest("POST", "/", nil)
	if _, err := ParseJSON[payload](r); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("code = %v, want json", perr.CodeOf(err))
	}

	// GET with no body is tolerated
	r = httptest.NewRequest("GET", "/", nil)
	if _, err := ParseJSON[payload](r); err != nil {
		t.Fatalf("GET empty body: %v", err)
	}
}

func TestParseJSON_UnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(
		`{"date":"2026-06-03","flag_type":"red","bogus":1}`))
	if _, err := ParseJSON[payload](r); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("code = %v, want json", perr.CodeOf(err))
	}
}

func TestParseJSON_TrailingData(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(
		`{"date":"2026-06-03","flag_type":"red"}{"again":true}`))
	if _, err := ParseJSON[payload](r); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("code = %v, want json", perr.CodeOf(err))
	}
}

func TestParseJSON_ValidationMapsFieldNames(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"missing date", `{"flag_type":"red"}`, "date"},
		{"bad date shape", `{"date":"06/03/2026","flag_type":"red"}`, "date"},
		{"missing flag type", `{"date":"2026-06-03"}`, "flag_type"},
		{"bad email", `{"date":"2026-06-03","flag_type":"red","email":"not-an-email"}`, "email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", strings.NewReader(tc.body))
			_, err := ParseJSON[payload](r)
			if perr.CodeOf(err) != perr.ErrorCodeValidation {
				t.Fatalf("code = %v, want validation", perr.CodeOf(err))
			}
			e, ok := perr.As(err)
			if !ok {
				t.Fatalf("expected platform error, got %T", err)
			}
			// json tag names, not Go field names
			if e.Field() != tc.field {
				t.Fatalf("field = %q, want %q", e.Field(), tc.field)
			}
		})
	}
}
