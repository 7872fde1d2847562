package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "flagwatch/internal/platform/errors"
)

func doHandle(t *testing.T, resp Response) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/x", nil)
	Handle(func(*stdhttp.Request) Response { return resp })(rec, req)

	var env Envelope
	if rec.Code != stdhttp.StatusNoContent {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v", err)
		}
	}
	return rec, env
}

func TestHandle_OK(t *testing.T) {
	t.Parallel()

	rec, env := doHandle(t, OK(map[string]string{"hello": "world"}))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if env.StatusCode != 200 || env.Status != "OK" {
		t.Fatalf("envelope = %+v", env)
	}
	if env.Error != "" {
		t.Fatalf("unexpected error field")
	}
}

func TestHandle_Created(t *testing.T) {
	t.Parallel()

	rec, env := doHandle(t, Created(map[string]string{"id": "abc"}))
	if rec.Code != stdhttp.StatusCreated || env.StatusCode != 201 {
		t.Fatalf("status = %d envelope = %+v", rec.Code, env)
	}
}

func TestHandle_NoContent(t *testing.T) {
	t.Parallel()

	rec, _ := doHandle(t, NoContent())
	if rec.Code != stdhttp.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("204 must have no body, got %q", rec.Body.String())
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", perr.Validationf("date is required"), 400},
		{"invalid argument", perr.InvalidArgf("date cannot be in the future"), 422},
		{"not found", perr.NotFoundf("table %q not found", "users"), 404},
		{"db", perr.DBf("connection lost"), 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec, env := doHandle(t, Error(tc.err))
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			if env.Error == "" {
				t.Fatalf("error message missing from envelope")
			}
			if env.StatusCode != tc.status {
				t.Fatalf("envelope status_code = %d, want %d", env.StatusCode, tc.status)
			}
		})
	}
}

func TestHandle_ListPagination(t *testing.T) {
	t.Parallel()

	next := 100
	page := Page{TotalRows: 250, Limit: 100, Offset: 0, NextOffset: &next}
	rec, env := doHandle(t, List([]int{1, 2, 3}, page))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if env.Page == nil {
		t.Fatalf("page block missing")
	}
	if env.Page.TotalRows != 250 || env.Page.NextOffset == nil || *env.Page.NextOffset != 100 {
		t.Fatalf("page = %+v", env.Page)
	}
}

func TestHandle_ZeroStatusDefaultsTo200(t *testing.T) {
	t.Parallel()

	rec, _ := doHandle(t, Response{Body: "ok"})
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
