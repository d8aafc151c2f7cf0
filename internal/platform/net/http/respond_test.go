package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "lingualog/internal/platform/errors"
	phttp "lingualog/internal/platform/net/http"
)

func TestJSONWritesUnwrappedPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct == "" {
		t.Fatal("expected content-type set")
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	// payloads go out exactly as handlers shaped them, no wrapper
	if body["k"] != "v" || len(body) != 1 {
		t.Fatalf("payload was wrapped or mutated: %#v", body)
	}
}

func TestRespondErrorUsesEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/x", nil)
	phttp.RespondError(rec, req, perr.NotFoundf("record not found"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: expected 404, got %d", rec.Code)
	}
	var env phttp.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if env.StatusCode != 404 || env.Error != "record not found" {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestResponseHelpers(t *testing.T) {
	cases := []struct {
		name string
		resp phttp.Response
		want int
	}{
		{"ok", phttp.OK(map[string]int{"n": 1}), http.StatusOK},
		{"created", phttp.Created(nil), http.StatusCreated},
		{"no content", phttp.NoContent(), http.StatusNoContent},
		{"error", phttp.Error(perr.Validationf("bad input")), http.StatusBadRequest},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		phttp.Handle(func(*http.Request) phttp.Response { return c.resp })(rec, req)
		if rec.Code != c.want {
			t.Errorf("%s: status = %d, want %d", c.name, rec.Code, c.want)
		}
	}
}

func TestNoContentHasEmptyBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/", nil)
	phttp.Handle(func(*http.Request) phttp.Response { return phttp.NoContent() })(rec, req)
	if rec.Body.Len() != 0 {
		t.Fatalf("204 must not carry a body, got %q", rec.Body.String())
	}
}
