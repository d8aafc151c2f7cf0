package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeNoLanguage, http.StatusBadRequest},
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Errorf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestCodeOfSurvivesWrapping(t *testing.T) {
	t.Parallel()

	base := NotFoundf("record not found")
	wrapped := Wrapf(base, ErrorCodeDB, "fetch detail")

	// the outermost code wins
	if CodeOf(wrapped) != ErrorCodeDB {
		t.Fatalf("CodeOf(wrapped) = %v, want DB", CodeOf(wrapped))
	}
	if !errors.Is(wrapped, base) && Root(wrapped) == nil {
		t.Fatalf("wrapped error lost its cause")
	}
}

func TestCodeOfPlainError(t *testing.T) {
	t.Parallel()

	if got := CodeOf(errors.New("boom")); got != ErrorCodeUnknown {
		t.Fatalf("CodeOf(plain) = %v, want unknown", got)
	}
}

func TestHTTPProducesWirePayload(t *testing.T) {
	t.Parallel()

	status, wire := HTTP(Validationf("text must be at least 10 characters"))
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if wire.Message != "text must be at least 10 characters" {
		t.Fatalf("message = %q", wire.Message)
	}
}

func TestWithField(t *testing.T) {
	t.Parallel()

	err := WithField(Validationf("required"), "text")
	e, ok := As(err)
	if !ok {
		t.Fatal("expected a project error")
	}
	if e.Field() != "text" {
		t.Fatalf("field = %q, want text", e.Field())
	}
}
