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

	"github.com/portalteam/client-portal/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidRequest, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrIdentityExists, http.StatusBadRequest},
		{domain.ErrIdentityCreation, http.StatusInternalServerError},
		{domain.ErrProfileUpdate, http.StatusInternalServerError},
		{domain.ErrClientRecord, http.StatusInternalServerError},
		{domain.ErrDeletionFailed, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, msg := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if msg != tc.err.Error() {
			t.Fatalf("%v: unexpected message %q", tc.err, msg)
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("%w: mongo timeout", domain.ErrIdentityCreation)

	code, msg := renderError(t, wrapped)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != domain.ErrIdentityCreation.Error() {
		t.Fatalf("wrapped cause must not leak, got %q", msg)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest || msg != "invalid payload" {
		t.Fatalf("unexpected rendering: %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	code, msg := renderError(t, errors.New("driver: bad connection"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal cause must not leak, got %q", msg)
	}
}
