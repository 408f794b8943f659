package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/portalteam/client-portal/internal/core/ports"
)

func TestSendEmail_Success(t *testing.T) {
	sent := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	notifier := &stubNotifier{result: &ports.SendResult{Provider: "Gmail SMTP", MessageID: "msg-1", Timestamp: sent}}
	h := NewEmailHandler(notifier)

	c, rec := newJSONContext(t, http.MethodPost, "/send-email",
		`{"to":"ann@x.com","subject":"Hello","html":"<p>hi</p>"}`)
	if err := h.Send(c); err != nil {
		t.Fatalf("send handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if notifier.to != "ann@x.com" || notifier.subject != "Hello" || notifier.html != "<p>hi</p>" {
		t.Fatalf("notifier saw %q/%q/%q", notifier.to, notifier.subject, notifier.html)
	}

	var resp sendEmailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Provider != "Gmail SMTP" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Details.Timestamp != "2026-03-14T09:26:53Z" || resp.Details.MessageID != "msg-1" {
		t.Fatalf("unexpected details: %+v", resp.Details)
	}
}

func TestSendEmail_MissingFields(t *testing.T) {
	h := NewEmailHandler(&stubNotifier{})

	for _, body := range []string{
		`{}`,
		`{"to":"a@x.com"}`,
		`{"to":"a@x.com","subject":"s"}`,
		`{"to":"not-an-email","subject":"s","html":"<p>b</p>"}`,
	} {
		c, _ := newJSONContext(t, http.MethodPost, "/send-email", body)
		err := h.Send(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestSendEmail_DeliveryFailure(t *testing.T) {
	h := NewEmailHandler(&stubNotifier{err: errors.New("smtp down")})

	c, _ := newJSONContext(t, http.MethodPost, "/send-email",
		`{"to":"a@x.com","subject":"s","html":"<p>b</p>"}`)
	err := h.Send(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %v", err)
	}
}
