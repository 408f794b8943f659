package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/portalteam/client-portal/internal/api/metrics"
	"github.com/portalteam/client-portal/internal/core/ports"
)

// EmailHandler exposes direct transactional email sending.
type EmailHandler struct {
	notifier ports.Notifier
}

func NewEmailHandler(notifier ports.Notifier) *EmailHandler {
	return &EmailHandler{notifier: notifier}
}

type sendEmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	HTML    string `json:"html" validate:"required"`
}

type sendEmailDetails struct {
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Timestamp string `json:"timestamp"`
	MessageID string `json:"message_id,omitempty"`
}

type sendEmailResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Provider string           `json:"provider"`
	Details  sendEmailDetails `json:"details"`
}

// Send delivers one HTML email, simulating delivery when SMTP is not
// configured.
//
// @Summary      Send an email
// @Tags         email
// @Accept       json
// @Produce      json
// @Param        body  body      sendEmailRequest  true  "Recipient, subject, and HTML body"
// @Success      200   {object}  sendEmailResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /send-email [post]
func (h *EmailHandler) Send(c echo.Context) error {
	var req sendEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.notifier.Send(c.Request().Context(), req.To, req.Subject, req.HTML)
	if err != nil {
		metrics.EmailsSentTotal.WithLabelValues("unknown", "error").Inc()
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to send email")
	}

	metrics.EmailsSentTotal.WithLabelValues(result.Provider, "ok").Inc()

	return c.JSON(http.StatusOK, sendEmailResponse{
		Success:  true,
		Message:  "Email sent successfully to " + req.To,
		Provider: result.Provider,
		Details: sendEmailDetails{
			To:        req.To,
			Subject:   req.Subject,
			Timestamp: result.Timestamp.UTC().Format(time.RFC3339),
			MessageID: result.MessageID,
		},
	})
}
