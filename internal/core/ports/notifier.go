package ports

import (
	"context"
	"time"
)

// SendResult reports how a notification was delivered.
type SendResult struct {
	Provider  string
	MessageID string
	Timestamp time.Time
}

// Notifier delivers transactional email, falling back to a logged
// simulation when no SMTP credentials are configured.
type Notifier interface {
	Send(ctx context.Context, to, subject, html string) (*SendResult, error)
	SendWelcome(ctx context.Context, to, name, businessName, role string) (*SendResult, error)
}
