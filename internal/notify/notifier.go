// Package notify delivers transactional email over SMTP, falling back
// to a logged simulation when no credentials are configured.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"

	"github.com/portalteam/client-portal/internal/core/ports"
)

const (
	ProviderSMTP       = "Gmail SMTP"
	ProviderSimulation = "Simulation"

	fromName = "Portal Team"
)

// Config captures the SMTP settings. User and Pass empty means
// simulation mode.
type Config struct {
	Host string
	Port int
	User string
	Pass string
}

// Sender implements ports.Notifier.
type Sender struct {
	cfg    Config
	logger zerolog.Logger
}

func NewSender(cfg Config, logger zerolog.Logger) *Sender {
	return &Sender{cfg: cfg, logger: logger}
}

func (s *Sender) configured() bool {
	return s.cfg.Host != "" && s.cfg.User != "" && s.cfg.Pass != ""
}

// Send delivers one HTML email. Without SMTP credentials the message is
// logged and reported as simulated rather than failed.
func (s *Sender) Send(ctx context.Context, to, subject, html string) (*ports.SendResult, error) {
	if !s.configured() {
		s.logger.Info().
			Str("to", to).
			Str("subject", subject).
			Msg("email simulated (no SMTP credentials configured)")
		return &ports.SendResult{
			Provider:  ProviderSimulation,
			Timestamp: time.Now().UTC(),
		}, nil
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(fromName, s.cfg.User); err != nil {
		return nil, fmt.Errorf("smtp from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("smtp recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)
	msg.SetMessageID()

	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.User),
		mail.WithPassword(s.cfg.Pass),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return nil, fmt.Errorf("smtp send: %w", err)
	}

	s.logger.Info().Str("to", to).Str("subject", subject).Msg("email sent")

	return &ports.SendResult{
		Provider:  ProviderSMTP,
		MessageID: msg.GetMessageID(),
		Timestamp: time.Now().UTC(),
	}, nil
}

// SendWelcome composes and delivers the account welcome email.
func (s *Sender) SendWelcome(ctx context.Context, to, name, businessName, role string) (*ports.SendResult, error) {
	subject := fmt.Sprintf("Welcome to Our Portal, %s!", name)
	return s.Send(ctx, to, subject, WelcomeEmailHTML(name, businessName, role))
}
