package mailer

import (
	"context"
	"errors"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/config"
	"github.com/rs/zerolog/log"
)

// ErrDisabled is returned by the fallback mailer used when no API key is
// configured.
var ErrDisabled = errors.New("email transport disabled: RESEND_API_KEY not configured")

// Message is a single rendered email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers rendered emails. SendBatch submits all messages as one
// provider call and reports a single outcome for the whole batch.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
	SendBatch(ctx context.Context, msgs []Message) error
}

// New builds the configured mailer. A missing API key does not fail startup:
// it yields a disabled mailer that errors on use, so callers skip sending.
func New(cfg *config.Config) Mailer {
	if cfg.Email.ResendAPIKey == "" {
		log.Warn().Msg("RESEND_API_KEY not set - email delivery is disabled, newsletters and welcome emails will be skipped")
		return &disabledMailer{}
	}
	return NewResendMailer(cfg.Email.ResendAPIKey, cfg.Email.From)
}

type disabledMailer struct{}

func (d *disabledMailer) Send(ctx context.Context, msg Message) error {
	return ErrDisabled
}

func (d *disabledMailer) SendBatch(ctx context.Context, msgs []Message) error {
	return ErrDisabled
}
