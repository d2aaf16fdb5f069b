package mailer

import (
	"context"

	"github.com/resend/resend-go/v2"
)

const defaultFrom = "TechFrag Newsletter <onboarding@resend.dev>"

// ResendMailer delivers email through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	if from == "" {
		from = defaultFrom
	}
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	_, err := m.client.Emails.SendWithContext(ctx, params)
	return err
}

func (m *ResendMailer) SendBatch(ctx context.Context, msgs []Message) error {
	requests := make([]*resend.SendEmailRequest, 0, len(msgs))
	for _, msg := range msgs {
		requests = append(requests, &resend.SendEmailRequest{
			From:    m.from,
			To:      []string{msg.To},
			Subject: msg.Subject,
			Html:    msg.HTML,
		})
	}
	_, err := m.client.Batch.SendWithContext(ctx, requests)
	return err
}
