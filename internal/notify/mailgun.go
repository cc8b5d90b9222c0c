package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/MTomala-IT/storeapi/internal/logger"
	"github.com/MTomala-IT/storeapi/internal/model"
)

// ErrAPIResponse is returned when the mail provider rejects a message.
var ErrAPIResponse = errors.New("mail provider returned an error response")

var (
	_ model.Mailer = (*Mailgun)(nil)
	_ model.Mailer = (*LogMailer)(nil)
)

// Mailgun sends email through the Mailgun HTTP API.
type Mailgun struct {
	mg     mailgun.Mailgun
	sender string
}

// NewMailgun creates a Mailgun mailer. An empty apiBase keeps the SDK default.
func NewMailgun(domain, apiKey, sender, apiBase string) *Mailgun {
	mg := mailgun.NewMailgun(domain, apiKey)
	if apiBase != "" {
		mg.SetAPIBase(apiBase)
	}
	if sender == "" {
		sender = fmt.Sprintf("Store API <no-reply@%s>", domain)
	}
	return &Mailgun{mg: mg, sender: sender}
}

func (m *Mailgun) Send(ctx context.Context, to, subject, body string) error {
	msg := m.mg.NewMessage(m.sender, subject, body, to)

	if _, _, err := m.mg.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrAPIResponse, err)
	}
	return nil
}

// LogMailer writes emails to the log instead of sending them.
type LogMailer struct {
	logger *logger.Logger
}

func NewLogMailer(logger *logger.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Ctx(ctx).Info("Mailer: email not sent, no provider configured",
		"email", to,
		"subject", subject,
		"body", body)
	return nil
}
