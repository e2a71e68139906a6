package mailer

import (
	"context"
	netmail "net/mail"

	"ezrent/internal/pkg/config"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/usecase/notify"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type SendGridMailer struct {
	client sendGridClient
	from   *mail.Email
}

func NewSendGridMailer(cfg config.MailConfig) (*SendGridMailer, error) {
	if cfg.SendGridAPIKey == "" {
		return nil, errs.New("SENDGRID_API_KEY is required for the sendgrid provider")
	}
	from, err := parseSender(cfg.From)
	if err != nil {
		return nil, err
	}
	return &SendGridMailer{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:   from,
	}, nil
}

func (m *SendGridMailer) Send(ctx context.Context, msg notify.Email) error {
	to := mail.NewEmail("", msg.To)
	message := mail.NewSingleEmail(m.from, msg.Subject, to, "", msg.HTML)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Wrap(err, "failed to send email via sendgrid")
	}
	if resp.StatusCode >= 400 {
		return errs.Newf("sendgrid error: status %d, body: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// parseSender accepts either "Name <addr>" or a bare address.
func parseSender(from string) (*mail.Email, error) {
	addr, err := netmail.ParseAddress(from)
	if err != nil {
		return nil, errs.Wrap(err, "invalid MAIL_FROM")
	}
	return mail.NewEmail(addr.Name, addr.Address), nil
}
