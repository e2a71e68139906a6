package mailer

import (
	"ezrent/internal/pkg/config"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/usecase/notify"
)

const (
	ProviderSMTP     = "smtp"
	ProviderSendGrid = "sendgrid"
	ProviderLog      = "log"
)

func New(cfg config.MailConfig) (notify.Mailer, error) {
	switch cfg.Provider {
	case ProviderSMTP:
		return NewSMTPMailer(cfg), nil
	case ProviderSendGrid:
		return NewSendGridMailer(cfg)
	case ProviderLog, "":
		return NewLogMailer(), nil
	default:
		return nil, errs.Newf("unknown MAIL_PROVIDER %q", cfg.Provider)
	}
}
