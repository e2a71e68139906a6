//go:build unit

package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ezrent/internal/domain/money"
	"ezrent/internal/pkg/config"
	"ezrent/internal/usecase/notify"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestTemplateRenderer_RenderBooking(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	total := money.FromCents(7500)
	subject, html, err := r.RenderBooking(notify.BookingEmail{
		BookingID:     "b-1",
		RecipientName: "Kofi <Owner>",
		Headline:      "New booking request for Camping tent",
		Product:       "Camping tent",
		Status:        "pending",
		PickupDate:    time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		ReturnDate:    time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
		PaymentMethod: "card",
		PricePerDay:   money.FromCents(2500),
		Days:          3,
		Total:         total,
		Commission:    total.Percent(30),
		OwnerPayout:   total.Sub(total.Percent(30)),
	})

	require.NoError(t, err)
	assert.Equal(t, "EzRent: New booking request for Camping tent", subject)
	for _, want := range []string{"b-1", "Camping tent", "pending", "Fri, 10 Apr 2026", "Sun, 12 Apr 2026", "card", "25.00", "75.00", "22.50", "52.50"} {
		assert.Contains(t, html, want)
	}
	assert.Contains(t, html, "Kofi &lt;Owner&gt;")
}

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestSMTPMailer_Send(t *testing.T) {
	msg := notify.Email{To: "ama@example.com", Subject: "Hello", HTML: "<p>hi</p>"}

	t.Run("builds headers", func(t *testing.T) {
		d := &fakeDialer{}
		m := &SMTPMailer{dialer: d, from: "EzRent <no-reply@ezrent.app>"}

		require.NoError(t, m.Send(context.Background(), msg))
		require.Len(t, d.sent, 1)
		assert.Equal(t, []string{"ama@example.com"}, d.sent[0].GetHeader("To"))
		assert.Equal(t, []string{"Hello"}, d.sent[0].GetHeader("Subject"))
	})

	t.Run("dial failure", func(t *testing.T) {
		d := &fakeDialer{err: errors.New("connection refused")}
		m := &SMTPMailer{dialer: d, from: "no-reply@ezrent.app"}

		err := m.Send(context.Background(), msg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("cancelled context skips dialing", func(t *testing.T) {
		d := &fakeDialer{}
		m := &SMTPMailer{dialer: d, from: "no-reply@ezrent.app"}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, m.Send(ctx, msg), context.Canceled)
		assert.Empty(t, d.sent)
	})
}

type fakeSendGrid struct {
	got  *mail.SGMailV3
	resp *rest.Response
	err  error
}

func (f *fakeSendGrid) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	f.got = email
	return f.resp, f.err
}

func TestSendGridMailer_Send(t *testing.T) {
	from, err := parseSender("EzRent <no-reply@ezrent.app>")
	require.NoError(t, err)
	assert.Equal(t, "EzRent", from.Name)
	assert.Equal(t, "no-reply@ezrent.app", from.Address)

	msg := notify.Email{To: "ama@example.com", Subject: "Paid", HTML: "<p>paid</p>"}

	t.Run("accepted", func(t *testing.T) {
		c := &fakeSendGrid{resp: &rest.Response{StatusCode: 202}}
		m := &SendGridMailer{client: c, from: from}

		require.NoError(t, m.Send(context.Background(), msg))
		assert.Equal(t, "Paid", c.got.Subject)
		require.Len(t, c.got.Personalizations, 1)
		assert.Equal(t, "ama@example.com", c.got.Personalizations[0].To[0].Address)
	})

	t.Run("rejected status", func(t *testing.T) {
		c := &fakeSendGrid{resp: &rest.Response{StatusCode: 401, Body: "unauthorized"}}
		m := &SendGridMailer{client: c, from: from}

		err := m.Send(context.Background(), msg)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "401"))
	})
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.MailConfig
		want    any
		wantErr bool
	}{
		{name: "log", cfg: config.MailConfig{Provider: "log"}, want: &LogMailer{}},
		{name: "smtp", cfg: config.MailConfig{Provider: "smtp", From: "a@b.c", SMTPHost: "localhost", SMTPPort: 25}, want: &SMTPMailer{}},
		{name: "sendgrid", cfg: config.MailConfig{Provider: "sendgrid", From: "a@b.c", SendGridAPIKey: "key"}, want: &SendGridMailer{}},
		{name: "sendgrid without key", cfg: config.MailConfig{Provider: "sendgrid", From: "a@b.c"}, wantErr: true},
		{name: "unknown", cfg: config.MailConfig{Provider: "pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, m)
		})
	}
}
