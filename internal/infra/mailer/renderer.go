package mailer

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"ezrent/internal/pkg/errs"
	"ezrent/internal/usecase/notify"
)

//go:embed templates/*.html
var templateFS embed.FS

type TemplateRenderer struct {
	booking *template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	tmpl, err := template.New("booking.html").
		Funcs(template.FuncMap{
			"date": func(t time.Time) string { return t.Format("Mon, 02 Jan 2006") },
		}).
		ParseFS(templateFS, "templates/booking.html")
	if err != nil {
		return nil, errs.Wrap(err, "parse mail templates")
	}
	return &TemplateRenderer{booking: tmpl}, nil
}

func (r *TemplateRenderer) RenderBooking(data notify.BookingEmail) (string, string, error) {
	var buf bytes.Buffer
	if err := r.booking.Execute(&buf, data); err != nil {
		return "", "", errs.Wrap(err, "render booking template")
	}
	return "EzRent: " + data.Headline, buf.String(), nil
}
