package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"clinic-api/config"

	"github.com/go-gomail/gomail"
)

// Mailer sends templated notification mail. Callers that treat delivery as
// best-effort must swallow the returned error themselves.
type Mailer interface {
	Send(ctx context.Context, to, subject, templateName string, data map[string]interface{}) error
}

const verificationTemplate = `<html>
<body>
  <p>Welcome to the clinic portal.</p>
  <p>Your verification code is: <strong>{{.Code}}</strong></p>
  <p>Enter this code to activate the account registered for {{.Email}}.</p>
</body>
</html>`

var mailTemplates = map[string]*template.Template{
	"verification": template.Must(template.New("verification").Parse(verificationTemplate)),
}

type smtpMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, templateName string, data map[string]interface{}) error {
	tmpl, ok := mailTemplates[templateName]
	if !ok {
		return fmt.Errorf("unknown mail template %q", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render mail template %q: %w", templateName, err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}

	return nil
}
