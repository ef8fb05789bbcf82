package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
	"time"

	"portfolio-backend/config"
)

// EmailService sends owner notifications over SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string

	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
	ReceivedAt  time.Time
}

func NewEmailService(cfg *config.Config) *EmailService {
	from := cfg.SMTPFromEmail
	if from == "" {
		from = cfg.SMTPUsername
	}
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: from,
		toEmail:   cfg.ContactEmailTo,
		sendMail:  smtp.SendMail,
	}
}

var contactTmpl = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>New message from your portfolio</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2>New message from your portfolio</h2>
  <p><strong>From:</strong> {{.SenderName}} ({{.SenderEmail}})</p>
  {{if .Subject}}<p><strong>Subject:</strong> {{.Subject}}</p>{{end}}
  <p><strong>Received:</strong> {{.ReceivedAt.Format "2006-01-02 15:04 MST"}}</p>
  <div style="background: #f9f9f9; padding: 15px; border-left: 4px solid #6d28d9;">{{.Message}}</div>
  <p style="color: #888; font-size: 12px;">Reply directly to this email to answer {{.SenderEmail}}.</p>
</body>
</html>`))

// SendContactNotification tells the site owner about a new contact submission.
func (s *EmailService) SendContactNotification(ctx context.Context, data ContactEmailData) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service is not configured")
	}
	if data.ReceivedAt.IsZero() {
		data.ReceivedAt = time.Now().UTC()
	}

	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := "New portfolio message"
	if data.Subject != "" {
		subject = "Portfolio: " + data.Subject
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		s.toEmail,
		headerSafe(data.SenderEmail),
		headerSafe(subject),
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	// net/smtp has no context support; honour cancellation before dialing
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.sendMail(addr, auth, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.toEmail != ""
}

// headerSafe strips CR and LF so visitor input cannot add headers.
func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
