package email

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"portfolio-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *EmailService {
	return NewEmailService(&config.Config{
		SMTPHost:       "smtp.example.com",
		SMTPPort:       "587",
		SMTPUsername:   "mailer",
		SMTPPassword:   "secret",
		SMTPFromEmail:  "noreply@example.com",
		ContactEmailTo: "owner@example.com",
	})
}

func TestSendContactNotification(t *testing.T) {
	t.Run("Should send to the owner with a reply-to header", func(t *testing.T) {
		svc := testService()
		var gotAddr string
		var gotTo []string
		var gotMsg string
		svc.sendMail = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
			gotAddr, gotTo, gotMsg = addr, to, string(msg)
			return nil
		}

		err := svc.SendContactNotification(context.Background(), ContactEmailData{
			SenderName:  "Ada",
			SenderEmail: "ada@example.com",
			Subject:     "Hello\r\nBcc: evil@example.com",
			Message:     "<script>alert(1)</script>",
		})
		require.NoError(t, err)

		assert.Equal(t, "smtp.example.com:587", gotAddr)
		assert.Equal(t, []string{"owner@example.com"}, gotTo)
		assert.Contains(t, gotMsg, "Reply-To: ada@example.com\r\n")
		assert.NotContains(t, gotMsg, "\r\nBcc:")
		assert.NotContains(t, gotMsg, "<script>")
	})

	t.Run("Should refuse when SMTP is not configured", func(t *testing.T) {
		svc := NewEmailService(&config.Config{})
		err := svc.SendContactNotification(context.Background(), ContactEmailData{})
		assert.Error(t, err)
	})

	t.Run("Should wrap transport errors", func(t *testing.T) {
		svc := testService()
		boom := errors.New("dial tcp: refused")
		svc.sendMail = func(string, smtp.Auth, string, []string, []byte) error { return boom }

		err := svc.SendContactNotification(context.Background(), ContactEmailData{SenderEmail: "a@b.co", Message: "hi"})
		assert.ErrorIs(t, err, boom)
	})
}
