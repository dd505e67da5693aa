package auth

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSender delivers one-time passwords. The auth flow only knows this
// interface; delivery details stay out of it.
type EmailSender interface {
	SendOtp(email, otp string) error
}

// SendGridSender delivers OTP emails through SendGrid.
type SendGridSender struct {
	apiKey string
	from   string
}

func NewSendGridSender(apiKey, from string) *SendGridSender {
	return &SendGridSender{apiKey: apiKey, from: from}
}

func (s *SendGridSender) SendOtp(email, otp string) error {
	fromEmail := mail.NewEmail("Multivendor Store", s.from)
	toEmail := mail.NewEmail("", email)
	subject := "Multivendor Store Login/Signup Otp"
	body := "your login otp is - " + otp

	message := mail.NewSingleEmail(fromEmail, subject, toEmail, body, fmt.Sprintf("<p>%s</p>", body))
	client := sendgrid.NewSendClient(s.apiKey)

	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d body=%s", response.StatusCode, response.Body)
	}
	return nil
}

// LogSender writes the OTP to the process log so local development works
// without mail credentials.
type LogSender struct{}

func (LogSender) SendOtp(email, otp string) error {
	log.Printf("📧 OTP for %s: %s", email, otp)
	return nil
}

// SenderFromEnv picks SendGrid when SENDGRID_API_KEY is configured.
func SenderFromEnv() EmailSender {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return LogSender{}
	}
	return NewSendGridSender(apiKey, os.Getenv("OTP_FROM_EMAIL"))
}
