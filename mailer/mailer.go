package mailer

import (
	"log"
	"os"
	"strconv"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends a single plain-text email.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers through the SMTP server configured in the environment.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	return d.DialAndSend(msg)
}

// LogMailer writes outgoing mail to the log instead of sending it. Used when
// SMTP is not configured (local development, tests).
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	log.Printf("📧 (not sent) To: %s | Subject: %s\n%s", to, subject, body)
	return nil
}

// NewFromEnv builds an SMTP mailer from SMTP_* environment variables, falling
// back to the logging mailer when SMTP_HOST is unset.
func NewFromEnv() Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("⚠️ SMTP_HOST not set, outgoing mail will only be logged")
		return LogMailer{}
	}

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USERNAME")
	}

	return &SMTPMailer{
		Host:     host,
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     from,
	}
}
