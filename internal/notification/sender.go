package notification

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// InlineImage is embedded in an email and referenced from its HTML by Filename.
type InlineImage struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Email struct {
	To      string
	Subject string
	HTML    string
	Inline  []InlineImage
}

type EmailSender interface {
	SendEmail(ctx context.Context, email Email) error
}

// TextSender delivers a plain text message to a phone number.
type TextSender interface {
	SendText(ctx context.Context, to, body string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(conf SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(conf.Host, conf.Port, conf.Username, conf.Password),
		from:   conf.From,
	}
}

func (s *SMTPSender) SendEmail(ctx context.Context, email Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTML)

	for _, img := range email.Inline {
		data := img.Data
		m.Embed(img.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {img.ContentType}}),
		)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("s.dialer.DialAndSend -> %w", err)
	}

	return nil
}

// SimulatedEmailSender logs instead of delivering. Used when SMTP is not configured.
type SimulatedEmailSender struct {
	latency time.Duration
}

func NewSimulatedEmailSender(latency time.Duration) *SimulatedEmailSender {
	return &SimulatedEmailSender{latency: latency}
}

func (s *SimulatedEmailSender) SendEmail(ctx context.Context, email Email) error {
	if err := wait(ctx, s.latency); err != nil {
		return err
	}

	zap.L().Info("simulated email send",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
		zap.Int("inline_images", len(email.Inline)),
	)

	return nil
}

// SimulatedTextSender stands in for an SMS or WhatsApp provider.
type SimulatedTextSender struct {
	channel string
	latency time.Duration
}

func NewSimulatedTextSender(channel string, latency time.Duration) *SimulatedTextSender {
	return &SimulatedTextSender{
		channel: channel,
		latency: latency,
	}
}

func (s *SimulatedTextSender) SendText(ctx context.Context, to, body string) error {
	if err := wait(ctx, s.latency); err != nil {
		return err
	}

	zap.L().Info("simulated text send",
		zap.String("channel", s.channel),
		zap.String("to", to),
		zap.String("preview", preview(body, 50)),
	)

	return nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n]) + "..."
}
