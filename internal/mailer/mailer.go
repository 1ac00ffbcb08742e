// Package mailer delivers password reset links.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

type Mailer interface {
	SendPasswordReset(ctx context.Context, to, name, link string) error
}

// SMTPMailer sends plain text mail through an unauthenticated relay.
type SMTPMailer struct {
	addr string
	from string
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(addr, from string) *SMTPMailer {
	return &SMTPMailer{addr: addr, from: from, send: smtp.SendMail}
}

func (m *SMTPMailer) SendPasswordReset(_ context.Context, to, name, link string) error {
	msg := buildResetMessage(m.from, to, name, link)
	if err := m.send(m.addr, nil, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

// LogMailer writes the reset link to the log. Used when no relay is configured.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, to, _, link string) error {
	m.logger.Info("password reset requested", zap.String("to", to), zap.String("link", link))
	return nil
}

func buildResetMessage(from, to, name, link string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	b.WriteString("Subject: Reset your Taskboard password\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", name)
	b.WriteString("Someone asked to reset the password of your Taskboard account.\r\n")
	fmt.Fprintf(&b, "Open this link to choose a new one:\r\n\r\n%s\r\n\r\n", link)
	b.WriteString("If it was not you, ignore this message.\r\n")
	return []byte(b.String())
}
