// Package mailer sends email through an SMTP relay.
//
// The zero-configuration path is a local relay such as Mailpit; with
// credentials set it authenticates via PLAIN auth after STARTTLS where the
// server offers it. Verify checks connectivity and credentials without
// sending anything; Dial opens a session that can deliver several messages
// over one connection and must always be closed.
package mailer

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"net"
	"net/smtp"

	"go.uber.org/zap"
)

// Mailer sends emails via SMTP.
type Mailer struct {
	host     string
	port     int
	user     string
	pass     string
	from     string
	fromName string
	log      *zap.Logger
}

// Config holds the configuration for creating a Mailer.
type Config struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string
	FromName string
}

// New creates a new Mailer with the given configuration.
func New(cfg Config, log *zap.Logger) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		pass:     cfg.Pass,
		from:     cfg.From,
		fromName: cfg.FromName,
		log:      log,
	}
}

// FromName returns the configured sender display name.
func (m *Mailer) FromName() string {
	return m.fromName
}

// Email represents an email to be sent.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Verify checks that the relay is reachable and accepts the configured
// credentials. Nothing is sent.
func (m *Mailer) Verify(ctx context.Context) error {
	c, err := m.dial(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Noop(); err != nil {
		return fmt.Errorf("mail relay verification failed: %w", err)
	}
	return c.Quit()
}

// Session is one SMTP connection. It can deliver several messages and must
// be closed regardless of outcome.
type Session struct {
	c          *smtp.Client
	from       string
	fromHeader string
	log        *zap.Logger
}

// Dial opens an SMTP session against the configured relay.
func (m *Mailer) Dial(ctx context.Context) (*Session, error) {
	c, err := m.dial(ctx)
	if err != nil {
		return nil, err
	}
	fromHeader := m.from
	if m.fromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", m.fromName, m.from)
	}
	return &Session{c: c, from: m.from, fromHeader: fromHeader, log: m.log}, nil
}

// dial connects, greets, negotiates STARTTLS when offered, and authenticates
// when credentials are configured.
func (m *Mailer) dial(ctx context.Context) (*smtp.Client, error) {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to reach mail relay at %s: %w", addr, err)
	}

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("mail relay greeting failed: %w", err)
	}

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			c.Close()
			return nil, fmt.Errorf("mail relay STARTTLS failed: %w", err)
		}
	}

	if m.user != "" && m.pass != "" {
		auth := smtp.PlainAuth("", m.user, m.pass, m.host)
		if err := c.Auth(auth); err != nil {
			c.Close()
			return nil, fmt.Errorf("mail relay rejected credentials: %w", err)
		}
	}

	return c, nil
}

// Send delivers one email over the session. A failed send aborts its SMTP
// transaction so the session stays usable for further messages.
func (s *Session) Send(email Email) error {
	if err := s.c.Mail(s.from); err != nil {
		return fmt.Errorf("mail relay rejected sender %s: %w", s.from, err)
	}
	if err := s.c.Rcpt(email.To); err != nil {
		s.abort()
		return fmt.Errorf("mail relay rejected recipient %s: %w", email.To, err)
	}
	wc, err := s.c.Data()
	if err != nil {
		s.abort()
		return fmt.Errorf("mail relay rejected message data: %w", err)
	}
	msg := buildMessage(s.fromHeader, email)
	if _, err := wc.Write(msg); err != nil {
		wc.Close()
		s.abort()
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := wc.Close(); err != nil {
		s.abort()
		return fmt.Errorf("mail relay rejected message: %w", err)
	}

	s.log.Info("email sent",
		zap.String("to", email.To),
		zap.String("subject", email.Subject))

	return nil
}

// abort resets the open transaction after a failed send. Without the RSET
// the next MAIL command on this session would be a nested MAIL, which
// relays reject with 503.
func (s *Session) abort() {
	if err := s.c.Reset(); err != nil {
		s.log.Warn("mail relay reset failed", zap.Error(err))
	}
}

// Close terminates the session. Safe to call after a failed Send.
func (s *Session) Close() error {
	if err := s.c.Quit(); err != nil {
		return s.c.Close()
	}
	return nil
}

// buildMessage assembles the raw RFC 5322 message. When HTMLBody is set the
// message is multipart/alternative with a plain text part first.
func buildMessage(from string, email Email) []byte {
	var msg bytes.Buffer

	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", email.To))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")

	if email.HTMLBody != "" {
		boundary := randomBoundary()
		msg.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary))
		msg.WriteString("\r\n")

		// Plain text part
		msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(email.TextBody)
		msg.WriteString("\r\n")

		// HTML part
		msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(email.HTMLBody)
		msg.WriteString("\r\n")

		msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	} else {
		msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(email.TextBody)
	}

	return msg.Bytes()
}

// randomBoundary generates a random boundary string for multipart emails.
func randomBoundary() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand.Read failed: " + err.Error())
	}
	return "----=_Part_" + hex.EncodeToString(b)
}
