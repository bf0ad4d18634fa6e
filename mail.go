package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// Mail is one outgoing HTML message.
type Mail struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Mailer delivers mail. Send must return once ctx is done.
type Mailer interface {
	Send(ctx context.Context, m Mail) error
}

// smtpMailer sends through a single SMTP relay. It is created once at
// startup and shared by every request.
type smtpMailer struct {
	addr string
	host string
	auth smtp.Auth
}

func newSMTPMailer(cfg Config) *smtpMailer {
	return &smtpMailer{
		addr: net.JoinHostPort(cfg.SMTPHost, cfg.SMTPPort),
		host: cfg.SMTPHost,
		auth: smtp.PlainAuth("", cfg.EmailUser, cfg.EmailPass, cfg.SMTPHost),
	}
}

func (m *smtpMailer) Send(ctx context.Context, mail Mail) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", m.addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", m.addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("smtp greeting: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if m.auth != nil {
		if err := c.Auth(m.auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := c.Mail(mail.From); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	if err := c.Rcpt(mail.To); err != nil {
		return fmt.Errorf("smtp RCPT TO: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err := w.Write(mail.bytes()); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish message: %w", err)
	}
	return c.Quit()
}

// bytes renders the message with its headers.
func (m Mail) bytes() []byte {
	var b strings.Builder
	header := func(k, v string) {
		if v == "" {
			return
		}
		b.WriteString(k + ": " + headerValue(v) + "\r\n")
	}
	header("From", m.From)
	header("To", m.To)
	header("Reply-To", m.ReplyTo)
	header("Subject", mime.QEncoding.Encode("utf-8", headerValue(m.Subject)))
	header("MIME-Version", "1.0")
	header("Content-Type", `text/html; charset="UTF-8"`)
	b.WriteString("\r\n")
	b.WriteString(m.HTML)
	return []byte(b.String())
}

// headerValue keeps user input from starting new header lines.
func headerValue(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
