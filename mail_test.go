package main

import (
	"context"
	"net"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSMTP accepts one session on loopback and reports the DATA payload.
func fakeSMTP(t *testing.T) (host, port string, data <-chan string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	got := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		tp := textproto.NewConn(conn)
		_ = tp.PrintfLine("220 localhost ESMTP test")

		var payload string
		for {
			line, err := tp.ReadLine()
			if err != nil {
				return
			}
			cmd := strings.ToUpper(line)
			switch {
			case strings.HasPrefix(cmd, "EHLO"):
				_ = tp.PrintfLine("250-localhost")
				_ = tp.PrintfLine("250 AUTH PLAIN")
			case strings.HasPrefix(cmd, "AUTH"):
				_ = tp.PrintfLine("235 2.7.0 Authentication successful")
			case strings.HasPrefix(cmd, "MAIL FROM"), strings.HasPrefix(cmd, "RCPT TO"):
				_ = tp.PrintfLine("250 OK")
			case cmd == "DATA":
				_ = tp.PrintfLine("354 End data with <CR><LF>.<CR><LF>")
				b, err := tp.ReadDotBytes()
				if err != nil {
					return
				}
				payload = string(b)
				_ = tp.PrintfLine("250 OK queued")
			case cmd == "QUIT":
				_ = tp.PrintfLine("221 Bye")
				got <- payload
				return
			default:
				_ = tp.PrintfLine("502 Command not implemented")
			}
		}
	}()

	host, port, err = net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	return host, port, got
}

func TestSMTPMailer_Send(t *testing.T) {
	host, port, data := fakeSMTP(t)
	m := newSMTPMailer(Config{
		EmailUser: "me@example.com",
		EmailPass: "secret",
		SMTPHost:  host,
		SMTPPort:  port,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := m.Send(ctx, Mail{
		From:    "me@example.com",
		To:      "inbox@example.com",
		ReplyTo: "ada@example.com",
		Subject: "Portfolio Contact: Hi",
		HTML:    "<p>Hello</p>",
	})
	require.NoError(t, err)

	select {
	case payload := <-data:
		assert.Contains(t, payload, "Subject: Portfolio Contact: Hi\n")
		assert.Contains(t, payload, "Reply-To: ada@example.com\n")
		assert.Contains(t, payload, "Content-Type: text/html; charset=\"UTF-8\"\n")
		assert.Contains(t, payload, "<p>Hello</p>")
	case <-time.After(5 * time.Second):
		t.Fatal("server never received the message")
	}
}

func TestSMTPMailer_HonorsDeadline(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		// Accept and never greet.
		conn, err := ln.Accept()
		if err == nil {
			defer conn.Close()
			time.Sleep(10 * time.Second)
		}
	}()

	host, port, _ := net.SplitHostPort(ln.Addr().String())
	m := newSMTPMailer(Config{EmailUser: "me@example.com", EmailPass: "x", SMTPHost: host, SMTPPort: port})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	start := time.Now()
	err = m.Send(ctx, Mail{From: "me@example.com", To: "inbox@example.com"})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestMail_Bytes(t *testing.T) {
	msg := string(Mail{
		From:    "me@example.com",
		To:      "inbox@example.com",
		Subject: "Portfolio Contact: Hi\r\nBcc: victim@example.com",
		HTML:    "<p>x</p>",
	}.bytes())

	head, body, ok := strings.Cut(msg, "\r\n\r\n")
	require.True(t, ok)
	assert.Equal(t, "<p>x</p>", body)
	assert.NotContains(t, head, "\r\nBcc:")
	assert.Contains(t, head, "From: me@example.com\r\n")
	assert.Contains(t, head, "MIME-Version: 1.0\r\n")
	assert.NotContains(t, head, "Reply-To", "empty headers are skipped")

	encoded := string(Mail{Subject: "Portfolio Contact: Grüße"}.bytes())
	assert.Contains(t, encoded, "Subject: =?utf-8?q?")
}
