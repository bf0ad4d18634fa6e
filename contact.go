package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alyradwan/portfolio/internal/portfolio"
)

const contactSent = "Message sent successfully! I'll get back to you soon."

// POST /api/contact accepts JSON or a urlencoded form.
func (s *server) contact(c *gin.Context) {
	var sub portfolio.ContactSubmission
	// An empty JSON body binds as an empty submission.
	if err := c.ShouldBind(&sub); err != nil && !errors.Is(err, io.EOF) {
		s.fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := sub.Validate(); err != nil {
		var verr *portfolio.ValidationError
		if errors.As(err, &verr) {
			s.fail(c, http.StatusBadRequest, verr.Message, nil)
			return
		}
		s.fail(c, http.StatusBadRequest, "Invalid submission", err)
		return
	}

	client := s.hasher.Hash(c.ClientIP())
	if s.mailer == nil {
		// The log is the only copy of the message here, so the fields are kept
		// verbatim. The client address is not needed to reply.
		log.Printf("Email not configured. Contact form data from %s <%s> (client %s): subject=%q message=%q",
			sub.Name, sub.Email, client, sub.Subject, sub.Message)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": contactSent})
		return
	}

	mail, err := s.contactMail(sub)
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.MailTimeout)
		err = s.mailer.Send(ctx, mail)
		cancel()
	}
	if err != nil {
		log.Printf("Contact form error (request %s, client %s): %v", c.GetString(requestIDKey), client, err)
		s.fail(c, http.StatusInternalServerError, "Error sending message. Please try again later.", err)
		return
	}

	log.Printf("Email sent successfully from %s (client %s)", sub.Email, client)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": contactSent})
}

func (s *server) contactMail(sub portfolio.ContactSubmission) (Mail, error) {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "contact-email.html", sub); err != nil {
		return Mail{}, fmt.Errorf("render contact email: %w", err)
	}
	return Mail{
		From:    s.cfg.EmailUser,
		To:      s.cfg.ContactEmail,
		ReplyTo: sub.Email,
		Subject: "Portfolio Contact: " + sub.Subject,
		HTML:    body.String(),
	}, nil
}
