// Package contact handles contact form submissions and relays them to
// the firm's inbox through the configured mailer.
package contact

import (
	"context"
	"fmt"
	"html"
	"net/mail"
	"strings"

	"lawportal/internal/domain/entity"
	"lawportal/internal/infra/mailer"
)

const (
	maxNameLen    = 200
	maxPhoneLen   = 50
	maxSubjectLen = 300
	maxMessageLen = 10000
)

// Submission represents a contact form submission. Phone is optional.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Service relays contact form submissions by email.
type Service struct {
	Mailer mailer.Mailer
	// To is the inbox that receives submissions.
	To string
}

// Submit validates a submission and sends it to the configured inbox.
// Returns a ValidationError if any field is missing or malformed;
// delivery failures propagate from the mailer.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	if err := validate(sub); err != nil {
		return err
	}

	msg := mailer.Message{
		To:      s.To,
		Subject: fmt.Sprintf("Contact form: %s", sub.Subject),
		Text:    textBody(sub),
		HTML:    htmlBody(sub),
	}

	if err := s.Mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

func validate(sub Submission) error {
	if strings.TrimSpace(sub.Name) == "" {
		return &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if len(sub.Name) > maxNameLen {
		return &entity.ValidationError{Field: "name", Message: "is too long"}
	}
	if strings.TrimSpace(sub.Email) == "" {
		return &entity.ValidationError{Field: "email", Message: "is required"}
	}
	if _, err := mail.ParseAddress(sub.Email); err != nil {
		return &entity.ValidationError{Field: "email", Message: "is invalid"}
	}
	if len(sub.Phone) > maxPhoneLen {
		return &entity.ValidationError{Field: "phone", Message: "is too long"}
	}
	if strings.TrimSpace(sub.Subject) == "" {
		return &entity.ValidationError{Field: "subject", Message: "is required"}
	}
	if len(sub.Subject) > maxSubjectLen {
		return &entity.ValidationError{Field: "subject", Message: "is too long"}
	}
	if strings.TrimSpace(sub.Message) == "" {
		return &entity.ValidationError{Field: "message", Message: "is required"}
	}
	if len(sub.Message) > maxMessageLen {
		return &entity.ValidationError{Field: "message", Message: "is too long"}
	}
	return nil
}

func textBody(sub Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	if sub.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", sub.Phone)
	}
	fmt.Fprintf(&b, "Subject: %s\n\n", sub.Subject)
	b.WriteString(sub.Message)
	return b.String()
}

func htmlBody(sub Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(sub.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(sub.Email))
	if sub.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", html.EscapeString(sub.Phone))
	}
	fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>", html.EscapeString(sub.Subject))
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(html.EscapeString(sub.Message), "\n", "<br>"))
	return b.String()
}
