package contact_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lawportal/internal/domain/entity"
	"lawportal/internal/infra/mailer"
	contactUC "lawportal/internal/usecase/contact"
)

// captureMailer records the last message instead of delivering it.
type captureMailer struct {
	last *mailer.Message
	err  error
}

func (m *captureMailer) Send(_ context.Context, msg mailer.Message) error {
	m.last = &msg
	return m.err
}

func validSubmission() contactUC.Submission {
	return contactUC.Submission{
		Name:    "Ana Pereira",
		Email:   "ana@example.com",
		Subject: "Dismissal question",
		Message: "I was dismissed last week.\nWhat are my options?",
	}
}

func TestSubmit_SendsToConfiguredInbox(t *testing.T) {
	m := &captureMailer{}
	svc := contactUC.Service{Mailer: m, To: "info@lawportal.example"}

	if err := svc.Submit(context.Background(), validSubmission()); err != nil {
		t.Fatalf("Submit err=%v", err)
	}

	if m.last == nil {
		t.Fatal("mailer was not invoked")
	}
	if m.last.To != "info@lawportal.example" {
		t.Errorf("to = %q", m.last.To)
	}
	if m.last.Subject != "Contact form: Dismissal question" {
		t.Errorf("subject = %q", m.last.Subject)
	}
	for _, want := range []string{"Ana Pereira", "ana@example.com", "dismissed last week"} {
		if !strings.Contains(m.last.Text, want) {
			t.Errorf("text body missing %q", want)
		}
	}
	if !strings.Contains(m.last.HTML, "<br>") {
		t.Error("html body should convert newlines to <br>")
	}
}

func TestSubmit_OptionalPhone(t *testing.T) {
	m := &captureMailer{}
	svc := contactUC.Service{Mailer: m, To: "info@lawportal.example"}

	sub := validSubmission()
	sub.Phone = "+55 11 99999-0000"

	if err := svc.Submit(context.Background(), sub); err != nil {
		t.Fatalf("Submit err=%v", err)
	}
	if !strings.Contains(m.last.Text, "Phone: +55 11 99999-0000") {
		t.Errorf("text body missing phone: %q", m.last.Text)
	}
	if !strings.Contains(m.last.HTML, "+55 11 99999-0000") {
		t.Errorf("html body missing phone: %q", m.last.HTML)
	}

	// A submission without a phone omits the line entirely.
	m.last = nil
	if err := svc.Submit(context.Background(), validSubmission()); err != nil {
		t.Fatalf("Submit err=%v", err)
	}
	if strings.Contains(m.last.Text, "Phone:") {
		t.Errorf("text body should omit empty phone: %q", m.last.Text)
	}
}

func TestSubmit_EscapesHTML(t *testing.T) {
	m := &captureMailer{}
	svc := contactUC.Service{Mailer: m, To: "info@lawportal.example"}

	sub := validSubmission()
	sub.Message = "<script>alert(1)</script>"

	if err := svc.Submit(context.Background(), sub); err != nil {
		t.Fatalf("Submit err=%v", err)
	}
	if strings.Contains(m.last.HTML, "<script>") {
		t.Fatal("html body must escape markup in the message")
	}
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*contactUC.Submission)
		field  string
	}{
		{"missing name", func(s *contactUC.Submission) { s.Name = " " }, "name"},
		{"name too long", func(s *contactUC.Submission) { s.Name = strings.Repeat("a", 201) }, "name"},
		{"missing email", func(s *contactUC.Submission) { s.Email = "" }, "email"},
		{"malformed email", func(s *contactUC.Submission) { s.Email = "not-an-address" }, "email"},
		{"phone too long", func(s *contactUC.Submission) { s.Phone = strings.Repeat("9", 51) }, "phone"},
		{"missing subject", func(s *contactUC.Submission) { s.Subject = "" }, "subject"},
		{"missing message", func(s *contactUC.Submission) { s.Message = "\n\t" }, "message"},
		{"message too long", func(s *contactUC.Submission) { s.Message = strings.Repeat("a", 10001) }, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &captureMailer{}
			svc := contactUC.Service{Mailer: m, To: "info@lawportal.example"}

			sub := validSubmission()
			tt.mutate(&sub)

			err := svc.Submit(context.Background(), sub)
			var vErr *entity.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if vErr.Field != tt.field {
				t.Fatalf("field = %q, want %q", vErr.Field, tt.field)
			}
			if m.last != nil {
				t.Fatal("mailer must not be invoked on validation failure")
			}
		})
	}
}

func TestSubmit_DeliveryFailurePropagates(t *testing.T) {
	m := &captureMailer{err: errors.New("provider down")}
	svc := contactUC.Service{Mailer: m, To: "info@lawportal.example"}

	err := svc.Submit(context.Background(), validSubmission())
	if err == nil || !strings.Contains(err.Error(), "provider down") {
		t.Fatalf("err = %v, want wrapped delivery failure", err)
	}
}
