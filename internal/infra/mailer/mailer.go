// Package mailer provides the outbound email collaborator used by the
// contact form. The Mailer interface lets the HTTP-API-backed sender
// and a no-op sender be used interchangeably through dependency
// injection.
package mailer

import (
	"context"
	"os"
	"time"
)

// Message is a single outbound email. HTML is optional; providers fall
// back to the text body when it is empty.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer sends a single email message.
// Implementations handle rate limiting, retries and error logging internally.
type Mailer interface {
	// Send delivers the message, returning a non-nil error only after
	// all retry attempts have been exhausted or the circuit is open.
	Send(ctx context.Context, msg Message) error
}

// Config contains configuration for the HTTP email provider.
type Config struct {
	// APIURL is the provider's message-submission endpoint.
	APIURL string

	// APIKey authenticates against the provider.
	APIKey string

	// From is the sender address applied to every message.
	From string

	// Timeout is the HTTP request timeout for provider calls.
	Timeout time.Duration
}

// LoadConfigFromEnv reads mailer configuration from the environment.
// An empty MAIL_API_URL disables outbound mail; the composition root
// substitutes the no-op mailer in that case.
func LoadConfigFromEnv() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MAIL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}
	return Config{
		APIURL:  os.Getenv("MAIL_API_URL"),
		APIKey:  os.Getenv("MAIL_API_KEY"),
		From:    os.Getenv("MAIL_FROM"),
		Timeout: timeout,
	}
}
