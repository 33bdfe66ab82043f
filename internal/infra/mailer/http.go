package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"lawportal/internal/resilience/circuitbreaker"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const requestIDKey contextKey = "mail_request_id"

// HTTPMailer delivers messages through an HTTP email provider API.
// Sends are paced with a token bucket, retried with backoff on
// transient failures, and guarded by a circuit breaker so a broken
// provider cannot pile up blocked contact requests.
type HTTPMailer struct {
	config     Config
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *circuitbreaker.CircuitBreaker

	// retry tuning; overridden in tests
	maxAttempts int
	baseDelay   time.Duration
}

// NewHTTPMailer creates a mailer for the given provider configuration.
func NewHTTPMailer(config Config) *HTTPMailer {
	return &HTTPMailer{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		limiter:     rate.NewLimiter(rate.Limit(1), 3), // 1 msg/s, burst of 3
		breaker:     circuitbreaker.New(circuitbreaker.MailerConfig()),
		maxAttempts: 2,
		baseDelay:   5 * time.Second,
	}
}

// apiPayload is the JSON body accepted by the provider's send endpoint.
type apiPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html,omitempty"`
}

// Send delivers the message. This method implements the Mailer interface.
func (m *HTTPMailer) Send(ctx context.Context, msg Message) error {
	requestID := uuid.New().String()
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	slog.Info("sending email",
		slog.String("request_id", requestID),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject))

	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	_, err := m.breaker.Execute(func() (interface{}, error) {
		return nil, m.sendWithRetry(ctx, msg)
	})
	return err
}

// sendOnce performs a single provider call and classifies the response.
func (m *HTTPMailer) sendOnce(ctx context.Context, msg Message) error {
	payload := apiPayload{
		From:    m.config.From,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.Text,
		HTML:    msg.HTML,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.APIURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.config.APIKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{
			Message:    "email provider rate limit exceeded",
			RetryAfter: extractRetryAfter(resp),
		}
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return &ClientError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("email provider client error: %s", string(body)),
		}
	}

	if resp.StatusCode >= 500 {
		return &ServerError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("email provider server error: %s", string(body)),
		}
	}

	return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
}

// sendWithRetry retries transient failures with linear backoff. Rate
// limit responses honor the provider's Retry-After; client errors fail
// immediately.
func (m *HTTPMailer) sendWithRetry(ctx context.Context, msg Message) error {
	requestID, _ := ctx.Value(requestIDKey).(string)

	var lastErr error
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		err := m.sendOnce(ctx, msg)
		if err == nil {
			slog.Info("email delivered",
				slog.String("request_id", requestID),
				slog.String("to", msg.To),
				slog.Int("attempt", attempt))
			return nil
		}

		lastErr = err

		if rateLimitErr, ok := is429Error(err); ok {
			slog.Warn("email provider rate limit hit, backing off",
				slog.String("request_id", requestID),
				slog.Duration("retry_after", rateLimitErr.RetryAfter),
				slog.Int("attempt", attempt))
			select {
			case <-time.After(rateLimitErr.RetryAfter):
				continue
			case <-ctx.Done():
				return fmt.Errorf("context canceled during rate limit backoff: %w", ctx.Err())
			}
		}

		if !isRetryableError(err) {
			slog.Error("email delivery failed with non-retryable error",
				slog.String("request_id", requestID),
				slog.String("to", msg.To),
				slog.Any("error", err),
				slog.Int("attempt", attempt))
			return err
		}

		if attempt < m.maxAttempts {
			delay := m.baseDelay * time.Duration(attempt)
			slog.Warn("email delivery failed, retrying",
				slog.String("request_id", requestID),
				slog.Any("error", err),
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay))
			select {
			case <-time.After(delay):
				continue
			case <-ctx.Done():
				return fmt.Errorf("context canceled during retry backoff: %w", ctx.Err())
			}
		}
	}

	slog.Error("email delivery failed after all retries",
		slog.String("request_id", requestID),
		slog.String("to", msg.To),
		slog.Any("error", lastErr),
		slog.Int("max_attempts", m.maxAttempts))

	return fmt.Errorf("email delivery failed after %d attempts: %w", m.maxAttempts, lastErr)
}
