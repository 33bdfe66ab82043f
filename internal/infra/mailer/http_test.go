package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func newTestMailer(url string) *HTTPMailer {
	m := NewHTTPMailer(Config{
		APIURL:  url,
		APIKey:  "key-testing123",
		From:    "noreply@lawportal.example",
		Timeout: 2 * time.Second,
	})
	m.limiter = rate.NewLimiter(rate.Inf, 1)
	m.baseDelay = time.Millisecond
	return m
}

func TestSend_Success(t *testing.T) {
	var got apiPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer key-testing123" {
			t.Errorf("Authorization = %q", auth)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := newTestMailer(srv.URL)
	err := m.Send(context.Background(), Message{
		To:      "info@lawportal.example",
		Subject: "Contact form: question",
		Text:    "hello",
		HTML:    "<p>hello</p>",
	})
	if err != nil {
		t.Fatalf("Send err=%v", err)
	}

	if got.From != "noreply@lawportal.example" {
		t.Errorf("from = %q", got.From)
	}
	if got.To != "info@lawportal.example" {
		t.Errorf("to = %q", got.To)
	}
	if got.Subject != "Contact form: question" {
		t.Errorf("subject = %q", got.Subject)
	}
}

func TestSend_RetriesServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := newTestMailer(srv.URL)
	if err := m.Send(context.Background(), Message{To: "a@b.c", Subject: "s", Text: "t"}); err != nil {
		t.Fatalf("Send err=%v", err)
	}
	if n := calls.Load(); n != 2 {
		t.Fatalf("provider called %d times, want 2", n)
	}
}

func TestSend_ClientErrorDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	m := newTestMailer(srv.URL)
	err := m.Send(context.Background(), Message{To: "a@b.c", Subject: "s", Text: "t"})

	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		t.Fatalf("err = %v, want ClientError", err)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("provider called %d times, want 1", n)
	}
}

func TestSendOnce_Classification(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		retryAfter string
		check      func(t *testing.T, err error)
	}{
		{
			name:   "success",
			status: http.StatusOK,
			check: func(t *testing.T, err error) {
				if err != nil {
					t.Fatalf("err=%v", err)
				}
			},
		},
		{
			name:       "rate limited honors header",
			status:     http.StatusTooManyRequests,
			retryAfter: "7",
			check: func(t *testing.T, err error) {
				var rlErr *RateLimitError
				if !errors.As(err, &rlErr) {
					t.Fatalf("err = %v, want RateLimitError", err)
				}
				if rlErr.RetryAfter != 7*time.Second {
					t.Fatalf("RetryAfter = %v, want 7s", rlErr.RetryAfter)
				}
			},
		},
		{
			name:   "rate limited without header falls back",
			status: http.StatusTooManyRequests,
			check: func(t *testing.T, err error) {
				var rlErr *RateLimitError
				if !errors.As(err, &rlErr) {
					t.Fatalf("err = %v, want RateLimitError", err)
				}
				if rlErr.RetryAfter != 5*time.Second {
					t.Fatalf("RetryAfter = %v, want 5s fallback", rlErr.RetryAfter)
				}
			},
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			check: func(t *testing.T, err error) {
				var srvErr *ServerError
				if !errors.As(err, &srvErr) {
					t.Fatalf("err = %v, want ServerError", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			m := newTestMailer(srv.URL)
			tt.check(t, m.sendOnce(context.Background(), Message{To: "a@b.c", Subject: "s", Text: "t"}))
		})
	}
}

func TestNoopMailer(t *testing.T) {
	m := NewNoopMailer()
	if err := m.Send(context.Background(), Message{To: "a@b.c", Subject: "s", Text: "t"}); err != nil {
		t.Fatalf("noop Send err=%v", err)
	}
}
