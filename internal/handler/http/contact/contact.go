// Package contact provides the HTTP handler for contact form submissions.
package contact

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"lawportal/internal/domain/entity"
	handlerhttp "lawportal/internal/handler/http"
	"lawportal/internal/handler/http/respond"
	"lawportal/internal/infra/mailer"
	contactUC "lawportal/internal/usecase/contact"
)

// submitRequest is the JSON payload for a contact form submission.
// Phone is optional.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type SubmitHandler struct{ Svc contactUC.Service }

func (h SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	err := h.Svc.Submit(r.Context(), contactUC.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		handlerhttp.RecordContactSubmission(false)

		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}

		var rlErr *mailer.RateLimitError
		if errors.As(err, &rlErr) {
			w.Header().Set("Retry-After", strconv.Itoa(int(rlErr.RetryAfter.Seconds())))
			respond.SafeError(w, http.StatusServiceUnavailable, errors.New("mail service is busy, try again later"))
			return
		}

		respond.SafeError(w, http.StatusBadGateway, err)
		return
	}

	handlerhttp.RecordContactSubmission(true)
	respond.JSON(w, http.StatusOK, map[string]any{"success": true, "message": "message sent"})
}

// Register registers the contact form handler with the given mux.
// The handler sits behind an IP rate limiter since it triggers
// outbound email.
func Register(mux *http.ServeMux, svc contactUC.Service, limiter *handlerhttp.RateLimiter) {
	mux.Handle("POST /api/contact", limiter.Limit(SubmitHandler{svc}))
}
