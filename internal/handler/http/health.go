package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"lawportal/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for the health check endpoint.
type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Environment string `json:"environment"`
}

// HealthHandler serves the health check endpoint. When DB is non-nil
// the check pings the database; with the in-memory backend there is
// nothing to probe and the handler always reports healthy.
type HealthHandler struct {
	DB          *sql.DB
	Environment string
}

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	out := HealthResponse{
		Status:      "ok",
		Message:     "API is running",
		Environment: h.Environment,
	}

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.DB.PingContext(ctx); err != nil {
			out.Status = "unhealthy"
			out.Message = "database unreachable"
			respond.JSON(w, http.StatusServiceUnavailable, out)
			return
		}
	}

	respond.JSON(w, http.StatusOK, out)
}
