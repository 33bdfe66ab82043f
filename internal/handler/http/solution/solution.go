// Package solution provides HTTP handlers for solution endpoints.
package solution

import (
	"encoding/json"
	"errors"
	"net/http"

	"lawportal/internal/domain/entity"
	"lawportal/internal/handler/http/respond"
	solUC "lawportal/internal/usecase/solution"
)

// DTO represents the JSON structure for solution data transfer.
type DTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Link        string  `json:"link"`
	LinkText    string  `json:"linkText"`
}

func toDTO(s *entity.Solution) DTO {
	return DTO{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		Link:        s.Link,
		LinkText:    s.LinkText,
	}
}

type ListHandler struct{ Svc solUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	solutions, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(solutions))
	for _, s := range solutions {
		out = append(out, toDTO(s))
	}
	respond.JSON(w, http.StatusOK, out)
}

// createRequest is the JSON payload for creating a solution.
type createRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Link        string  `json:"link"`
	LinkText    string  `json:"linkText"`
}

type CreateHandler struct{ Svc solUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	created, err := h.Svc.Create(r.Context(), solUC.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Link:        req.Link,
		LinkText:    req.LinkText,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(created))
}

// Register registers all solution-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc solUC.Service) {
	mux.Handle("GET /api/solutions", ListHandler{svc})
	mux.Handle("POST /api/solutions", CreateHandler{svc})
}
