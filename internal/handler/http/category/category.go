// Package category provides HTTP handlers for category endpoints.
package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"lawportal/internal/domain/entity"
	"lawportal/internal/handler/http/pathutil"
	"lawportal/internal/handler/http/respond"
	catUC "lawportal/internal/usecase/category"
)

// DTO represents the JSON structure for category data transfer.
type DTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	IconName    *string `json:"iconName,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

func toDTO(c *entity.Category) DTO {
	return DTO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IconName:    c.IconName,
		ImageURL:    c.ImageURL,
	}
}

type ListHandler struct{ Svc catUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, out)
}

type GetHandler struct{ Svc catUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.ExtractSlug(r.URL.Path, "/api/categories/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.GetBySlug(r.Context(), slug)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, catUC.ErrCategoryNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(c))
}

// createRequest is the JSON payload for creating a category.
type createRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	IconName    *string `json:"iconName"`
	ImageURL    *string `json:"imageUrl"`
}

type CreateHandler struct{ Svc catUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	created, err := h.Svc.Create(r.Context(), catUC.CreateInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		IconName:    req.IconName,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var vErr *entity.ValidationError
		switch {
		case errors.As(err, &vErr):
			code = http.StatusBadRequest
		case errors.Is(err, entity.ErrDuplicateSlug):
			code = http.StatusConflict
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(created))
}

// Register registers all category-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc catUC.Service) {
	mux.Handle("GET /api/categories", ListHandler{svc})
	mux.Handle("GET /api/categories/", GetHandler{svc})
	mux.Handle("POST /api/categories", CreateHandler{svc})
}
