package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"lawportal/internal/domain/entity"
	"lawportal/internal/handler/http/respond"
	artUC "lawportal/internal/usecase/article"
)

// createRequest is the JSON payload for creating an article.
// publishDate is optional RFC 3339; omitted dates default to now.
type createRequest struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	ImageURL    *string    `json:"imageUrl"`
	PublishDate *time.Time `json:"publishDate"`
	CategoryID  int64      `json:"categoryId"`
	Featured    *int64     `json:"featured"`
}

type CreateHandler struct{ Svc artUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	in := artUC.CreateInput{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
		Featured:   req.Featured,
	}
	if req.PublishDate != nil {
		in.PublishDate = *req.PublishDate
	}

	created, err := h.Svc.Create(r.Context(), in)
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

	respond.JSON(w, http.StatusCreated, toDTO(created, nil))
}
