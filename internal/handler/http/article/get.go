package article

import (
	"errors"
	"net/http"

	"lawportal/internal/handler/http/pathutil"
	"lawportal/internal/handler/http/respond"
	artUC "lawportal/internal/usecase/article"
)

type GetHandler struct{ Svc artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.ExtractSlug(r.URL.Path, "/api/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	awc, err := h.Svc.GetBySlug(r.Context(), slug)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(awc.Article, awc.Category))
}
