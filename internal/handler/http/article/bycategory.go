package article

import (
	"net/http"

	"lawportal/internal/handler/http/pathutil"
	"lawportal/internal/handler/http/respond"
	artUC "lawportal/internal/usecase/article"
)

type ByCategoryHandler struct{ Svc artUC.Service }

func (h ByCategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.ExtractSlug(r.URL.Path, "/api/articles/category/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	// An unknown category slug yields an empty list, not a 404.
	articles, err := h.Svc.ListByCategory(r.Context(), slug)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
