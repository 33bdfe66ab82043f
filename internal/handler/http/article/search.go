package article

import (
	"errors"
	"net/http"

	"lawportal/internal/domain/entity"
	"lawportal/internal/handler/http/respond"
	artUC "lawportal/internal/usecase/article"
)

type SearchHandler struct{ Svc artUC.Service }

func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	articles, err := h.Svc.Search(r.Context(), query)
	if err != nil {
		code := http.StatusInternalServerError
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
