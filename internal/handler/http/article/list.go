package article

import (
	"net/http"

	"lawportal/internal/handler/http/respond"
	artUC "lawportal/internal/usecase/article"
)

type ListHandler struct{ Svc artUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
