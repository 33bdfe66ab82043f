package article

import (
	"errors"
	"net/http"
	"strconv"

	"lawportal/internal/domain/entity"
	"lawportal/internal/handler/http/respond"
	artUC "lawportal/internal/usecase/article"
)

// defaultRecentLimit is used when the limit query parameter is absent.
const defaultRecentLimit = 3

type RecentHandler struct{ Svc artUC.Service }

func (h RecentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest, errors.New("limit: must be an integer"))
			return
		}
		limit = parsed
	}

	articles, err := h.Svc.Recent(r.Context(), limit)
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
