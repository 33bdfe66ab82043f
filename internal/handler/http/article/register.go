package article

import (
	"net/http"

	artUC "lawportal/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// Exact patterns (featured, recent, search) take precedence over the
// trailing-slash slug route per ServeMux matching rules.
func Register(mux *http.ServeMux, svc artUC.Service) {
	mux.Handle("GET /api/articles", ListHandler{svc})
	mux.Handle("GET /api/articles/featured", FeaturedHandler{svc})
	mux.Handle("GET /api/articles/recent", RecentHandler{svc})
	mux.Handle("GET /api/articles/search", SearchHandler{svc})
	mux.Handle("GET /api/articles/category/", ByCategoryHandler{svc})
	mux.Handle("GET /api/articles/", GetHandler{svc})

	mux.Handle("POST /api/articles", CreateHandler{svc})
	mux.Handle("DELETE /api/articles/", DeleteHandler{svc})
}
