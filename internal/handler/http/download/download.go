// Package download serves static document downloads such as legal form
// templates. Filenames are reduced to their base name so requests
// cannot escape the configured directory.
package download

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"lawportal/internal/handler/http/respond"
)

type Handler struct {
	// Dir is the directory holding downloadable files.
	Dir string
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/api/download/")
	if name == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid filename"))
		return
	}

	// Base strips any directory components, so "../../etc/passwd"
	// collapses to "passwd".
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid filename"))
		return
	}

	path := filepath.Join(h.Dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		respond.SafeError(w, http.StatusNotFound, errors.New("file not found"))
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, path)
}

// Register registers the download handler with the given mux.
func Register(mux *http.ServeMux, dir string) {
	mux.Handle("GET /api/download/", Handler{Dir: dir})
}
