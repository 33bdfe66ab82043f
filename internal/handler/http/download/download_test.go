package download_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lawportal/internal/handler/http/download"
)

func newMux(t *testing.T) (*http.ServeMux, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "power-of-attorney.pdf"), []byte("%PDF-1.4 fixture"), 0o600); err != nil {
		t.Fatal(err)
	}

	mux := http.NewServeMux()
	download.Register(mux, dir)
	return mux, dir
}

func get(mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestDownload(t *testing.T) {
	mux, _ := newMux(t)

	rr := get(mux, "/api/download/power-of-attorney.pdf")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, `attachment`) ||
		!strings.Contains(cd, "power-of-attorney.pdf") {
		t.Fatalf("Content-Disposition = %q", cd)
	}
	if !strings.Contains(rr.Body.String(), "%PDF-1.4") {
		t.Fatal("body does not contain file contents")
	}
}

func TestDownload_NotFound(t *testing.T) {
	mux, _ := newMux(t)

	rr := get(mux, "/api/download/missing.pdf")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestDownload_TraversalIsConfined(t *testing.T) {
	mux, dir := newMux(t)

	// Plant a file outside the downloads dir; a traversal attempt must
	// not reach it.
	outside := filepath.Join(filepath.Dir(dir), "secret.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0o600); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(outside) }()

	rr := get(mux, "/api/download/..%2Fsecret.txt")
	if rr.Code == http.StatusOK && strings.Contains(rr.Body.String(), "secret") {
		t.Fatal("traversal escaped the downloads directory")
	}
}
