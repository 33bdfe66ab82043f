package category_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lawportal/internal/handler/http/category"
	"lawportal/internal/infra/adapter/persistence/memory"
	catUC "lawportal/internal/usecase/category"
)

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	category.Register(mux, catUC.Service{Store: memory.NewStore()})
	return mux
}

func TestList(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rr := httptest.NewRecorder()
	newMux().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got []category.DTO
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if got[0].Slug != "labor-law" {
		t.Errorf("first slug = %q", got[0].Slug)
	}
}

func TestGetBySlug(t *testing.T) {
	mux := newMux()

	req := httptest.NewRequest(http.MethodGet, "/api/categories/family-law", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got category.DTO
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "Family Law" {
		t.Errorf("name = %q", got.Name)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/categories/maritime-law", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("missing slug status = %d, want 404", rr.Code)
	}
}

func TestCreate(t *testing.T) {
	mux := newMux()

	body := `{"name":"Housing Law","slug":"housing-law","description":"Tenancy and eviction."}`
	req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(body))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rr.Code, rr.Body.String())
	}
	var created category.DTO
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != 5 {
		t.Errorf("id = %d, want 5", created.ID)
	}
}

func TestCreate_DuplicateSlug(t *testing.T) {
	body := `{"name":"Labor","slug":"labor-law"}`
	req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(body))
	rr := httptest.NewRecorder()
	newMux().ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rr.Code)
	}
}

func TestCreate_Validation(t *testing.T) {
	mux := newMux()

	for name, body := range map[string]string{
		"missing name": `{"slug":"x-y"}`,
		"invalid slug": `{"name":"X","slug":"UPPER"}`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rr.Code)
			}
		})
	}
}
