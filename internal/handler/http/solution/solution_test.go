package solution_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lawportal/internal/handler/http/solution"
	"lawportal/internal/infra/adapter/persistence/memory"
	solUC "lawportal/internal/usecase/solution"
)

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	solution.Register(mux, solUC.Service{Store: memory.NewStore()})
	return mux
}

func TestList(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/solutions", nil)
	rr := httptest.NewRecorder()
	newMux().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got []solution.DTO
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Title != "Document Review" {
		t.Errorf("first title = %q", got[0].Title)
	}
}

func TestCreate(t *testing.T) {
	body := `{"title":"Mediation","description":"Out-of-court settlement.","link":"/services/mediation","linkText":"Learn more"}`
	req := httptest.NewRequest(http.MethodPost, "/api/solutions", strings.NewReader(body))
	rr := httptest.NewRecorder()
	newMux().ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rr.Code, rr.Body.String())
	}
	var created solution.DTO
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != 4 {
		t.Errorf("id = %d, want 4", created.ID)
	}
}

func TestCreate_Validation(t *testing.T) {
	body := `{"title":"","description":"d","link":"/x","linkText":"t"}`
	req := httptest.NewRequest(http.MethodPost, "/api/solutions", strings.NewReader(body))
	rr := httptest.NewRecorder()
	newMux().ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}
