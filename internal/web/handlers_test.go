package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fermworks/plantimport/internal/config"
	"github.com/fermworks/plantimport/internal/core"
)

// stubStore satisfies core.Store for handler tests that never reach a real
// write path. It can hold one recipe so the utility path gets past its
// recipe lookup.
type stubStore struct {
	recipe *core.Recipe
}

func (stubStore) FindEquipmentByTag(context.Context, string) (*core.Equipment, error) {
	return nil, nil
}

func (stubStore) FindEquipmentByName(context.Context, string) (*core.Equipment, error) {
	return nil, nil
}

func (stubStore) CreateEquipment(context.Context, core.EquipmentFields) (*core.Equipment, error) {
	return nil, fmt.Errorf("unexpected create")
}

func (stubStore) UpdateEquipment(context.Context, uuid.UUID, core.EquipmentFields) (*core.Equipment, error) {
	return nil, fmt.Errorf("unexpected update")
}

func (s stubStore) GetRecipeWithSteps(_ context.Context, id uuid.UUID) (*core.Recipe, error) {
	if s.recipe != nil && s.recipe.ID == id {
		return s.recipe, nil
	}
	return nil, nil
}

func (stubStore) UpdateRecipeStep(context.Context, uuid.UUID, core.StepRequirements) (*core.RecipeStep, error) {
	return nil, fmt.Errorf("unexpected step update")
}

func newTestServer(st core.Store) *Server {
	cfg := &config.Config{}
	cfg.Server.RequestTimeout = 5 * time.Second
	cfg.Import.MaxFileSize = 1 << 20
	return NewServer(core.NewService(st, nil), cfg)
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestHandleImportEquipment_MalformedTableIsBadRequest(t *testing.T) {
	s := newTestServer(stubStore{})

	// No recognizable column headers: client data problem, not a server fault.
	rec := doRequest(s, http.MethodPost, "/api/import/equipment", "foo,bar\n1,2\n")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Code != "FILE001" {
		t.Errorf("code = %q, want FILE001", resp.Code)
	}
}

func TestHandleImportUtilities_MalformedTableIsBadRequest(t *testing.T) {
	recipe := &core.Recipe{ID: uuid.New(), Name: "Batch A"}
	s := newTestServer(stubStore{recipe: recipe})

	path := "/api/import/utilities/" + recipe.ID.String()
	rec := doRequest(s, http.MethodPost, path, "foo,bar\n1,2\n")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleImportUtilities_UnknownRecipeIsNotFound(t *testing.T) {
	s := newTestServer(stubStore{})

	path := "/api/import/utilities/" + uuid.NewString()
	rec := doRequest(s, http.MethodPost, path, "Step,Steam Required\nHeating,2\n")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleImportUtilities_InvalidRecipeID(t *testing.T) {
	s := newTestServer(stubStore{})

	rec := doRequest(s, http.MethodPost, "/api/import/utilities/not-a-uuid", "Step\nHeating\n")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
