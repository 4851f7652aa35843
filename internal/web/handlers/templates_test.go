package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/content-planner/internal/planner"
)

func TestTemplatesSaveAndGet(t *testing.T) {
	store := planner.NewTemplateStore()
	h := NewTemplatesHandler(store)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/templates/weekly", bytes.NewReader([]byte(`{"body":"Plan for {niche}."}`)))
	req = requestWithChiParams(req, map[string]string{"name": "weekly"})
	rec := httptest.NewRecorder()
	h.Save(rec, req)
	assertStatusCode(t, rec, http.StatusOK)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/templates/weekly", nil)
	req = requestWithChiParams(req, map[string]string{"name": "weekly"})
	rec = httptest.NewRecorder()
	h.Get(rec, req)
	assertStatusCode(t, rec, http.StatusOK)

	var info TemplateInfo
	parseJSONResponse(t, rec, &info)
	if info.Name != "weekly" || info.Body != "Plan for {niche}." {
		t.Errorf("unexpected template: %+v", info)
	}
}

func TestTemplatesSaveInvalidBody(t *testing.T) {
	h := NewTemplatesHandler(planner.NewTemplateStore())

	req := httptest.NewRequest(http.MethodPut, "/api/v1/templates/weekly", bytes.NewReader([]byte("{broken")))
	req = requestWithChiParams(req, map[string]string{"name": "weekly"})
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	assertStatusCode(t, rec, http.StatusBadRequest)
	assertJSONError(t, rec, errInvalidRequestBody)
}

func TestTemplatesSaveEmptyBody(t *testing.T) {
	h := NewTemplatesHandler(planner.NewTemplateStore())

	req := httptest.NewRequest(http.MethodPut, "/api/v1/templates/weekly", bytes.NewReader([]byte(`{"body":""}`)))
	req = requestWithChiParams(req, map[string]string{"name": "weekly"})
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	assertStatusCode(t, rec, http.StatusBadRequest)
}

func TestTemplatesList(t *testing.T) {
	store := planner.NewTemplateStore()
	if err := store.Save("b-template", "B"); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("a-template", "A"); err != nil {
		t.Fatal(err)
	}
	h := NewTemplatesHandler(store)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil))
	assertStatusCode(t, rec, http.StatusOK)

	var resp struct {
		Templates []TemplateInfo `json:"templates"`
	}
	parseJSONResponse(t, rec, &resp)
	if len(resp.Templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(resp.Templates))
	}
	// List is sorted by name.
	if resp.Templates[0].Name != "a-template" || resp.Templates[1].Name != "b-template" {
		t.Errorf("unexpected order: %+v", resp.Templates)
	}
}

func TestTemplatesDelete(t *testing.T) {
	store := planner.NewTemplateStore()
	if err := store.Save("weekly", "Plan for {niche}."); err != nil {
		t.Fatal(err)
	}
	h := NewTemplatesHandler(store)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/templates/weekly", nil)
	req = requestWithChiParams(req, map[string]string{"name": "weekly"})
	rec := httptest.NewRecorder()
	h.Delete(rec, req)
	assertStatusCode(t, rec, http.StatusOK)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/templates/weekly", nil)
	req = requestWithChiParams(req, map[string]string{"name": "weekly"})
	rec = httptest.NewRecorder()
	h.Delete(rec, req)
	assertStatusCode(t, rec, http.StatusNotFound)
}

func TestTemplatesGetMissing(t *testing.T) {
	h := NewTemplatesHandler(planner.NewTemplateStore())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates/nope", nil)
	req = requestWithChiParams(req, map[string]string{"name": "nope"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)
	assertStatusCode(t, rec, http.StatusNotFound)
}
