package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kozaktomas/content-planner/internal/planner"
)

// TemplatesHandler manages the session prompt template library.
type TemplatesHandler struct {
	store *planner.TemplateStore
}

// NewTemplatesHandler creates a new templates handler.
func NewTemplatesHandler(store *planner.TemplateStore) *TemplatesHandler {
	return &TemplatesHandler{store: store}
}

// TemplateInfo represents one stored template.
type TemplateInfo struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// List returns all templates in name order.
func (h *TemplatesHandler) List(w http.ResponseWriter, r *http.Request) {
	names := h.store.List()
	templates := make([]TemplateInfo, 0, len(names))
	for _, name := range names {
		if body, ok := h.store.Get(name); ok {
			templates = append(templates, TemplateInfo{Name: name, Body: body})
		}
	}
	respondJSON(w, http.StatusOK, map[string]any{"templates": templates})
}

// Get returns a single template.
func (h *TemplatesHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	body, ok := h.store.Get(name)
	if !ok {
		respondError(w, http.StatusNotFound, "template not found")
		return
	}
	respondJSON(w, http.StatusOK, TemplateInfo{Name: name, Body: body})
}

// Save stores or replaces a template.
func (h *TemplatesHandler) Save(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req struct {
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	if err := h.store.Save(name, req.Body); err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, TemplateInfo{Name: name, Body: req.Body})
}

// Delete removes a template.
func (h *TemplatesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !h.store.Delete(name) {
		respondError(w, http.StatusNotFound, "template not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
