package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kozaktomas/content-planner/internal/planner"
)

// HistoryHandler serves the session generation log and its exports.
type HistoryHandler struct {
	history *planner.History
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(history *planner.History) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// List returns all history entries, newest first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"entries": h.history.List()})
}

// Get returns a single history entry.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry := h.history.Get(chi.URLParam(r, "id"))
	if entry == nil {
		respondError(w, http.StatusNotFound, "history entry not found")
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// Delete removes a history entry.
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.history.Delete(chi.URLParam(r, "id")) {
		respondError(w, http.StatusNotFound, "history entry not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// Export downloads an entry as plain text, CSV, or JSON.
// The format query parameter defaults to txt.
func (h *HistoryHandler) Export(w http.ResponseWriter, r *http.Request) {
	entry := h.history.Get(chi.URLParam(r, "id"))
	if entry == nil {
		respondError(w, http.StatusNotFound, "history entry not found")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "txt"
	}

	var data []byte
	var contentType string
	var err error

	switch format {
	case "txt":
		data = planner.ExportText(entry.Content)
		contentType = "text/plain; charset=utf-8"
	case "csv":
		data, err = planner.ExportCSV(entry.Content)
		contentType = "text/csv; charset=utf-8"
	case "json":
		data, err = planner.ExportJSON(entry)
		contentType = "application/json"
	default:
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unsupported export format: %s", format))
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := planner.ExportFilename(entry.Request.Niche, format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
