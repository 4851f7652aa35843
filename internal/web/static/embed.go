package static

import (
	"embed"
	"net/http"
)

//go:embed index.html
var pages embed.FS

// Index serves the embedded dashboard page.
func Index(w http.ResponseWriter, r *http.Request) {
	data, err := pages.ReadFile("index.html")
	if err != nil {
		http.Error(w, "dashboard page not available", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
