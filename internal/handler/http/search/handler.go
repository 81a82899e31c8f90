// Package search provides the HTTP handler for search URL generation.
package search

import (
	"net/http"

	"osint-tracker/internal/handler/http/respond"
	"osint-tracker/internal/observability/metrics"
	"osint-tracker/internal/search"
)

// Handler generates the search link bundle for a subject name.
// GET /api/search?name=...&name_fa=...
type Handler struct{}

type response struct {
	Links []search.Link `json:"links"`
}

func (Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	links, err := search.Generate(q.Get("name"), q.Get("name_fa"))
	if err != nil {
		respond.Failure(w, err)
		return
	}

	metrics.RecordSearchBundleGenerated()
	respond.JSON(w, http.StatusOK, response{Links: links})
}

// Register registers the search handler, wrapped in the supplied rate
// limiter middleware.
func Register(mux *http.ServeMux, limit func(http.Handler) http.Handler) {
	mux.Handle("GET    /api/search", limit(Handler{}))
}
