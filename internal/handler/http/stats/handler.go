// Package stats provides the HTTP handler for the subject summary.
package stats

import (
	"net/http"

	"osint-tracker/internal/handler/http/respond"
	statsUC "osint-tracker/internal/usecase/stats"
)

// Handler serves the aggregated subject counts.
// GET /api/stats
type Handler struct{ Svc *statsUC.Service }

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Svc.Compute(r.Context())
	if err != nil {
		respond.Failure(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, summary)
}

// Register registers the stats handler with the given mux.
func Register(mux *http.ServeMux, svc *statsUC.Service) {
	mux.Handle("GET    /api/stats", Handler{svc})
}
