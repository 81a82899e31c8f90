// Package finding provides HTTP handlers for documented findings.
package finding

import (
	"net/http"

	findUC "osint-tracker/internal/usecase/finding"
)

// Register registers all finding-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *findUC.Service) {
	mux.Handle("GET    /api/findings", ListHandler{svc})
	mux.Handle("POST   /api/findings", CreateHandler{svc})

	mux.Handle("GET    /api/findings/", GetHandler{svc})
	mux.Handle("PUT    /api/findings/", UpdateHandler{svc})
	mux.Handle("DELETE /api/findings/", DeleteHandler{svc})
}
