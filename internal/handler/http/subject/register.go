package subject

import (
	"net/http"

	subjUC "osint-tracker/internal/usecase/subject"
)

// Register registers all subject-related HTTP handlers with the given mux.
// It sets up routes for listing, reading, creating, updating, and deleting
// investigation subjects.
func Register(mux *http.ServeMux, svc *subjUC.Service) {
	mux.Handle("GET    /api/subjects", ListHandler{svc})
	mux.Handle("POST   /api/subjects", CreateHandler{svc})

	mux.Handle("GET    /api/subjects/", GetHandler{svc})
	mux.Handle("PUT    /api/subjects/", UpdateHandler{svc})
	mux.Handle("DELETE /api/subjects/", DeleteHandler{svc})
}
