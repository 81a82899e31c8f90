package monitor

import (
	"net/http"

	monUC "osint-tracker/internal/usecase/monitor"
)

// Register registers the watch-list HTTP handlers with the given mux.
// Both lists share the same shape: list, add, update description, delete.
func Register(mux *http.ServeMux, svc *monUC.Service) {
	mux.Handle("GET    /api/monitor/twitter", ListTwitterHandler{svc})
	mux.Handle("POST   /api/monitor/twitter", AddTwitterHandler{svc})
	mux.Handle("PUT    /api/monitor/twitter/", UpdateTwitterHandler{svc})
	mux.Handle("DELETE /api/monitor/twitter/", DeleteTwitterHandler{svc})

	mux.Handle("GET    /api/monitor/news", ListNewsHandler{svc})
	mux.Handle("POST   /api/monitor/news", AddNewsHandler{svc})
	mux.Handle("PUT    /api/monitor/news/", UpdateNewsHandler{svc})
	mux.Handle("DELETE /api/monitor/news/", DeleteNewsHandler{svc})
}
