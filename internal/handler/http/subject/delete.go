package subject

import (
	"net/http"

	"osint-tracker/internal/handler/http/pathutil"
	"osint-tracker/internal/handler/http/respond"
	subjUC "osint-tracker/internal/usecase/subject"
)

type DeleteHandler struct{ Svc *subjUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/subjects/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.Failure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
