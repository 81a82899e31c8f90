package subject

import (
	"net/http"

	"osint-tracker/internal/handler/http/pathutil"
	"osint-tracker/internal/handler/http/respond"
	subjUC "osint-tracker/internal/usecase/subject"
)

type GetHandler struct{ Svc *subjUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/subjects/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	subject, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Failure(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(subject))
}
