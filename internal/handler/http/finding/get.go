package finding

import (
	"net/http"

	"osint-tracker/internal/handler/http/pathutil"
	"osint-tracker/internal/handler/http/respond"
	findUC "osint-tracker/internal/usecase/finding"
)

type GetHandler struct{ Svc *findUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/findings/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	finding, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Failure(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(finding))
}
