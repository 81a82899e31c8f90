package subject

import (
	"encoding/json"
	"net/http"

	"osint-tracker/internal/handler/http/pathutil"
	"osint-tracker/internal/handler/http/respond"
	subjUC "osint-tracker/internal/usecase/subject"
)

type UpdateHandler struct{ Svc *subjUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/subjects/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	// Absent fields keep their stored value; pointers distinguish
	// "not sent" from "set to empty".
	var req struct {
		Status    *string `json:"status"`
		RiskLevel *string `json:"risk_level"`
		Notes     *string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	subject, err := h.Svc.Update(r.Context(), subjUC.UpdateInput{
		ID:        id,
		Status:    req.Status,
		RiskLevel: req.RiskLevel,
		Notes:     req.Notes,
	})
	if err != nil {
		respond.Failure(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(subject))
}
