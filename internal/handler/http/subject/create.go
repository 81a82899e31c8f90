package subject

import (
	"encoding/json"
	"net/http"

	"osint-tracker/internal/handler/http/respond"
	subjUC "osint-tracker/internal/usecase/subject"
)

type CreateHandler struct{ Svc *subjUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NameEN       string `json:"name_en"`
		NameFA       string `json:"name_fa"`
		Location     string `json:"location"`
		EventContext string `json:"event_context"`
		Notes        string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	subject, err := h.Svc.Create(r.Context(), subjUC.CreateInput{
		NameEN:       req.NameEN,
		NameFA:       req.NameFA,
		Location:     req.Location,
		EventContext: req.EventContext,
		Notes:        req.Notes,
	})
	if err != nil {
		respond.Failure(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(subject))
}
