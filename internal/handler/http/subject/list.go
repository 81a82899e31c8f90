package subject

import (
	"net/http"

	"osint-tracker/internal/handler/http/respond"
	subjUC "osint-tracker/internal/usecase/subject"
)

type ListHandler struct{ Svc *subjUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in subjUC.ListInput
	q := r.URL.Query()
	if s := q.Get("status"); s != "" {
		in.Status = &s
	}
	if rl := q.Get("risk_level"); rl != "" {
		in.RiskLevel = &rl
	}

	list, err := h.Svc.List(r.Context(), in)
	if err != nil {
		respond.Failure(w, err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, e := range list {
		out = append(out, toDTO(e))
	}
	respond.JSON(w, http.StatusOK, out)
}
