package finding

import (
	"net/http"

	"osint-tracker/internal/handler/http/respond"
	findUC "osint-tracker/internal/usecase/finding"
)

type ListHandler struct{ Svc *findUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in findUC.ListInput
	q := r.URL.Query()
	if ft := q.Get("finding_type"); ft != "" {
		in.FindingType = &ft
	}
	if imp := q.Get("importance"); imp != "" {
		in.Importance = &imp
	}

	list, err := h.Svc.List(r.Context(), in)
	if err != nil {
		respond.Failure(w, err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, f := range list {
		out = append(out, toDTO(f))
	}
	respond.JSON(w, http.StatusOK, out)
}
