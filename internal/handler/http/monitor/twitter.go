// Package monitor provides HTTP handlers for the two capped watch lists.
package monitor

import (
	"encoding/json"
	"errors"
	"net/http"

	"osint-tracker/internal/handler/http/pathutil"
	"osint-tracker/internal/handler/http/respond"
	monUC "osint-tracker/internal/usecase/monitor"
)

type ListTwitterHandler struct{ Svc *monUC.Service }

func (h ListTwitterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListTwitter(r.Context())
	if err != nil {
		respond.Failure(w, err)
		return
	}
	out := make([]TwitterDTO, 0, len(list))
	for _, a := range list {
		out = append(out, toTwitterDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}

type AddTwitterHandler struct{ Svc *monUC.Service }

func (h AddTwitterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username    string `json:"username"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	account, err := h.Svc.AddTwitter(r.Context(), monUC.AddTwitterInput{
		Username:    req.Username,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, monUC.ErrDuplicateAccount) {
			respond.SafeError(w, http.StatusConflict, err)
			return
		}
		respond.Failure(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toTwitterDTO(account))
}

type UpdateTwitterHandler struct{ Svc *monUC.Service }

func (h UpdateTwitterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/monitor/twitter/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	account, err := h.Svc.UpdateTwitter(r.Context(), id, req.Description)
	if err != nil {
		respond.Failure(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toTwitterDTO(account))
}

type DeleteTwitterHandler struct{ Svc *monUC.Service }

func (h DeleteTwitterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/monitor/twitter/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.DeleteTwitter(r.Context(), id); err != nil {
		respond.Failure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
