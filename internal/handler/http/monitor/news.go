package monitor

import (
	"encoding/json"
	"errors"
	"net/http"

	"osint-tracker/internal/handler/http/pathutil"
	"osint-tracker/internal/handler/http/respond"
	monUC "osint-tracker/internal/usecase/monitor"
)

type ListNewsHandler struct{ Svc *monUC.Service }

func (h ListNewsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListNews(r.Context())
	if err != nil {
		respond.Failure(w, err)
		return
	}
	out := make([]NewsDTO, 0, len(list))
	for _, n := range list {
		out = append(out, toNewsDTO(n))
	}
	respond.JSON(w, http.StatusOK, out)
}

type AddNewsHandler struct{ Svc *monUC.Service }

func (h AddNewsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		URL         string `json:"url"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	source, err := h.Svc.AddNews(r.Context(), monUC.AddNewsInput{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, monUC.ErrDuplicateSource) {
			respond.SafeError(w, http.StatusConflict, err)
			return
		}
		respond.Failure(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toNewsDTO(source))
}

type UpdateNewsHandler struct{ Svc *monUC.Service }

func (h UpdateNewsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/monitor/news/")
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

	source, err := h.Svc.UpdateNews(r.Context(), id, req.Description)
	if err != nil {
		respond.Failure(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toNewsDTO(source))
}

type DeleteNewsHandler struct{ Svc *monUC.Service }

func (h DeleteNewsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/monitor/news/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.DeleteNews(r.Context(), id); err != nil {
		respond.Failure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
