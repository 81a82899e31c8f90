// Package contact provides HTTP handlers for user-added contact records.
package contact

import (
	"encoding/json"
	"net/http"
	"time"

	"osint-tracker/internal/domain/entity"
	"osint-tracker/internal/handler/http/pathutil"
	"osint-tracker/internal/handler/http/respond"
	contactUC "osint-tracker/internal/usecase/contact"
)

type DTO struct {
	ID          int64     `json:"id"`
	Label       string    `json:"label"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDTO(c *entity.Contact) DTO {
	return DTO{
		ID:          c.ID,
		Label:       c.Label,
		Value:       c.Value,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

type ListHandler struct{ Svc *contactUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Failure(w, err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, c := range list {
		out = append(out, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, out)
}

type CreateHandler struct{ Svc *contactUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label       string `json:"label"`
		Value       string `json:"value"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	contact, err := h.Svc.Create(r.Context(), contactUC.CreateInput{
		Label:       req.Label,
		Value:       req.Value,
		Description: req.Description,
	})
	if err != nil {
		respond.Failure(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(contact))
}

type UpdateHandler struct{ Svc *contactUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/contacts/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Label       *string `json:"label"`
		Value       *string `json:"value"`
		Description *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	contact, err := h.Svc.Update(r.Context(), contactUC.UpdateInput{
		ID:          id,
		Label:       req.Label,
		Value:       req.Value,
		Description: req.Description,
	})
	if err != nil {
		respond.Failure(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(contact))
}

type DeleteHandler struct{ Svc *contactUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/contacts/")
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

// Register registers all contact-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *contactUC.Service) {
	mux.Handle("GET    /api/contacts", ListHandler{svc})
	mux.Handle("POST   /api/contacts", CreateHandler{svc})

	mux.Handle("PUT    /api/contacts/", UpdateHandler{svc})
	mux.Handle("DELETE /api/contacts/", DeleteHandler{svc})
}
