package finding

import (
	"encoding/json"
	"net/http"

	"osint-tracker/internal/handler/http/respond"
	findUC "osint-tracker/internal/usecase/finding"
)

type CreateHandler struct{ Svc *findUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string   `json:"title"`
		FindingType string   `json:"finding_type"`
		Description string   `json:"description"`
		SourceURL   string   `json:"source_url"`
		SourceName  string   `json:"source_name"`
		Importance  string   `json:"importance"`
		Tags        []string `json:"tags"`
		SubjectID   *int64   `json:"subject_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	finding, err := h.Svc.Create(r.Context(), findUC.CreateInput{
		Title:       req.Title,
		FindingType: req.FindingType,
		Description: req.Description,
		SourceURL:   req.SourceURL,
		SourceName:  req.SourceName,
		Importance:  req.Importance,
		Tags:        req.Tags,
		SubjectID:   req.SubjectID,
	})
	if err != nil {
		respond.Failure(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(finding))
}
