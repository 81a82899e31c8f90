package finding

import (
	"encoding/json"
	"net/http"

	"osint-tracker/internal/handler/http/pathutil"
	"osint-tracker/internal/handler/http/respond"
	findUC "osint-tracker/internal/usecase/finding"
)

type UpdateHandler struct{ Svc *findUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/findings/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	// Absent fields keep their stored value; tags replace the stored
	// list wholesale when supplied.
	var req struct {
		Title       *string  `json:"title"`
		FindingType *string  `json:"finding_type"`
		Description *string  `json:"description"`
		SourceURL   *string  `json:"source_url"`
		SourceName  *string  `json:"source_name"`
		Importance  *string  `json:"importance"`
		Tags        []string `json:"tags"`
		SubjectID   *int64   `json:"subject_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	finding, err := h.Svc.Update(r.Context(), findUC.UpdateInput{
		ID:          id,
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
	respond.JSON(w, http.StatusOK, toDTO(finding))
}
