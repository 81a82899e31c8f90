package finding_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"osint-tracker/internal/domain/entity"
	"osint-tracker/internal/handler/http/finding"
	"osint-tracker/internal/repository"
	findUC "osint-tracker/internal/usecase/finding"
)

type stubFindingRepo struct {
	getResult   *entity.Finding
	listResult  []*entity.Finding
	lastFilter  repository.FindingFilter
	createID    int64
	lastCreated *entity.Finding
	lastUpdated *entity.Finding
	deleteErr   error
}

func (s *stubFindingRepo) Get(_ context.Context, _ int64) (*entity.Finding, error) {
	return s.getResult, nil
}

func (s *stubFindingRepo) List(_ context.Context, filter repository.FindingFilter) ([]*entity.Finding, error) {
	s.lastFilter = filter
	return s.listResult, nil
}

func (s *stubFindingRepo) Create(_ context.Context, f *entity.Finding) (int64, error) {
	s.lastCreated = f
	return s.createID, nil
}

func (s *stubFindingRepo) Update(_ context.Context, f *entity.Finding) error {
	s.lastUpdated = f
	return nil
}

func (s *stubFindingRepo) Delete(_ context.Context, _ int64) error { return s.deleteErr }

func svcWith(stub *stubFindingRepo) *findUC.Service {
	return &findUC.Service{Repo: stub}
}

func TestCreateHandler_Success(t *testing.T) {
	stub := &stubFindingRepo{createID: 4}
	handler := finding.CreateHandler{Svc: svcWith(stub)}

	body := `{
		"title": "SDN list match",
		"finding_type": "Sanctions",
		"source_url": "https://www.opensanctions.org/entities/X1",
		"tags": ["IRGC", "banking", "IRGC"],
		"subject_id": 5
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/findings", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	var got finding.DTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 4 {
		t.Errorf("ID = %d, want 4", got.ID)
	}
	if got.Importance != "Medium" {
		t.Errorf("Importance = %q, want default Medium", got.Importance)
	}
	// Order and duplicates survive untouched
	if !reflect.DeepEqual(got.Tags, []string{"IRGC", "banking", "IRGC"}) {
		t.Errorf("Tags = %v", got.Tags)
	}
	if got.SubjectID == nil || *got.SubjectID != 5 {
		t.Errorf("SubjectID = %v, want 5", got.SubjectID)
	}
}

func TestCreateHandler_MissingTitle(t *testing.T) {
	handler := finding.CreateHandler{Svc: svcWith(&stubFindingRepo{})}

	req := httptest.NewRequest(http.MethodPost, "/api/findings",
		strings.NewReader(`{"finding_type": "Sanctions"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCreateHandler_InvalidSourceURL(t *testing.T) {
	handler := finding.CreateHandler{Svc: svcWith(&stubFindingRepo{})}

	body := `{"title": "x", "finding_type": "Media", "source_url": "ftp://example.com/file"}`
	req := httptest.NewRequest(http.MethodPost, "/api/findings", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestListHandler_Filters(t *testing.T) {
	stub := &stubFindingRepo{}
	handler := finding.ListHandler{Svc: svcWith(stub)}

	req := httptest.NewRequest(http.MethodGet, "/api/findings?finding_type=Sanctions&importance=High", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	if stub.lastFilter.FindingType == nil || *stub.lastFilter.FindingType != "Sanctions" {
		t.Errorf("finding_type filter = %v", stub.lastFilter.FindingType)
	}
	if stub.lastFilter.Importance == nil || *stub.lastFilter.Importance != "High" {
		t.Errorf("importance filter = %v", stub.lastFilter.Importance)
	}
}

func TestGetHandler_Success(t *testing.T) {
	subjectID := int64(5)
	stub := &stubFindingRepo{
		getResult: &entity.Finding{
			ID:          4,
			Title:       "SDN list match",
			FindingType: "Sanctions",
			Importance:  "High",
			Tags:        []string{"IRGC"},
			SubjectID:   &subjectID,
			CreatedAt:   time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
	}
	handler := finding.GetHandler{Svc: svcWith(stub)}

	req := httptest.NewRequest(http.MethodGet, "/api/findings/4", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	var got finding.DTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Title != "SDN list match" || got.FindingType != "Sanctions" {
		t.Errorf("DTO = %+v", got)
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	handler := finding.GetHandler{Svc: svcWith(&stubFindingRepo{})}

	req := httptest.NewRequest(http.MethodGet, "/api/findings/99", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status code = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestUpdateHandler_ReplacesTags(t *testing.T) {
	stub := &stubFindingRepo{
		getResult: &entity.Finding{
			ID:          4,
			Title:       "SDN list match",
			FindingType: "Sanctions",
			Importance:  "High",
			Tags:        []string{"old", "tags"},
		},
	}
	handler := finding.UpdateHandler{Svc: svcWith(stub)}

	req := httptest.NewRequest(http.MethodPut, "/api/findings/4",
		strings.NewReader(`{"tags": ["fresh"]}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	if !reflect.DeepEqual(stub.lastUpdated.Tags, []string{"fresh"}) {
		t.Errorf("Tags = %v, want wholesale replacement", stub.lastUpdated.Tags)
	}
	if stub.lastUpdated.Title != "SDN list match" {
		t.Errorf("Title = %q, absent fields must be retained", stub.lastUpdated.Title)
	}
}

func TestDeleteHandler(t *testing.T) {
	handler := finding.DeleteHandler{Svc: svcWith(&stubFindingRepo{})}

	req := httptest.NewRequest(http.MethodDelete, "/api/findings/4", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("status code = %d, want %d", rr.Code, http.StatusNoContent)
	}
}
