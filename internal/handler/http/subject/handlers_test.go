package subject_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"osint-tracker/internal/domain/entity"
	"osint-tracker/internal/handler/http/subject"
	"osint-tracker/internal/repository"
	subjUC "osint-tracker/internal/usecase/subject"
)

type stubSubjectRepo struct {
	getResult   *entity.Subject
	getErr      error
	listResult  []*entity.Subject
	listErr     error
	lastFilter  repository.SubjectFilter
	createID    int64
	createErr   error
	lastCreated *entity.Subject
	updateErr   error
	lastUpdated *entity.Subject
	deleteErr   error
	deletedID   int64
}

func (s *stubSubjectRepo) Get(_ context.Context, _ int64) (*entity.Subject, error) {
	return s.getResult, s.getErr
}

func (s *stubSubjectRepo) List(_ context.Context, filter repository.SubjectFilter) ([]*entity.Subject, error) {
	s.lastFilter = filter
	return s.listResult, s.listErr
}

func (s *stubSubjectRepo) Create(_ context.Context, subj *entity.Subject) (int64, error) {
	s.lastCreated = subj
	return s.createID, s.createErr
}

func (s *stubSubjectRepo) Update(_ context.Context, subj *entity.Subject) error {
	s.lastUpdated = subj
	return s.updateErr
}

func (s *stubSubjectRepo) Delete(_ context.Context, id int64) error {
	s.deletedID = id
	return s.deleteErr
}

func svcWith(stub *stubSubjectRepo) *subjUC.Service {
	return &subjUC.Service{Repo: stub}
}

func TestListHandler_Success(t *testing.T) {
	stub := &stubSubjectRepo{
		listResult: []*entity.Subject{
			{
				ID:        2,
				NameEN:    "Ali Rezaei",
				Status:    entity.StatusInvestigating,
				RiskLevel: entity.RiskHigh,
				CreatedAt: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
			},
			{
				ID:        1,
				NameEN:    "Sara Karimi",
				Status:    entity.StatusNew,
				RiskLevel: entity.RiskUnknown,
				CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
			},
		},
	}
	handler := subject.ListHandler{Svc: svcWith(stub)}

	req := httptest.NewRequest(http.MethodGet, "/api/subjects", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var got []subject.DTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != 2 || got[0].NameEN != "Ali Rezaei" || got[0].Status != "Investigating" {
		t.Errorf("first DTO = %+v", got[0])
	}
}

func TestListHandler_StatusFilter(t *testing.T) {
	stub := &stubSubjectRepo{}
	handler := subject.ListHandler{Svc: svcWith(stub)}

	req := httptest.NewRequest(http.MethodGet, "/api/subjects?status=New", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	if stub.lastFilter.Status == nil || *stub.lastFilter.Status != entity.StatusNew {
		t.Errorf("filter status = %v, want New", stub.lastFilter.Status)
	}
}

func TestListHandler_InvalidFilterRejected(t *testing.T) {
	stub := &stubSubjectRepo{}
	handler := subject.ListHandler{Svc: svcWith(stub)}

	req := httptest.NewRequest(http.MethodGet, "/api/subjects?risk_level=Extreme", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestGetHandler_Success(t *testing.T) {
	stub := &stubSubjectRepo{
		getResult: &entity.Subject{
			ID:        5,
			NameEN:    "Ali Rezaei",
			Status:    entity.StatusNew,
			RiskLevel: entity.RiskUnknown,
			CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
	}
	handler := subject.GetHandler{Svc: svcWith(stub)}

	req := httptest.NewRequest(http.MethodGet, "/api/subjects/5", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var got subject.DTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 5 || got.NameEN != "Ali Rezaei" {
		t.Errorf("DTO = %+v", got)
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	handler := subject.GetHandler{Svc: svcWith(&stubSubjectRepo{})}

	req := httptest.NewRequest(http.MethodGet, "/api/subjects/99", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status code = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestGetHandler_InvalidID(t *testing.T) {
	handler := subject.GetHandler{Svc: svcWith(&stubSubjectRepo{})}

	req := httptest.NewRequest(http.MethodGet, "/api/subjects/abc", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCreateHandler_Success(t *testing.T) {
	stub := &stubSubjectRepo{createID: 7}
	handler := subject.CreateHandler{Svc: svcWith(stub)}

	body := `{
		"name_en": "Ali Rezaei",
		"name_fa": "علی رضایی",
		"location": "Tehran",
		"event_context": "November protests"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/subjects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	var got subject.DTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 7 {
		t.Errorf("ID = %d, want 7", got.ID)
	}
	if got.Status != "New" || got.RiskLevel != "Unknown" {
		t.Errorf("defaults = %s/%s, want New/Unknown", got.Status, got.RiskLevel)
	}
	if stub.lastCreated.NameFA != "علی رضایی" {
		t.Errorf("NameFA = %q", stub.lastCreated.NameFA)
	}
}

func TestCreateHandler_MissingName(t *testing.T) {
	handler := subject.CreateHandler{Svc: svcWith(&stubSubjectRepo{})}

	req := httptest.NewRequest(http.MethodPost, "/api/subjects", strings.NewReader(`{"location":"Tehran"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCreateHandler_MalformedJSON(t *testing.T) {
	handler := subject.CreateHandler{Svc: svcWith(&stubSubjectRepo{})}

	req := httptest.NewRequest(http.MethodPost, "/api/subjects", strings.NewReader(`{"name_en":`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestUpdateHandler_Success(t *testing.T) {
	stub := &stubSubjectRepo{
		getResult: &entity.Subject{
			ID:        5,
			NameEN:    "Ali Rezaei",
			Status:    entity.StatusNew,
			RiskLevel: entity.RiskUnknown,
			CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
	}
	handler := subject.UpdateHandler{Svc: svcWith(stub)}

	body := `{"status": "Verified", "risk_level": "High"}`
	req := httptest.NewRequest(http.MethodPut, "/api/subjects/5", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var got subject.DTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != "Verified" || got.RiskLevel != "High" {
		t.Errorf("updated = %s/%s, want Verified/High", got.Status, got.RiskLevel)
	}
	if stub.lastUpdated == nil {
		t.Fatal("expected a repository update")
	}
}

func TestUpdateHandler_InvalidEnum(t *testing.T) {
	stub := &stubSubjectRepo{
		getResult: &entity.Subject{ID: 5, NameEN: "Ali Rezaei", Status: entity.StatusNew, RiskLevel: entity.RiskUnknown},
	}
	handler := subject.UpdateHandler{Svc: svcWith(stub)}

	req := httptest.NewRequest(http.MethodPut, "/api/subjects/5", strings.NewReader(`{"status":"Closed"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if stub.lastUpdated != nil {
		t.Error("invalid enum must not reach the repository")
	}
}

func TestUpdateHandler_NotFound(t *testing.T) {
	handler := subject.UpdateHandler{Svc: svcWith(&stubSubjectRepo{})}

	req := httptest.NewRequest(http.MethodPut, "/api/subjects/99", strings.NewReader(`{"notes":"x"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status code = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestDeleteHandler_Success(t *testing.T) {
	stub := &stubSubjectRepo{}
	handler := subject.DeleteHandler{Svc: svcWith(stub)}

	req := httptest.NewRequest(http.MethodDelete, "/api/subjects/5", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("status code = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if stub.deletedID != 5 {
		t.Errorf("deleted ID = %d, want 5", stub.deletedID)
	}
}

func TestDeleteHandler_NotFound(t *testing.T) {
	stub := &stubSubjectRepo{deleteErr: entity.ErrNotFound}
	handler := subject.DeleteHandler{Svc: svcWith(stub)}

	req := httptest.NewRequest(http.MethodDelete, "/api/subjects/99", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status code = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
