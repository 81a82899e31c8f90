package finding_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"osint-tracker/internal/domain/entity"
	"osint-tracker/internal/repository"
	findUC "osint-tracker/internal/usecase/finding"
)

type stubRepo struct {
	getResult   *entity.Finding
	listResult  []*entity.Finding
	lastFilter  repository.FindingFilter
	createID    int64
	lastCreated *entity.Finding
	lastUpdated *entity.Finding
	deleteErr   error
}

func (s *stubRepo) Get(_ context.Context, _ int64) (*entity.Finding, error) {
	return s.getResult, nil
}

func (s *stubRepo) List(_ context.Context, filter repository.FindingFilter) ([]*entity.Finding, error) {
	s.lastFilter = filter
	return s.listResult, nil
}

func (s *stubRepo) Create(_ context.Context, f *entity.Finding) (int64, error) {
	s.lastCreated = f
	return s.createID, nil
}

func (s *stubRepo) Update(_ context.Context, f *entity.Finding) error {
	s.lastUpdated = f
	return nil
}

func (s *stubRepo) Delete(_ context.Context, _ int64) error { return s.deleteErr }

func TestCreate_DefaultsImportance(t *testing.T) {
	stub := &stubRepo{createID: 1}
	svc := &findUC.Service{Repo: stub}

	finding, err := svc.Create(context.Background(), findUC.CreateInput{
		Title:       "SDN list match",
		FindingType: "Sanctions",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if finding.Importance != entity.DefaultImportance {
		t.Errorf("Importance = %q, want %q", finding.Importance, entity.DefaultImportance)
	}
}

func TestCreate_KeepsExplicitImportance(t *testing.T) {
	stub := &stubRepo{createID: 1}
	svc := &findUC.Service{Repo: stub}

	finding, err := svc.Create(context.Background(), findUC.CreateInput{
		Title:       "SDN list match",
		FindingType: "Sanctions",
		Importance:  "Critical",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if finding.Importance != "Critical" {
		t.Errorf("Importance = %q, want Critical", finding.Importance)
	}
}

func TestCreate_TagsSurviveUntouched(t *testing.T) {
	stub := &stubRepo{createID: 1}
	svc := &findUC.Service{Repo: stub}

	tags := []string{"IRGC", "banking", "IRGC"}
	finding, err := svc.Create(context.Background(), findUC.CreateInput{
		Title:       "Shell company link",
		FindingType: "Corporate",
		Tags:        tags,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if diff := cmp.Diff(tags, finding.Tags); diff != "" {
		t.Errorf("tags changed (-want +got):\n%s", diff)
	}
}

func TestCreate_RequiresTitleAndType(t *testing.T) {
	svc := &findUC.Service{Repo: &stubRepo{}}

	tests := []struct {
		name  string
		in    findUC.CreateInput
		field string
	}{
		{name: "missing title", in: findUC.CreateInput{FindingType: "Sanctions"}, field: "title"},
		{name: "missing type", in: findUC.CreateInput{Title: "x"}, field: "finding_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			var ve *entity.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestList_PassesFilters(t *testing.T) {
	stub := &stubRepo{}
	svc := &findUC.Service{Repo: stub}

	ft := "Sanctions"
	imp := "High"
	if _, err := svc.List(context.Background(), findUC.ListInput{FindingType: &ft, Importance: &imp}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if stub.lastFilter.FindingType == nil || *stub.lastFilter.FindingType != "Sanctions" {
		t.Errorf("FindingType filter = %v", stub.lastFilter.FindingType)
	}
	if stub.lastFilter.Importance == nil || *stub.lastFilter.Importance != "High" {
		t.Errorf("Importance filter = %v", stub.lastFilter.Importance)
	}
}

func TestUpdate_NilTagsRetained(t *testing.T) {
	stub := &stubRepo{
		getResult: &entity.Finding{
			ID:          4,
			Title:       "SDN list match",
			FindingType: "Sanctions",
			Importance:  "High",
			Tags:        []string{"keep", "these"},
		},
	}
	svc := &findUC.Service{Repo: stub}

	title := "Updated title"
	finding, err := svc.Update(context.Background(), findUC.UpdateInput{ID: 4, Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if diff := cmp.Diff([]string{"keep", "these"}, finding.Tags); diff != "" {
		t.Errorf("tags changed (-want +got):\n%s", diff)
	}
	if finding.Title != "Updated title" {
		t.Errorf("Title = %q", finding.Title)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := &findUC.Service{Repo: &stubRepo{}}

	title := "x"
	_, err := svc.Update(context.Background(), findUC.UpdateInput{ID: 99, Title: &title})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete_PropagatesNotFound(t *testing.T) {
	stub := &stubRepo{deleteErr: entity.ErrNotFound}
	svc := &findUC.Service{Repo: stub}

	if err := svc.Delete(context.Background(), 99); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
