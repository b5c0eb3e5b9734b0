package store

import (
	"context"
	"testing"

	"github.com/ziadkadry99/resume-radar/internal/analysis"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("opening in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecord() *analysis.Record {
	return &analysis.Record{
		Name:       "Grace Hopper",
		Email:      "grace@example.com",
		Phone:      "+1-555-0100",
		CoreSkills: []string{"COBOL", "Compilers"},
		SoftSkills: []string{"Leadership"},
		Languages:  []analysis.Language{{Language: "English", Proficiency: "Native"}},
		WorkExperience: []analysis.WorkExperience{{
			Position:    "Rear Admiral",
			Company:     "US Navy",
			Duration:    "1943-1986",
			Description: []string{"Built the first compiler"},
		}},
		Education: []analysis.Education{{
			Degree:      "PhD",
			Institution: "Yale",
		}},
		ResumeRating:       analysis.Rating(9.0),
		Strengths:          analysis.Lines{"Pioneering", "Persistent"},
		ImprovementAreas:   analysis.Lines{"None found"},
		UpskillSuggestions: analysis.Lines{"Keep inventing"},
		MissingSections:    []string{"Projects"},
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, sampleRecord(), "grace.pdf", "abc123.pdf", "raw resume text")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected record, got nil")
	}
	if got.ID != id {
		t.Errorf("id = %d, want %d", got.ID, id)
	}
	if got.Name != "Grace Hopper" || got.Email != "grace@example.com" {
		t.Errorf("personal info: %+v", got)
	}
	if got.Filename != "grace.pdf" {
		t.Errorf("filename = %q", got.Filename)
	}
	if got.UploadDate == "" {
		t.Error("upload date not set")
	}
	if len(got.CoreSkills) != 2 || got.CoreSkills[0] != "COBOL" {
		t.Errorf("core skills: %v", got.CoreSkills)
	}
	if len(got.WorkExperience) != 1 || got.WorkExperience[0].Company != "US Navy" {
		t.Errorf("work experience: %+v", got.WorkExperience)
	}
	if got.ResumeRating.Float() != 9.0 {
		t.Errorf("rating: %v", got.ResumeRating.Float())
	}
	if len(got.Strengths) != 2 || got.Strengths[1] != "Persistent" {
		t.Errorf("strengths: %v", got.Strengths)
	}
	if len(got.MissingSections) != 1 || got.MissingSections[0] != "Projects" {
		t.Errorf("missing sections: %v", got.MissingSections)
	}
}

func TestGetUnknownID(t *testing.T) {
	s := newTestStore(t)
	got, err := s.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown id, got %+v", got)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Create(ctx, sampleRecord(), "first.pdf", "", "")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Create(ctx, sampleRecord(), "second.pdf", "", "")
	if err != nil {
		t.Fatal(err)
	}

	records, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// Same-second uploads fall back to id ordering.
	if records[0].ID != second || records[1].ID != first {
		t.Errorf("order: got ids %d, %d", records[0].ID, records[1].ID)
	}
	if records[0].Filename != "second.pdf" {
		t.Errorf("filename: %q", records[0].Filename)
	}
	if records[0].Name != "Grace Hopper" {
		t.Errorf("summary name: %q", records[0].Name)
	}
}

func TestListEmpty(t *testing.T) {
	s := newTestStore(t)
	records, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if records == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, sampleRecord(), "doomed.pdf", "", "")
	if err != nil {
		t.Fatal(err)
	}

	existed, err := s.Delete(ctx, id)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !existed {
		t.Error("expected delete to report an existing row")
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("record still present after delete")
	}

	existed, err = s.Delete(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if existed {
		t.Error("second delete should report no row")
	}
}

func TestCreateHandlesNilSlices(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, &analysis.Record{Name: "Minimal"}, "min.pdf", "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.CoreSkills) != 0 {
		t.Errorf("core skills: %v", got.CoreSkills)
	}
	if len(got.WorkExperience) != 0 {
		t.Errorf("work experience: %v", got.WorkExperience)
	}
	if !got.Strengths.IsEmpty() {
		t.Errorf("strengths: %v", got.Strengths)
	}
}
