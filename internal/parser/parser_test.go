package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/ziadkadry99/resume-radar/internal/llm"
)

// stubProvider returns a fixed completion.
type stubProvider struct {
	content string
	calls   int
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	s.calls++
	if !req.JSONMode {
		return nil, nil
	}
	return &llm.Response{Content: s.content}, nil
}

func TestCleanJSON(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"{\"a\":1}", `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := CleanJSON(tc.in); got != tc.want {
			t.Errorf("CleanJSON(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAnalyzeTextFlattensResponse(t *testing.T) {
	stub := &stubProvider{content: "```json\n" + `{
		"personal_info": {"name": "Ada Lovelace", "email": "ada@example.com"},
		"skills": {"core_skills": ["Go", "SQL"], "soft_skills": ["Writing"]},
		"work_experience": [{"company": "Analytical Engines", "position": "Programmer", "duration": "1842-1843", "description": ["Wrote the first program"]}],
		"education": [],
		"projects": [],
		"achievements": ["First programmer"],
		"analysis": {
			"resume_rating": 9.5,
			"strengths": "Pioneering work",
			"improvement_areas": "Line 1\nLine 2",
			"upskill_suggestions": ["Learn Go"],
			"missing_sections": ["Certifications"]
		}
	}` + "\n```"}

	a := New(stub, "test-model")
	rec, err := a.AnalyzeText(context.Background(), "resume text")
	if err != nil {
		t.Fatal(err)
	}
	if stub.calls != 1 {
		t.Errorf("expected one completion call, got %d", stub.calls)
	}
	if rec.Name != "Ada Lovelace" || rec.Email != "ada@example.com" {
		t.Errorf("personal info not flattened: %+v", rec)
	}
	if len(rec.CoreSkills) != 2 || rec.CoreSkills[0] != "Go" {
		t.Errorf("core skills: %v", rec.CoreSkills)
	}
	if rec.ResumeRating.Float() != 9.5 {
		t.Errorf("rating: %v", rec.ResumeRating.Float())
	}
	// Narrative fields normalize both scalar and sequence forms.
	if len(rec.ImprovementAreas) != 2 {
		t.Errorf("scalar improvement areas should split on newlines: %v", rec.ImprovementAreas)
	}
	if len(rec.UpskillSuggestions) != 1 {
		t.Errorf("sequence upskill suggestions: %v", rec.UpskillSuggestions)
	}
	if len(rec.WorkExperience) != 1 || rec.WorkExperience[0].Company != "Analytical Engines" {
		t.Errorf("work experience: %+v", rec.WorkExperience)
	}
}

func TestAnalyzeTextRejectsMalformedResponse(t *testing.T) {
	stub := &stubProvider{content: "sorry, I cannot help with that"}
	a := New(stub, "test-model")
	if _, err := a.AnalyzeText(context.Background(), "text"); err == nil {
		t.Error("expected parse error for non-JSON response")
	}
}

func TestMockAnalyzerMatchesKeywords(t *testing.T) {
	m := NewMock()
	rec, err := m.AnalyzeText(context.Background(), "Experienced in Python and Docker. Contact: jane@example.org")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Email != "jane@example.org" {
		t.Errorf("email: %q", rec.Email)
	}
	joined := strings.Join(rec.CoreSkills, ",")
	if !strings.Contains(joined, "Python") || !strings.Contains(joined, "Docker") {
		t.Errorf("keyword skills missing: %v", rec.CoreSkills)
	}
	if rec.ResumeRating.Float() != 7.5 {
		t.Errorf("mock rating: %v", rec.ResumeRating.Float())
	}
}

func TestMockAnalyzerDefaults(t *testing.T) {
	m := NewMock()
	rec, err := m.AnalyzeText(context.Background(), "nothing relevant here")
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.CoreSkills) == 0 {
		t.Error("mock should fall back to default skills")
	}
	if rec.Email != "sample@email.com" {
		t.Errorf("default email: %q", rec.Email)
	}
}
