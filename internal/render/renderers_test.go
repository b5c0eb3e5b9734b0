package render

import (
	"strings"
	"testing"

	"github.com/ziadkadry99/resume-radar/internal/analysis"
)

func TestPersonalInfoOmitsAbsentFields(t *testing.T) {
	r := New(TargetResults)
	rec := &analysis.Record{Name: "Ada Lovelace", Email: "ada@example.com"}
	out := string(r.PersonalInfo(rec))

	if !strings.Contains(out, "Ada Lovelace") || !strings.Contains(out, "ada@example.com") {
		t.Fatalf("present fields missing: %s", out)
	}
	for _, label := range []string{"Phone", "Address", "LinkedIn", "GitHub", "Website"} {
		if strings.Contains(out, label) {
			t.Errorf("absent field %s should be omitted entirely", label)
		}
	}
	if !strings.Contains(out, `id="results-personal-info"`) {
		t.Errorf("missing mount id: %s", out)
	}
}

func TestPersonalInfoEscapesValues(t *testing.T) {
	r := New(TargetResults)
	rec := &analysis.Record{Name: `<img src=x onerror="x">`}
	out := string(r.PersonalInfo(rec))
	if strings.Contains(out, "<img") {
		t.Errorf("value not escaped: %s", out)
	}
}

func TestSkillsPlaceholderAndOrder(t *testing.T) {
	r := New(TargetResults)

	empty := string(r.Skills("core-skills", nil))
	if !strings.Contains(empty, "No skills found") {
		t.Errorf("empty skills should show placeholder: %s", empty)
	}

	out := string(r.Skills("core-skills", []string{"Go", "Go", "SQL"}))
	if strings.Count(out, `class="skill-tag"`) != 3 {
		t.Errorf("duplicates must be kept, got: %s", out)
	}
	if strings.Index(out, "Go") > strings.Index(out, "SQL") {
		t.Errorf("source order not preserved: %s", out)
	}
}

func TestWorkExperiencePlaceholders(t *testing.T) {
	r := New(TargetResults)

	empty := string(r.WorkExperience(nil))
	if !strings.Contains(empty, "No work experience found") {
		t.Errorf("empty experience should show placeholder: %s", empty)
	}

	out := string(r.WorkExperience([]analysis.WorkExperience{{Duration: "2020"}}))
	if !strings.Contains(out, "Position not specified") || !strings.Contains(out, "Company not specified") {
		t.Errorf("missing position/company placeholders: %s", out)
	}
	// Empty description renders an empty list, not a placeholder.
	if !strings.Contains(out, "<ul") {
		t.Errorf("description list should always render: %s", out)
	}
	if strings.Contains(out, "tech-tags") {
		t.Errorf("technologies block should be conditional: %s", out)
	}
}

func TestEducationAsymmetry(t *testing.T) {
	r := New(TargetResults)

	// An entry with every field absent still renders its four fixed lines,
	// unprotected by placeholders.
	out := string(r.Education([]analysis.Education{{}}))
	if strings.Contains(out, "No education information found") {
		t.Errorf("non-empty sequence must not show placeholder: %s", out)
	}
	if strings.Count(out, `class="item-meta"`) != 2 {
		t.Errorf("expected institution and date lines even when empty: %s", out)
	}
	if strings.Contains(out, "not specified") {
		t.Errorf("education lines are not placeholder-protected: %s", out)
	}
	if strings.Contains(out, "GPA") {
		t.Errorf("GPA line is conditional: %s", out)
	}

	empty := string(r.Education(nil))
	if !strings.Contains(empty, "No education information found") {
		t.Errorf("empty sequence shows placeholder: %s", empty)
	}
}

func TestProjectsRendering(t *testing.T) {
	r := New(TargetModal)

	out := string(r.Projects([]analysis.Project{{URL: "https://example.com/x"}}))
	if !strings.Contains(out, "Untitled Project") {
		t.Errorf("missing name placeholder: %s", out)
	}
	if !strings.Contains(out, `rel="noopener noreferrer"`) || !strings.Contains(out, `target="_blank"`) {
		t.Errorf("project link must open externally without opener/referrer: %s", out)
	}
	if !strings.Contains(out, `class="project-description"`) {
		t.Errorf("description line always renders: %s", out)
	}
	if strings.Contains(out, "tech-tags") || strings.Contains(out, "item-meta") {
		t.Errorf("technologies and duration are conditional: %s", out)
	}
}

func TestCommentaryFallbacks(t *testing.T) {
	r := New(TargetResults)
	frags := r.Analysis(&analysis.Record{Strengths: analysis.Lines{"Good"}})

	if !strings.Contains(string(frags.Strengths), "Good") {
		t.Errorf("strengths content missing: %s", frags.Strengths)
	}
	if !strings.Contains(string(frags.Improvements), "No improvement areas identified") {
		t.Errorf("improvements fallback missing: %s", frags.Improvements)
	}
	if !strings.Contains(string(frags.Upskill), "No upskilling suggestions available") {
		t.Errorf("upskill fallback missing: %s", frags.Upskill)
	}
}

func TestRatingFill(t *testing.T) {
	r := New(TargetResults)

	out := string(r.Rating(8.5))
	if !strings.Contains(out, ">8.5<") {
		t.Errorf("rating should display one decimal place: %s", out)
	}
	if !strings.Contains(out, "width: 85%") {
		t.Errorf("fill width should be 85%%: %s", out)
	}

	// Ratings above 10 overflow past 100%; the fill is not clamped.
	over := string(r.Rating(11))
	if !strings.Contains(over, "width: 110%") {
		t.Errorf("overflow fill not preserved: %s", over)
	}
}

func TestAnalysisNilRecord(t *testing.T) {
	r := New(TargetModal)
	frags := r.Analysis(nil)
	if !strings.Contains(string(frags.WorkExperience), "No work experience found") {
		t.Errorf("nil record should render placeholders, got: %s", frags.WorkExperience)
	}
	if frags.Certifications != "" || frags.Achievements != "" {
		t.Error("optional sections should be empty for nil record")
	}
}

func TestModalTargetPrefix(t *testing.T) {
	r := New(TargetModal)
	out := string(r.PersonalInfo(&analysis.Record{Name: "x"}))
	if !strings.Contains(out, `id="modal-personal-info"`) {
		t.Errorf("modal target prefix missing: %s", out)
	}
}
