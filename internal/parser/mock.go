package parser

import (
	"context"
	"strings"

	"github.com/ziadkadry99/resume-radar/internal/analysis"
)

// MockAnalyzer produces a canned analysis from basic keyword matching. It is
// used when no AI API key is configured, so the application stays usable for
// local development.
type MockAnalyzer struct{}

// NewMock creates a MockAnalyzer.
func NewMock() *MockAnalyzer { return &MockAnalyzer{} }

var mockSkillKeywords = []string{
	"python", "javascript", "java", "go", "react", "node",
	"sql", "git", "aws", "docker", "kubernetes",
}

// Analyze extracts text from the PDF and builds a mock record from it.
func (m *MockAnalyzer) Analyze(ctx context.Context, pdfData []byte) (*analysis.Record, string, error) {
	text, err := ExtractText(pdfData)
	if err != nil {
		return nil, "", err
	}
	rec, err := m.AnalyzeText(ctx, text)
	if err != nil {
		return nil, "", err
	}
	return rec, text, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// AnalyzeText builds a mock record from already-extracted text.
func (m *MockAnalyzer) AnalyzeText(_ context.Context, resumeText string) (*analysis.Record, error) {
	lower := strings.ToLower(resumeText)

	var email string
	for _, word := range strings.Fields(resumeText) {
		if strings.Contains(word, "@") && strings.Contains(word, ".") {
			email = strings.Trim(word, ".,()[]<>")
			break
		}
	}
	if email == "" {
		email = "sample@email.com"
	}

	var skills []string
	for _, kw := range mockSkillKeywords {
		if strings.Contains(lower, kw) {
			skills = append(skills, capitalize(kw))
		}
	}
	if len(skills) == 0 {
		skills = []string{"Python", "JavaScript", "SQL"}
	}

	techSample := skills
	if len(techSample) > 3 {
		techSample = techSample[:3]
	}

	return &analysis.Record{
		Name:  "Sample Name (Mock)",
		Email: email,
		Phone: "+1-234-567-8900",

		CoreSkills: skills,
		SoftSkills: []string{"Communication", "Problem Solving", "Team Work"},
		Languages:  []analysis.Language{{Language: "English", Proficiency: "Native"}},

		WorkExperience: []analysis.WorkExperience{{
			Company:      "Sample Company",
			Position:     "Software Developer",
			Duration:     "2022 - Present",
			Location:     "Remote",
			Description:  []string{"Developed applications", "Collaborated with team"},
			Technologies: techSample,
		}},
		Education: []analysis.Education{{
			Institution:    "Sample University",
			Degree:         "Bachelor of Science",
			FieldOfStudy:   "Computer Science",
			GraduationDate: "2022",
			Location:       "Sample City",
		}},
		Projects: []analysis.Project{{
			Name:         "Sample Project",
			Description:  "A sample project for demonstration",
			Technologies: techSample,
			Duration:     "3 months",
		}},
		Achievements: []string{"Mock Achievement 1", "Mock Achievement 2"},

		ResumeRating:       7.5,
		Strengths:          analysis.Lines{"This is a mock analysis. The resume shows technical skills and experience."},
		ImprovementAreas:   analysis.Lines{"Mock suggestion: Add more quantifiable achievements and specific project outcomes."},
		UpskillSuggestions: analysis.Lines{"Mock suggestion: Consider learning cloud technologies like AWS or Azure."},
		MissingSections:    []string{"Professional Summary", "Certifications"},
	}, nil
}
