package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ziadkadry99/resume-radar/internal/analysis"
	"github.com/ziadkadry99/resume-radar/internal/llm"
)

// ResumeAnalyzer turns a PDF resume into a structured analysis record plus
// the raw extracted text.
type ResumeAnalyzer interface {
	Analyze(ctx context.Context, pdfData []byte) (*analysis.Record, string, error)
}

// Analyzer implements ResumeAnalyzer on top of an LLM provider.
type Analyzer struct {
	provider llm.Provider
	model    string
}

// New creates an Analyzer using the given provider and model.
func New(provider llm.Provider, model string) *Analyzer {
	return &Analyzer{provider: provider, model: model}
}

// rawAnalysis mirrors the JSON schema the model is prompted to produce.
type rawAnalysis struct {
	PersonalInfo struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		LinkedIn string `json:"linkedin"`
		GitHub   string `json:"github"`
		Website  string `json:"website"`
	} `json:"personal_info"`
	Skills struct {
		CoreSkills     []string            `json:"core_skills"`
		SoftSkills     []string            `json:"soft_skills"`
		Certifications []string            `json:"certifications"`
		Languages      []analysis.Language `json:"languages"`
	} `json:"skills"`
	WorkExperience []analysis.WorkExperience `json:"work_experience"`
	Education      []analysis.Education      `json:"education"`
	Projects       []analysis.Project        `json:"projects"`
	Achievements   []string                  `json:"achievements"`
	Analysis       struct {
		ResumeRating       analysis.Rating `json:"resume_rating"`
		Strengths          analysis.Lines  `json:"strengths"`
		ImprovementAreas   analysis.Lines  `json:"improvement_areas"`
		UpskillSuggestions analysis.Lines  `json:"upskill_suggestions"`
		MissingSections    []string        `json:"missing_sections"`
	} `json:"analysis"`
}

// Analyze extracts text from the PDF and runs the extraction prompt.
func (a *Analyzer) Analyze(ctx context.Context, pdfData []byte) (*analysis.Record, string, error) {
	text, err := ExtractText(pdfData)
	if err != nil {
		return nil, "", err
	}
	if text == "" {
		return nil, "", fmt.Errorf("no text could be extracted from the PDF")
	}
	rec, err := a.AnalyzeText(ctx, text)
	if err != nil {
		return nil, "", err
	}
	return rec, text, nil
}

// AnalyzeText runs the extraction prompt against already-extracted text.
func (a *Analyzer) AnalyzeText(ctx context.Context, resumeText string) (*analysis.Record, error) {
	resp, err := a.provider.Complete(ctx, llm.Request{
		Model:       a.model,
		System:      systemInstruction,
		Prompt:      analysisPrompt(resumeText),
		Temperature: 0.1,
		JSONMode:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(CleanJSON(resp.Content)), &raw); err != nil {
		return nil, fmt.Errorf("parsing analysis response: %w", err)
	}
	return raw.toRecord(), nil
}

func (r *rawAnalysis) toRecord() *analysis.Record {
	return &analysis.Record{
		Name:     r.PersonalInfo.Name,
		Email:    r.PersonalInfo.Email,
		Phone:    r.PersonalInfo.Phone,
		Address:  r.PersonalInfo.Address,
		LinkedIn: r.PersonalInfo.LinkedIn,
		GitHub:   r.PersonalInfo.GitHub,
		Website:  r.PersonalInfo.Website,

		CoreSkills:     r.Skills.CoreSkills,
		SoftSkills:     r.Skills.SoftSkills,
		Certifications: r.Skills.Certifications,
		Languages:      r.Skills.Languages,

		WorkExperience: r.WorkExperience,
		Education:      r.Education,
		Projects:       r.Projects,
		Achievements:   r.Achievements,

		ResumeRating:       r.Analysis.ResumeRating,
		Strengths:          r.Analysis.Strengths,
		ImprovementAreas:   r.Analysis.ImprovementAreas,
		UpskillSuggestions: r.Analysis.UpskillSuggestions,
		MissingSections:    r.Analysis.MissingSections,
	}
}

// CleanJSON strips markdown code fences that models sometimes wrap around
// JSON output despite being asked not to.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
