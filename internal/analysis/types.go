package analysis

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Record is the structured result of an AI resume analysis as returned by the
// backend. Every field is optional; renderers substitute placeholders for
// anything missing. A Record is never mutated after it has been decoded.
type Record struct {
	// ID is set only for persisted records (history listing and detail
	// lookups). A freshly analyzed record carries the ID assigned at upload.
	ID int `json:"id,omitempty"`

	// Personal information
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`

	// Skills
	CoreSkills     []string   `json:"core_skills,omitempty"`
	SoftSkills     []string   `json:"soft_skills,omitempty"`
	Certifications []string   `json:"certifications,omitempty"`
	Languages      []Language `json:"languages,omitempty"`

	// Experience and education
	WorkExperience []WorkExperience `json:"work_experience,omitempty"`
	Education      []Education      `json:"education,omitempty"`
	Projects       []Project        `json:"projects,omitempty"`
	Achievements   []string         `json:"achievements,omitempty"`

	// AI commentary
	ResumeRating       Rating `json:"resume_rating,omitempty"`
	Strengths          Lines  `json:"strengths,omitempty"`
	ImprovementAreas   Lines  `json:"improvement_areas,omitempty"`
	UpskillSuggestions Lines  `json:"upskill_suggestions,omitempty"`
	MissingSections    []string `json:"missing_sections,omitempty"`

	// Metadata present only on persisted records.
	Filename   string `json:"filename,omitempty"`
	UploadDate string `json:"upload_date,omitempty"`
}

// WorkExperience is a single employment entry. Description bullets keep their
// source order; an empty Description is valid and distinct from an absent one.
type WorkExperience struct {
	Position     string   `json:"position,omitempty"`
	Company      string   `json:"company,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  []string `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Degree         string `json:"degree,omitempty"`
	FieldOfStudy   string `json:"field_of_study,omitempty"`
	Institution    string `json:"institution,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
	Location       string `json:"location,omitempty"`
}

// Project is a single project entry.
type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	Duration     string   `json:"duration,omitempty"`
}

// Language pairs a spoken language with a proficiency level.
type Language struct {
	Language    string `json:"language,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Rating is a resume score in [0,10]. The AI occasionally returns the score
// as a quoted string or omits it entirely; anything non-numeric decodes to 0
// rather than failing the whole record.
type Rating float64

// UnmarshalJSON accepts a JSON number, a quoted number, or null.
func (r *Rating) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*r = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*r = 0
		return nil
	}
	*r = Rating(f)
	return nil
}

// Float returns the rating as a float64.
func (r Rating) Float() float64 { return float64(r) }

// Lines holds narrative text that the backend may deliver either as a single
// newline-delimited string or as an array of lines. Both forms decode to the
// same line sequence, preserving order.
type Lines []string

// UnmarshalJSON accepts a string (split on newlines), an array of strings, or null.
func (l *Lines) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*l = nil
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var arr []string
		if err := json.Unmarshal(data, &arr); err != nil {
			return err
		}
		*l = arr
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(str, "\n")
	return nil
}

// MarshalJSON always emits the array form.
func (l Lines) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(l))
}

// IsEmpty reports whether the narrative carries no visible text.
func (l Lines) IsEmpty() bool {
	for _, line := range l {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}
