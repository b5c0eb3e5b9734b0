package render

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/ziadkadry99/resume-radar/internal/analysis"
)

// Target identifies the mount-point prefix a fragment set renders into. The
// live results panel and the history detail modal share one renderer; only
// the target root differs.
type Target string

const (
	TargetResults Target = "results"
	TargetModal   Target = "modal"
)

// Placeholder text substituted for empty or absent sections.
const (
	placeholderNoSkills      = "No skills found"
	placeholderNoExperience  = "No work experience found"
	placeholderNoEducation   = "No education information found"
	placeholderNoProjects    = "No projects found"
	placeholderNoPosition    = "Position not specified"
	placeholderNoCompany     = "Company not specified"
	placeholderUntitled      = "Untitled Project"
	placeholderNoStrengths   = "No strengths identified"
	placeholderNoImprovement = "No improvement areas identified"
	placeholderNoUpskill     = "No upskilling suggestions available"
)

// Renderer maps sections of an analysis record to HTML fragments for one
// target root. Fragments never fail: missing or malformed fields render as
// documented placeholders, and a nil record renders every section empty.
type Renderer struct {
	target Target
}

// New returns a Renderer for the given target root.
func New(target Target) *Renderer {
	return &Renderer{target: target}
}

// Target returns the renderer's target root.
func (r *Renderer) Target() Target { return r.target }

func (r *Renderer) mount(name string) string {
	return string(r.target) + "-" + name
}

// Fragments holds every rendered section of one record, keyed by mount point.
type Fragments struct {
	PersonalInfo    template.HTML
	Rating          template.HTML
	CoreSkills      template.HTML
	SoftSkills      template.HTML
	WorkExperience  template.HTML
	Education       template.HTML
	Projects        template.HTML
	Certifications  template.HTML
	Languages       template.HTML
	Achievements    template.HTML
	Strengths       template.HTML
	Improvements    template.HTML
	Upskill         template.HTML
	MissingSections template.HTML
}

// Analysis renders every section of the record in one pass.
func (r *Renderer) Analysis(rec *analysis.Record) Fragments {
	if rec == nil {
		rec = &analysis.Record{}
	}
	return Fragments{
		PersonalInfo:    r.PersonalInfo(rec),
		Rating:          r.Rating(rec.ResumeRating.Float()),
		CoreSkills:      r.Skills("core-skills", rec.CoreSkills),
		SoftSkills:      r.Skills("soft-skills", rec.SoftSkills),
		WorkExperience:  r.WorkExperience(rec.WorkExperience),
		Education:       r.Education(rec.Education),
		Projects:        r.Projects(rec.Projects),
		Certifications:  r.Certifications(rec.Certifications),
		Languages:       r.Languages(rec.Languages),
		Achievements:    r.Achievements(rec.Achievements),
		Strengths:       r.Commentary("strengths", rec.Strengths, placeholderNoStrengths),
		Improvements:    r.Commentary("improvements", rec.ImprovementAreas, placeholderNoImprovement),
		Upskill:         r.Commentary("upskill", rec.UpskillSuggestions, placeholderNoUpskill),
		MissingSections: r.MissingSections(rec.MissingSections),
	}
}

// PersonalInfo emits one line per present scalar field, in fixed order.
// Absent fields are omitted entirely rather than shown blank.
func (r *Renderer) PersonalInfo(rec *analysis.Record) template.HTML {
	var b strings.Builder
	fmt.Fprintf(&b, `<div id=%q class="info-grid">`, r.mount("personal-info"))
	if rec != nil {
		fields := []struct {
			label, value string
		}{
			{"Name", rec.Name},
			{"Email", rec.Email},
			{"Phone", rec.Phone},
			{"Address", rec.Address},
			{"LinkedIn", rec.LinkedIn},
			{"GitHub", rec.GitHub},
			{"Website", rec.Website},
		}
		for _, f := range fields {
			if f.value == "" {
				continue
			}
			fmt.Fprintf(&b, `<div class="info-row"><span class="info-label">%s</span><span class="info-value">%s</span></div>`,
				f.label, EscapeText(f.value))
		}
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// Rating emits the numeric rating to one decimal place and a visual fill bar
// proportional to rating/10. The fill is deliberately not clamped: a rating
// above 10 overflows past 100%.
func (r *Renderer) Rating(rating float64) template.HTML {
	width := strconv.FormatFloat(rating*10, 'f', -1, 64)
	var b strings.Builder
	fmt.Fprintf(&b, `<div id=%q class="rating">`, r.mount("rating"))
	fmt.Fprintf(&b, `<span class="rating-value">%.1f</span><span class="rating-max">/10</span>`, rating)
	fmt.Fprintf(&b, `<div class="rating-bar"><div class="rating-fill" style="width: %s%%"></div></div>`, width)
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// Skills emits one tag per entry in input order, or a placeholder line for an
// empty sequence. Duplicates are kept.
func (r *Renderer) Skills(name string, skills []string) template.HTML {
	var b strings.Builder
	fmt.Fprintf(&b, `<div id=%q class="skills-list">`, r.mount(name))
	if len(skills) == 0 {
		fmt.Fprintf(&b, `<p class="empty-placeholder">%s</p>`, placeholderNoSkills)
	} else {
		for _, s := range skills {
			fmt.Fprintf(&b, `<span class="skill-tag">%s</span>`, EscapeText(s))
		}
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// WorkExperience renders employment entries. Position and company fall back
// to placeholders when absent; the location line appears only when present;
// description bullets render as a list even when the list is empty.
func (r *Renderer) WorkExperience(entries []analysis.WorkExperience) template.HTML {
	var b strings.Builder
	fmt.Fprintf(&b, `<div id=%q class="section-list">`, r.mount("experience"))
	if len(entries) == 0 {
		fmt.Fprintf(&b, `<p class="empty-placeholder">%s</p>`, placeholderNoExperience)
	}
	for _, e := range entries {
		position := e.Position
		if position == "" {
			position = placeholderNoPosition
		}
		company := e.Company
		if company == "" {
			company = placeholderNoCompany
		}
		b.WriteString(`<div class="experience-item">`)
		fmt.Fprintf(&b, `<h4>%s</h4>`, EscapeText(position))
		fmt.Fprintf(&b, `<div class="item-subtitle">%s</div>`, EscapeText(company))
		fmt.Fprintf(&b, `<div class="item-meta">%s</div>`, EscapeText(e.Duration))
		if e.Location != "" {
			fmt.Fprintf(&b, `<div class="item-meta">%s</div>`, EscapeText(e.Location))
		}
		b.WriteString(`<ul class="bullet-list">`)
		for _, d := range e.Description {
			fmt.Fprintf(&b, `<li>%s</li>`, EscapeText(d))
		}
		b.WriteString(`</ul>`)
		if len(e.Technologies) > 0 {
			b.WriteString(`<div class="tech-tags">`)
			for _, t := range e.Technologies {
				fmt.Fprintf(&b, `<span class="tech-tag">%s</span>`, EscapeText(t))
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// Education renders education entries. Degree, field, institution, and date
// always render even when empty; unlike work experience these lines are not
// placeholder-protected. GPA and location are conditional on presence.
func (r *Renderer) Education(entries []analysis.Education) template.HTML {
	var b strings.Builder
	fmt.Fprintf(&b, `<div id=%q class="section-list">`, r.mount("education"))
	if len(entries) == 0 {
		fmt.Fprintf(&b, `<p class="empty-placeholder">%s</p>`, placeholderNoEducation)
	}
	for _, e := range entries {
		b.WriteString(`<div class="education-item">`)
		fmt.Fprintf(&b, `<h4>%s</h4>`, EscapeText(e.Degree))
		fmt.Fprintf(&b, `<div class="item-subtitle">%s</div>`, EscapeText(e.FieldOfStudy))
		fmt.Fprintf(&b, `<div class="item-meta">%s</div>`, EscapeText(e.Institution))
		fmt.Fprintf(&b, `<div class="item-meta">%s</div>`, EscapeText(e.GraduationDate))
		if e.GPA != "" {
			fmt.Fprintf(&b, `<div class="item-meta">GPA: %s</div>`, EscapeText(e.GPA))
		}
		if e.Location != "" {
			fmt.Fprintf(&b, `<div class="item-meta">%s</div>`, EscapeText(e.Location))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// Projects renders project entries. The name falls back to a placeholder and
// the description line always renders; technologies, URL, and duration are
// each independently conditional. Links open externally without referrer or
// opener access.
func (r *Renderer) Projects(entries []analysis.Project) template.HTML {
	var b strings.Builder
	fmt.Fprintf(&b, `<div id=%q class="section-list">`, r.mount("projects"))
	if len(entries) == 0 {
		fmt.Fprintf(&b, `<p class="empty-placeholder">%s</p>`, placeholderNoProjects)
	}
	for _, p := range entries {
		name := p.Name
		if name == "" {
			name = placeholderUntitled
		}
		b.WriteString(`<div class="project-item">`)
		fmt.Fprintf(&b, `<h4>%s</h4>`, EscapeText(name))
		fmt.Fprintf(&b, `<p class="project-description">%s</p>`, EscapeText(p.Description))
		if len(p.Technologies) > 0 {
			b.WriteString(`<div class="tech-tags">`)
			for _, t := range p.Technologies {
				fmt.Fprintf(&b, `<span class="tech-tag">%s</span>`, EscapeText(t))
			}
			b.WriteString(`</div>`)
		}
		if p.URL != "" {
			fmt.Fprintf(&b, `<a href=%q class="project-link" target="_blank" rel="noopener noreferrer">%s</a>`,
				EscapeText(p.URL), EscapeText(p.URL))
		}
		if p.Duration != "" {
			fmt.Fprintf(&b, `<div class="item-meta">%s</div>`, EscapeText(p.Duration))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// Commentary renders one AI narrative field through FormatMultilineText,
// falling back to the given placeholder when the field is absent or blank.
func (r *Renderer) Commentary(name string, lines analysis.Lines, fallback string) template.HTML {
	var b strings.Builder
	fmt.Fprintf(&b, `<div id=%q class="commentary">`, r.mount(name))
	if lines.IsEmpty() {
		fmt.Fprintf(&b, `<p class="empty-placeholder">%s</p>`, fallback)
	} else {
		fmt.Fprintf(&b, `<p>%s</p>`, FormatMultilineText(lines))
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// Certifications renders certification tags, or nothing when the list is empty.
func (r *Renderer) Certifications(certs []string) template.HTML {
	if len(certs) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<div id=%q class="skills-list">`, r.mount("certifications"))
	for _, c := range certs {
		fmt.Fprintf(&b, `<span class="skill-tag">%s</span>`, EscapeText(c))
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// Languages renders spoken languages with proficiency, or nothing when empty.
func (r *Renderer) Languages(langs []analysis.Language) template.HTML {
	if len(langs) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<div id=%q class="info-grid">`, r.mount("languages"))
	for _, l := range langs {
		label := l.Language
		if l.Proficiency != "" {
			label += " (" + l.Proficiency + ")"
		}
		fmt.Fprintf(&b, `<div class="info-row"><span class="info-value">%s</span></div>`, EscapeText(label))
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// Achievements renders achievement bullets, or nothing when the list is empty.
func (r *Renderer) Achievements(items []string) template.HTML {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<ul id=%q class="bullet-list">`, r.mount("achievements"))
	for _, a := range items {
		fmt.Fprintf(&b, `<li>%s</li>`, EscapeText(a))
	}
	b.WriteString(`</ul>`)
	return template.HTML(b.String())
}

// MissingSections renders the AI's list of expected-but-absent resume
// sections, or nothing when the list is empty.
func (r *Renderer) MissingSections(sections []string) template.HTML {
	if len(sections) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<div id=%q class="skills-list">`, r.mount("missing-sections"))
	for _, s := range sections {
		fmt.Fprintf(&b, `<span class="missing-tag">%s</span>`, EscapeText(s))
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}
