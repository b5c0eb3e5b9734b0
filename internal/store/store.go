package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ziadkadry99/resume-radar/internal/analysis"
)

// Store persists analyzed resumes in SQLite.
type Store struct {
	*sql.DB
	path string
}

// Open creates or opens the resume database at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &Store{DB: sqlDB, path: path}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// OpenMemory creates an in-memory database (useful for testing).
func OpenMemory() (*Store, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	s := &Store{DB: sqlDB, path: ":memory:"}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS resumes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    filename TEXT NOT NULL,
    stored_name TEXT NOT NULL DEFAULT '',
    upload_date TEXT NOT NULL,

    name TEXT,
    email TEXT,
    phone TEXT,
    address TEXT,
    linkedin TEXT,
    github TEXT,
    website TEXT,

    core_skills TEXT NOT NULL DEFAULT '[]',
    soft_skills TEXT NOT NULL DEFAULT '[]',
    certifications TEXT NOT NULL DEFAULT '[]',
    languages TEXT NOT NULL DEFAULT '[]',

    work_experience TEXT NOT NULL DEFAULT '[]',
    education TEXT NOT NULL DEFAULT '[]',
    projects TEXT NOT NULL DEFAULT '[]',
    achievements TEXT NOT NULL DEFAULT '[]',

    resume_rating REAL NOT NULL DEFAULT 0,
    strengths TEXT NOT NULL DEFAULT '',
    improvement_areas TEXT NOT NULL DEFAULT '',
    upskill_suggestions TEXT NOT NULL DEFAULT '',
    missing_sections TEXT NOT NULL DEFAULT '[]',

    raw_text TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_resumes_upload_date ON resumes(upload_date);
`

// Create inserts an analyzed resume and returns its assigned id. storedName
// is the on-disk filename the original PDF was saved under (may be empty).
func (s *Store) Create(ctx context.Context, rec *analysis.Record, filename, storedName, rawText string) (int, error) {
	cols, err := marshalJSONColumns(rec)
	if err != nil {
		return 0, fmt.Errorf("encoding resume: %w", err)
	}

	res, err := s.ExecContext(ctx,
		`INSERT INTO resumes (filename, stored_name, upload_date,
			name, email, phone, address, linkedin, github, website,
			core_skills, soft_skills, certifications, languages,
			work_experience, education, projects, achievements,
			resume_rating, strengths, improvement_areas, upskill_suggestions, missing_sections,
			raw_text)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		filename, storedName, time.Now().UTC().Format(time.RFC3339),
		rec.Name, rec.Email, rec.Phone, rec.Address, rec.LinkedIn, rec.GitHub, rec.Website,
		cols.coreSkills, cols.softSkills, cols.certifications, cols.languages,
		cols.workExperience, cols.education, cols.projects, cols.achievements,
		rec.ResumeRating.Float(),
		strings.Join(rec.Strengths, "\n"),
		strings.Join(rec.ImprovementAreas, "\n"),
		strings.Join(rec.UpskillSuggestions, "\n"),
		cols.missingSections,
		rawText,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting resume: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading insert id: %w", err)
	}
	return int(id), nil
}

// List returns summary records for every stored resume, newest first.
func (s *Store) List(ctx context.Context) ([]analysis.Record, error) {
	rows, err := s.QueryContext(ctx,
		`SELECT id, filename, upload_date, name, email, phone, resume_rating
		 FROM resumes ORDER BY upload_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing resumes: %w", err)
	}
	defer rows.Close()

	records := []analysis.Record{}
	for rows.Next() {
		var rec analysis.Record
		var name, email, phone sql.NullString
		var rating float64
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.UploadDate, &name, &email, &phone, &rating); err != nil {
			return nil, fmt.Errorf("scanning resume row: %w", err)
		}
		rec.Name = name.String
		rec.Email = email.String
		rec.Phone = phone.String
		rec.ResumeRating = analysis.Rating(rating)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Get returns the full record for one resume, or nil if it does not exist.
func (s *Store) Get(ctx context.Context, id int) (*analysis.Record, error) {
	var rec analysis.Record
	var name, email, phone, address, linkedin, github, website sql.NullString
	var strengths, improvements, upskill string
	var rating float64
	var cols jsonColumns

	err := s.QueryRowContext(ctx,
		`SELECT id, filename, upload_date,
			name, email, phone, address, linkedin, github, website,
			core_skills, soft_skills, certifications, languages,
			work_experience, education, projects, achievements,
			resume_rating, strengths, improvement_areas, upskill_suggestions, missing_sections
		 FROM resumes WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.Filename, &rec.UploadDate,
		&name, &email, &phone, &address, &linkedin, &github, &website,
		&cols.coreSkills, &cols.softSkills, &cols.certifications, &cols.languages,
		&cols.workExperience, &cols.education, &cols.projects, &cols.achievements,
		&rating, &strengths, &improvements, &upskill, &cols.missingSections)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting resume %d: %w", id, err)
	}

	rec.Name = name.String
	rec.Email = email.String
	rec.Phone = phone.String
	rec.Address = address.String
	rec.LinkedIn = linkedin.String
	rec.GitHub = github.String
	rec.Website = website.String
	rec.ResumeRating = analysis.Rating(rating)
	rec.Strengths = splitLines(strengths)
	rec.ImprovementAreas = splitLines(improvements)
	rec.UpskillSuggestions = splitLines(upskill)

	if err := cols.unmarshalInto(&rec); err != nil {
		return nil, fmt.Errorf("decoding resume %d: %w", id, err)
	}
	return &rec, nil
}

// StoredName returns the on-disk filename the resume's PDF was saved under,
// or "" if the resume does not exist or no file was kept.
func (s *Store) StoredName(ctx context.Context, id int) (string, error) {
	var name string
	err := s.QueryRowContext(ctx, `SELECT stored_name FROM resumes WHERE id = ?`, id).Scan(&name)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("looking up stored name for %d: %w", id, err)
	}
	return name, nil
}

// Delete removes one resume. It reports whether a row existed.
func (s *Store) Delete(ctx context.Context, id int) (bool, error) {
	res, err := s.ExecContext(ctx, `DELETE FROM resumes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting resume %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}
	return n > 0, nil
}

// jsonColumns holds the JSON-encoded list columns of the resumes table.
type jsonColumns struct {
	coreSkills      string
	softSkills      string
	certifications  string
	languages       string
	workExperience  string
	education       string
	projects        string
	achievements    string
	missingSections string
}

func marshalJSONColumns(rec *analysis.Record) (*jsonColumns, error) {
	cols := &jsonColumns{}
	for _, f := range []struct {
		dst *string
		src any
	}{
		{&cols.coreSkills, emptySlice(rec.CoreSkills)},
		{&cols.softSkills, emptySlice(rec.SoftSkills)},
		{&cols.certifications, emptySlice(rec.Certifications)},
		{&cols.languages, rec.Languages},
		{&cols.workExperience, rec.WorkExperience},
		{&cols.education, rec.Education},
		{&cols.projects, rec.Projects},
		{&cols.achievements, emptySlice(rec.Achievements)},
		{&cols.missingSections, emptySlice(rec.MissingSections)},
	} {
		data, err := json.Marshal(f.src)
		if err != nil {
			return nil, err
		}
		if string(data) == "null" {
			data = []byte("[]")
		}
		*f.dst = string(data)
	}
	return cols, nil
}

func (c *jsonColumns) unmarshalInto(rec *analysis.Record) error {
	for _, f := range []struct {
		src string
		dst any
	}{
		{c.coreSkills, &rec.CoreSkills},
		{c.softSkills, &rec.SoftSkills},
		{c.certifications, &rec.Certifications},
		{c.languages, &rec.Languages},
		{c.workExperience, &rec.WorkExperience},
		{c.education, &rec.Education},
		{c.projects, &rec.Projects},
		{c.achievements, &rec.Achievements},
		{c.missingSections, &rec.MissingSections},
	} {
		if f.src == "" {
			continue
		}
		if err := json.Unmarshal([]byte(f.src), f.dst); err != nil {
			return err
		}
	}
	return nil
}

func emptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func splitLines(s string) analysis.Lines {
	if s == "" {
		return nil
	}
	return analysis.Lines(strings.Split(s, "\n"))
}
