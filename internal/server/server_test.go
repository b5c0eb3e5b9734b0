package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/resume-radar/internal/analysis"
	"github.com/ziadkadry99/resume-radar/internal/store"
)

// stubAnalyzer skips PDF extraction and returns a fixed record.
type stubAnalyzer struct {
	rec analysis.Record
}

func (a *stubAnalyzer) Analyze(_ context.Context, _ []byte) (*analysis.Record, string, error) {
	rec := a.rec
	return &rec, "stub text", nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	stub := &stubAnalyzer{rec: analysis.Record{
		Name:         "Test Person",
		Email:        "test@example.com",
		CoreSkills:   []string{"Go"},
		ResumeRating: 8,
	}}
	return New(Config{Addr: ":0", DataDir: t.TempDir(), AllowAll: true}, st, stub)
}

func multipartBody(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(data)
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("expected status 'healthy', got %q", body["status"])
	}
}

func TestUploadRejectsNonPDF(t *testing.T) {
	srv := newTestServer(t)

	body, contentType := multipartBody(t, "resume.docx", []byte("not a pdf"))
	req := httptest.NewRequest("POST", "/upload-resume", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Only PDF files are allowed") {
		t.Errorf("body: %s", w.Body.String())
	}
}

func TestUploadAnalyzesAndPersists(t *testing.T) {
	srv := newTestServer(t)

	body, contentType := multipartBody(t, "resume.pdf", []byte("%PDF-1.4 fake"))
	req := httptest.NewRequest("POST", "/upload-resume", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message  string          `json:"message"`
		ResumeID int             `json:"resume_id"`
		Analysis analysis.Record `json:"analysis"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ResumeID == 0 {
		t.Error("expected assigned resume id")
	}
	if resp.Analysis.Name != "Test Person" {
		t.Errorf("analysis name: %q", resp.Analysis.Name)
	}
	if resp.Analysis.Filename != "resume.pdf" {
		t.Errorf("analysis filename: %q", resp.Analysis.Filename)
	}

	// The record is visible in the listing.
	req = httptest.NewRequest("GET", "/resumes", nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var records []analysis.Record
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].ID != resp.ResumeID {
		t.Errorf("listing: %+v", records)
	}
}

func TestDetailNotFound(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/resume/99", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Resume not found") {
		t.Errorf("body: %s", w.Body.String())
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	srv := newTestServer(t)

	body, contentType := multipartBody(t, "resume.pdf", []byte("%PDF-1.4 fake"))
	req := httptest.NewRequest("POST", "/upload-resume", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("upload: %d", w.Code)
	}
	var resp struct {
		ResumeID int `json:"resume_id"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	req = httptest.NewRequest("DELETE", "/resume/1", nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/resume/1", nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}

	// Deleting again reports not found.
	req = httptest.NewRequest("DELETE", "/resume/1", nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", w.Code)
	}
}

func TestInvalidIDRejected(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/resume/abc", "/resume/0", "/resume/-3"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
		}
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("OPTIONS", "/health", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestStatusFeedBroadcastsUploadProgress(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/status"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	body, contentType := multipartBody(t, "resume.pdf", []byte("%PDF-1.4 fake"))
	resp, err := http.Post(ts.URL+"/upload-resume", contentType, body)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	var ev struct {
		Stage    string `json:"stage"`
		Filename string `json:"filename"`
		ResumeID int    `json:"resume_id"`
	}
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("reading first event: %v", err)
	}
	if ev.Stage != "received" || ev.Filename != "resume.pdf" {
		t.Errorf("first event: %+v", ev)
	}
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("reading second event: %v", err)
	}
	if ev.Stage != "completed" || ev.ResumeID == 0 {
		t.Errorf("second event: %+v", ev)
	}
}
