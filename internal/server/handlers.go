package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ziadkadry99/resume-radar/internal/analysis"
)

// maxUploadBytes is the server-side ceiling on resume size. It matches the
// client-side limit so neither side accepts what the other rejects.
const maxUploadBytes = 10 << 20

// uploadResponse is the payload for a successful upload.
type uploadResponse struct {
	Message  string           `json:"message"`
	ResumeID int              `json:"resume_id"`
	Analysis *analysis.Record `json:"analysis"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+1<<16)

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		respondError(w, http.StatusBadRequest, "Only PDF files are allowed")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respondError(w, http.StatusBadRequest, "reading upload: "+err.Error())
		return
	}
	if len(data) > maxUploadBytes {
		respondError(w, http.StatusRequestEntityTooLarge, "file exceeds the 10 MB size limit")
		return
	}

	s.hub.Broadcast(statusEvent{Stage: "received", Filename: header.Filename})

	rec, rawText, err := s.analyzer.Analyze(r.Context(), data)
	if err != nil {
		log.Printf("server: analysis failed for %s: %v", header.Filename, err)
		s.hub.Broadcast(statusEvent{Stage: "failed", Filename: header.Filename})
		respondError(w, http.StatusInternalServerError, "Error processing resume: "+err.Error())
		return
	}

	storedName := s.savePDF(header.Filename, data)

	id, err := s.store.Create(r.Context(), rec, header.Filename, storedName, rawText)
	if err != nil {
		log.Printf("server: storing analysis for %s: %v", header.Filename, err)
		respondError(w, http.StatusInternalServerError, "Error saving analysis")
		return
	}
	rec.ID = id
	rec.Filename = header.Filename

	s.hub.Broadcast(statusEvent{Stage: "completed", Filename: header.Filename, ResumeID: id})

	respondJSON(w, http.StatusOK, uploadResponse{
		Message:  "Resume uploaded and analyzed successfully",
		ResumeID: id,
		Analysis: rec,
	})
}

// savePDF writes the original upload to disk under a random name. Failures
// are logged but never fail the request; the analysis is what matters.
func (s *Server) savePDF(filename string, data []byte) string {
	dir, err := s.uploadsDir()
	if err != nil {
		log.Printf("server: creating uploads dir: %v", err)
		return ""
	}
	storedName := uuid.New().String() + ".pdf"
	if err := os.WriteFile(filepath.Join(dir, storedName), data, 0o644); err != nil {
		log.Printf("server: saving %s: %v", filename, err)
		return ""
	}
	return storedName
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context())
	if err != nil {
		log.Printf("server: listing resumes: %v", err)
		respondError(w, http.StatusInternalServerError, "Error listing resumes")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		log.Printf("server: getting resume %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Error loading resume")
		return
	}
	if rec == nil {
		respondError(w, http.StatusNotFound, "Resume not found")
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	storedName, err := s.store.StoredName(r.Context(), id)
	if err != nil {
		log.Printf("server: %v", err)
	}

	existed, err := s.store.Delete(r.Context(), id)
	if err != nil {
		log.Printf("server: deleting resume %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Error deleting resume")
		return
	}
	if !existed {
		respondError(w, http.StatusNotFound, "Resume not found")
		return
	}

	if storedName != "" {
		path := filepath.Join(s.cfg.DataDir, "uploads", storedName)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("server: removing %s: %v", path, err)
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Resume deleted successfully"})
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid resume id")
		return 0, false
	}
	return id, true
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}
