package web

import (
	"context"
	"errors"
	"html/template"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ziadkadry99/resume-radar/internal/client"
	"github.com/ziadkadry99/resume-radar/internal/render"
)

// Web serves the resume analyzer UI. Pages are rendered server-side from the
// orchestrator's state; the small amount of page JS handles drag & drop, the
// detail modal, and delete confirmation.
type Web struct {
	addr       string
	orch       *Orchestrator
	router     chi.Router
	httpServer *http.Server

	indexTmpl   *template.Template
	historyTmpl *template.Template
	modalTmpl   *template.Template
}

// New creates the UI server on the given listen address.
func New(addr string, orch *Orchestrator) *Web {
	w := &Web{
		addr:        addr,
		orch:        orch,
		indexTmpl:   template.Must(template.New("index").Parse(indexTemplate)),
		historyTmpl: template.Must(template.New("history").Parse(historyTemplate)),
		modalTmpl:   template.Must(template.New("modal").Parse(modalTemplate)),
	}
	w.router = w.buildRouter()
	return w
}

func (w *Web) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", w.handleIndex)
	r.Post("/upload", w.handleUpload)
	r.Post("/reset", w.handleReset)
	r.Get("/history", w.handleHistory)
	r.Get("/resume/{id}/fragment", w.handleFragment)
	r.Post("/resume/{id}/delete", w.handleDelete)

	r.Get("/static/style.css", serveAsset("text/css; charset=utf-8", styleCSS))
	r.Get("/static/app.js", serveAsset("application/javascript; charset=utf-8", appJS))

	return r
}

// Router returns the chi router, mainly for tests.
func (w *Web) Router() chi.Router { return w.router }

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", contentType)
		rw.Write([]byte(body))
	}
}

type indexData struct {
	Snapshot
	MaxUploadMB int
}

func (w *Web) handleIndex(rw http.ResponseWriter, r *http.Request) {
	data := indexData{
		Snapshot:    w.orch.Snapshot(),
		MaxUploadMB: client.MaxUploadBytes >> 20,
	}
	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := w.indexTmpl.Execute(rw, data); err != nil {
		log.Printf("web: rendering index: %v", err)
	}
}

func (w *Web) handleUpload(rw http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(rw, r.Body, client.MaxUploadBytes+1<<16)

	file, header, err := r.FormFile("file")
	if err != nil {
		w.orch.Flash("No file was selected.", true)
		http.Redirect(rw, r, "/", http.StatusSeeOther)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		w.orch.Flash("Reading the file failed: "+err.Error(), true)
		http.Redirect(rw, r, "/", http.StatusSeeOther)
		return
	}

	err = w.orch.Upload(r.Context(), header.Filename, data)
	switch {
	case err == nil:
		w.orch.Flash("Resume analyzed successfully.", false)
	case errors.Is(err, ErrBusy):
		http.Error(rw, "An upload is already in progress. Please wait for it to finish.", http.StatusConflict)
		return
	default:
		var verr *client.ValidationError
		if errors.As(err, &verr) {
			w.orch.Flash(verr.Reason, true)
		} else {
			w.orch.Flash("Analysis failed: "+err.Error(), true)
		}
	}
	http.Redirect(rw, r, "/", http.StatusSeeOther)
}

func (w *Web) handleReset(rw http.ResponseWriter, r *http.Request) {
	w.orch.Reset()
	http.Redirect(rw, r, "/", http.StatusSeeOther)
}

type historyRow struct {
	ID       int
	Filename string
	Name     string
	Email    string
	Uploaded string
	Rating   string
}

type historyData struct {
	Rows   []historyRow
	Notice string
	IsErr  bool
}

func (w *Web) handleHistory(rw http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("refresh") == "1"
	var data historyData
	records, err := w.orch.History(r.Context(), force)
	if err != nil {
		// A failed fetch becomes a transient notice on an otherwise
		// intact page rather than replacing the page with an error.
		data.Notice = "Loading history failed: " + err.Error()
		data.IsErr = true
	} else {
		snap := w.orch.Snapshot()
		data.Notice = snap.Notice
		data.IsErr = snap.NoticeErr
		for _, rec := range records {
			data.Rows = append(data.Rows, historyRow{
				ID:       rec.ID,
				Filename: rec.Filename,
				Name:     rec.Name,
				Email:    rec.Email,
				Uploaded: render.FormatTimestamp(rec.UploadDate),
				Rating:   strconv.FormatFloat(rec.ResumeRating.Float(), 'f', 1, 64),
			})
		}
	}

	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := w.historyTmpl.Execute(rw, data); err != nil {
		log.Printf("web: rendering history: %v", err)
	}
}

// handleFragment returns the modal's inner HTML for one stored resume. The
// page JS fetches this and injects it into the modal shell.
func (w *Web) handleFragment(rw http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(rw, "invalid resume id", http.StatusBadRequest)
		return
	}

	frags, err := w.orch.Detail(r.Context(), id)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			http.Error(rw, "Resume not found", http.StatusNotFound)
			return
		}
		http.Error(rw, "Loading resume failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := w.modalTmpl.Execute(rw, frags); err != nil {
		log.Printf("web: rendering modal fragment: %v", err)
	}
}

func (w *Web) handleDelete(rw http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(rw, "invalid resume id", http.StatusBadRequest)
		return
	}

	if err := w.orch.Delete(r.Context(), id); err != nil {
		w.orch.Flash("Deleting the resume failed: "+err.Error(), true)
	} else {
		w.orch.Flash("Resume deleted.", false)
	}
	http.Redirect(rw, r, "/history?refresh=1", http.StatusSeeOther)
}

// Start begins listening on the configured address.
func (w *Web) Start() error {
	w.httpServer = &http.Server{
		Addr:              w.addr,
		Handler:           w.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Printf("resume-radar UI listening on %s", w.addr)
	return w.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (w *Web) Shutdown(ctx context.Context) error {
	if w.httpServer != nil {
		return w.httpServer.Shutdown(ctx)
	}
	return nil
}
