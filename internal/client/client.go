package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ziadkadry99/resume-radar/internal/analysis"
)

const (
	// MaxUploadBytes is the client-side ceiling on resume size, enforced
	// before any request is sent.
	MaxUploadBytes = 10 << 20

	uploadRetries   = 2
	retryDelay      = 800 * time.Millisecond
	historyCacheTTL = 30 * time.Second
)

// ValidationError reports a file rejected before any network I/O.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// APIError reports a failed backend call. Status is the HTTP status code when
// a response was received, 0 on transport failure.
type APIError struct {
	Op     string
	Status int
	Err    error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: backend returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// Client talks to the resume analysis backend. It owns a single process-wide
// history cache with a fixed TTL; all other calls go straight to the network.
type Client struct {
	baseURL    string
	httpc      *http.Client
	retries    int
	retryDelay time.Duration

	mu        sync.Mutex
	history   []analysis.Record
	fetchedAt time.Time
	cacheTTL  time.Duration
	now       func() time.Time
}

// New creates a Client for the backend at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpc:      &http.Client{},
		retries:    uploadRetries,
		retryDelay: retryDelay,
		cacheTTL:   historyCacheTTL,
		now:        time.Now,
	}
}

// uploadResponse mirrors the backend's upload payload.
type uploadResponse struct {
	Message  string          `json:"message"`
	ResumeID int             `json:"resume_id"`
	Analysis analysis.Record `json:"analysis"`
}

// SubmitResume validates the file locally, then uploads it for analysis.
// Validation failures return a *ValidationError without touching the network.
// Network-level failures (transport error or non-2xx) are retried up to two
// more times with a fixed delay; the last error is surfaced if every attempt
// fails.
func (c *Client) SubmitResume(ctx context.Context, filename string, data []byte) (*analysis.Record, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return nil, &ValidationError{Reason: "only PDF files are supported"}
	}
	if len(data) > MaxUploadBytes {
		return nil, &ValidationError{Reason: fmt.Sprintf("file exceeds the %d MB size limit", MaxUploadBytes>>20)}
	}

	body, contentType, err := buildMultipart(filename, data)
	if err != nil {
		return nil, fmt.Errorf("building upload body: %w", err)
	}

	var lastErr *APIError
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}

		rec, apiErr := c.tryUpload(ctx, body, contentType)
		if apiErr == nil {
			return rec, nil
		}
		lastErr = apiErr
	}
	return nil, lastErr
}

func (c *Client) tryUpload(ctx context.Context, body []byte, contentType string) (*analysis.Record, *APIError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-resume", bytes.NewReader(body))
	if err != nil {
		return nil, &APIError{Op: "upload", Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &APIError{Op: "upload", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, &APIError{Op: "upload", Status: resp.StatusCode}
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return nil, &APIError{Op: "upload", Err: fmt.Errorf("decoding response: %w", err)}
	}
	rec := ur.Analysis
	if rec.ID == 0 {
		rec.ID = ur.ResumeID
	}
	return &rec, nil
}

func buildMultipart(filename string, data []byte) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// FetchHistory returns the history listing. A live cache is returned without
// a network call unless forceRefresh is set; a fresh fetch repopulates the
// cache with a new timestamp.
func (c *Client) FetchHistory(ctx context.Context, forceRefresh bool) ([]analysis.Record, error) {
	c.mu.Lock()
	if !forceRefresh && c.history != nil && c.now().Sub(c.fetchedAt) < c.cacheTTL {
		cached := c.history
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	var records []analysis.Record
	if err := c.getJSON(ctx, "history", "/resumes", &records); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.history = records
	c.fetchedAt = c.now()
	c.mu.Unlock()
	return records, nil
}

// Invalidate drops the cached history listing so the next load is fresh.
func (c *Client) Invalidate() {
	c.mu.Lock()
	c.history = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

// FetchDetail returns one record by id. Details are never cached.
func (c *Client) FetchDetail(ctx context.Context, id int) (*analysis.Record, error) {
	var rec analysis.Record
	if err := c.getJSON(ctx, "detail", fmt.Sprintf("/resume/%d", id), &rec); err != nil {
		return nil, err
	}
	if rec.ID == 0 {
		rec.ID = id
	}
	return &rec, nil
}

// DeleteRecord deletes one record by id. Deletion is irreversible; callers
// are responsible for confirming with the user first. The history cache is
// invalidated so the next listing reflects the deletion.
func (c *Client) DeleteRecord(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/resume/%d", c.baseURL, id), nil)
	if err != nil {
		return &APIError{Op: "delete", Err: err}
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return &APIError{Op: "delete", Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Op: "delete", Status: resp.StatusCode}
	}
	c.Invalidate()
	return nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return &APIError{Op: op, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
