package web

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ziadkadry99/resume-radar/internal/analysis"
	"github.com/ziadkadry99/resume-radar/internal/client"
	"github.com/ziadkadry99/resume-radar/internal/render"
)

// State is the analysis view's lifecycle position.
type State int

const (
	// StateIdle shows the upload prompt with no results.
	StateIdle State = iota
	// StateLoading means an upload is in flight; further uploads are refused.
	StateLoading
	// StateShowing means a completed analysis is on screen.
	StateShowing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateShowing:
		return "showing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrBusy is returned when an upload is refused because one is already
// running.
var ErrBusy = errors.New("an upload is already in progress")

// Orchestrator owns the analysis view state. All transitions go through it:
// uploads move Idle/Showing -> Loading -> Showing (or back on failure), the
// modal overlays whatever main state is current, and a completed upload that
// lost a race with a reset is discarded rather than shown.
type Orchestrator struct {
	client  *client.Client
	results *render.Renderer
	modal   *render.Renderer

	mu        sync.Mutex
	state     State
	gen       uint64 // bumped whenever the view is reset or replaced
	current   *analysis.Record
	fragments *render.Fragments
	notice    string
	noticeErr bool
}

// NewOrchestrator creates an Orchestrator talking to the given backend client.
func NewOrchestrator(c *client.Client) *Orchestrator {
	return &Orchestrator{
		client:  c,
		results: render.New(render.TargetResults),
		modal:   render.New(render.TargetModal),
		state:   StateIdle,
	}
}

// Snapshot is a consistent copy of the view state for page rendering.
type Snapshot struct {
	State     State
	Record    *analysis.Record
	Fragments *render.Fragments
	Notice    string
	NoticeErr bool
}

// Snapshot returns the current view state. The pending flash notice is
// consumed by the call.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	snap := Snapshot{
		State:     o.state,
		Record:    o.current,
		Fragments: o.fragments,
		Notice:    o.notice,
		NoticeErr: o.noticeErr,
	}
	o.notice = ""
	o.noticeErr = false
	return snap
}

// Flash queues a one-shot notice for the next page render.
func (o *Orchestrator) Flash(msg string, isErr bool) {
	o.mu.Lock()
	o.notice = msg
	o.noticeErr = isErr
	o.mu.Unlock()
}

// Upload submits a resume for analysis and, on success, switches the view to
// the new results. While the upload runs the view is in StateLoading and any
// concurrent Upload returns ErrBusy. On failure the view falls back to the
// upload prompt, discarding any previously shown results. The history cache
// is left alone either way; the history tab refreshes on its own schedule.
func (o *Orchestrator) Upload(ctx context.Context, filename string, data []byte) error {
	o.mu.Lock()
	if o.state == StateLoading {
		o.mu.Unlock()
		return ErrBusy
	}
	o.state = StateLoading
	o.gen++
	gen := o.gen
	o.mu.Unlock()

	rec, err := o.client.SubmitResume(ctx, filename, data)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.gen != gen {
		// The view moved on while this upload ran; its outcome is stale.
		return nil
	}
	if err != nil {
		o.state = StateIdle
		o.current = nil
		o.fragments = nil
		return err
	}
	o.state = StateShowing
	o.current = rec
	frags := o.results.Analysis(rec)
	o.fragments = &frags
	return nil
}

// Reset clears the results view back to the upload prompt. Any in-flight
// upload's completion is discarded.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	o.gen++
	o.state = StateIdle
	o.current = nil
	o.fragments = nil
	o.mu.Unlock()
}

// History returns the resume listing via the client's cached fetch.
func (o *Orchestrator) History(ctx context.Context, forceRefresh bool) ([]analysis.Record, error) {
	return o.client.FetchHistory(ctx, forceRefresh)
}

// Detail renders the modal fragments for one stored resume. The modal is an
// overlay; fetching it never disturbs the main view state.
func (o *Orchestrator) Detail(ctx context.Context, id int) (*render.Fragments, error) {
	rec, err := o.client.FetchDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	frags := o.modal.Analysis(rec)
	return &frags, nil
}

// Delete removes a stored resume. If its analysis is the one currently on
// screen the view falls back to the upload prompt.
func (o *Orchestrator) Delete(ctx context.Context, id int) error {
	if err := o.client.DeleteRecord(ctx, id); err != nil {
		return err
	}
	o.mu.Lock()
	if o.current != nil && o.current.ID == id {
		o.gen++
		o.state = StateIdle
		o.current = nil
		o.fragments = nil
	}
	o.mu.Unlock()
	return nil
}
