// Package session runs renders in the background for an interactive display
// and keeps the latest frame, progress and status line.
package session

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/output"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// ErrNothingToSave is returned by Save before the first render has finished
var ErrNothingToSave = errors.New("no finished render to save")

// Session owns one raytracer and at most one running render
type Session struct {
	raytracer *renderer.Raytracer
	savePath  string

	mu         sync.Mutex
	running    bool
	cancel     context.CancelFunc
	rowsDone   int
	totalRows  int
	image      *image.RGBA // Last finished render, without overlay
	frame      *image.RGBA // What the display shows
	generation int         // Incremented whenever frame changes
	status     string

	wg sync.WaitGroup
}

// New creates a session that saves to savePath
func New(raytracer *renderer.Raytracer, savePath string) *Session {
	return &Session{
		raytracer: raytracer,
		savePath:  savePath,
		status:    "Ready",
	}
}

// Start begins a render in the given mode. It returns false when a render
// is already running.
func (s *Session) Start(mode core.RenderMode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.running = true
	s.cancel = cancel
	s.rowsDone = 0
	s.totalRows = 0
	if mode == core.ModeFull {
		s.status = "Start rendering..."
	} else {
		s.status = "Drawing preview..."
	}

	s.wg.Add(1)
	go s.render(ctx, mode)
	return true
}

func (s *Session) render(ctx context.Context, mode core.RenderMode) {
	defer s.wg.Done()

	img, stats, err := s.raytracer.RenderContext(ctx, mode, func(rowsDone, totalRows int) {
		s.mu.Lock()
		s.rowsDone, s.totalRows = rowsDone, totalRows
		s.mu.Unlock()
	})

	frame := img
	if err == nil && mode == core.ModePreview {
		frame = output.Annotate(img, output.PreviewHint)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.cancel()
	if err != nil {
		s.status = fmt.Sprintf("Rendering stopped: %v", err)
		return
	}

	s.image = img
	s.frame = frame
	s.generation++
	if mode == core.ModeFull {
		s.status = fmt.Sprintf("Rendering done! (%v)", stats.Elapsed.Round(time.Millisecond))
	} else {
		s.status = "Preview ready"
	}
}

// Wait blocks until the running render, if any, has finished
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close cancels a running render and waits for it to stop
func (s *Session) Close() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	s.Wait()
}

// Frame returns the image to display and its generation. The image must not
// be modified.
func (s *Session) Frame() (*image.RGBA, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame, s.generation
}

// Progress reports finished scanlines of the running render
func (s *Session) Progress() (rowsDone, totalRows int, running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rowsDone, s.totalRows, s.running
}

// Status returns the current status line
func (s *Session) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Save writes the last finished render, without overlay, to the save path
func (s *Session) Save() error {
	s.mu.Lock()
	img := s.image
	s.mu.Unlock()

	err := ErrNothingToSave
	if img != nil {
		err = output.SavePNG(img, s.savePath)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = fmt.Sprintf("Something went wrong while saving: %v", err)
		return err
	}
	s.status = "Saved as " + s.savePath
	return nil
}
