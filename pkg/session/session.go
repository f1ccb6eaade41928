// Package session schedules preview computations for documents that
// change over time. Each document carries a monotonically increasing
// version; edits debounce recomputation, at most one computation runs
// per document, and results for superseded versions are dropped rather
// than delivered out of order.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/zaydek/alignment-sanity/pkg/align"
	"github.com/zaydek/alignment-sanity/pkg/engine"
)

// DefaultDebounce is the delay between the last edit and recomputation.
const DefaultDebounce = 150 * time.Millisecond

// Result is a completed preview for one document version.
type Result struct {
	Doc          string
	Version      uint64
	Language     string
	Lines        []string
	Instructions []align.Instruction
}

// Handler receives results as they complete. It is called from the
// scheduler's worker goroutines, one call at a time per document.
type Handler func(Result)

// Scheduler coordinates debounced preview computation across documents.
type Scheduler struct {
	engine   *engine.Engine
	debounce time.Duration
	handler  Handler

	mu     sync.Mutex
	docs   map[string]*document
	closed bool
	wg     sync.WaitGroup
}

type document struct {
	version  uint64
	language string
	content  []byte
	timer    *time.Timer
	cancel   context.CancelFunc
}

// NewScheduler creates a Scheduler. A non-positive debounce falls back
// to DefaultDebounce.
func NewScheduler(eng *engine.Engine, debounce time.Duration, handler Handler) *Scheduler {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Scheduler{
		engine:   eng,
		debounce: debounce,
		handler:  handler,
		docs:     make(map[string]*document),
	}
}

// Update records a new version of a document and arms the debounce
// timer. It returns the version assigned to this content; only the
// newest version per document ever reaches the handler.
func (s *Scheduler) Update(doc, language string, content []byte) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0
	}

	d := s.docs[doc]
	if d == nil {
		d = &document{}
		s.docs[doc] = d
	}

	d.version++
	d.language = language
	d.content = content

	// A pending timer belongs to a superseded version.
	if d.timer != nil {
		d.timer.Stop()
	}
	version := d.version
	d.timer = time.AfterFunc(s.debounce, func() {
		s.compute(doc, version)
	})
	return version
}

// Version returns the current version of a document, 0 if unknown.
func (s *Scheduler) Version(doc string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d := s.docs[doc]; d != nil {
		return d.version
	}
	return 0
}

// Close stops all pending timers and cancels in-flight computations,
// then waits for workers to drain. No handler calls happen after Close
// returns.
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	for _, d := range s.docs {
		if d.timer != nil {
			d.timer.Stop()
		}
		if d.cancel != nil {
			d.cancel()
		}
	}
	s.mu.Unlock()
	s.wg.Wait()
}

// compute runs one preview computation for a document version, unless
// the document moved on while the timer was pending.
func (s *Scheduler) compute(doc string, version uint64) {
	s.mu.Lock()
	d := s.docs[doc]
	if s.closed || d == nil || d.version != version {
		s.mu.Unlock()
		return
	}

	// Supersede any computation still running for an older version.
	if d.cancel != nil {
		d.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	language := d.language
	content := d.content
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer cancel()

		lines, instructions, err := s.engine.PreviewLines(ctx, language, content)
		if err != nil {
			return
		}

		s.mu.Lock()
		stale := s.closed || s.docs[doc] == nil || s.docs[doc].version != version
		s.mu.Unlock()
		if stale || s.handler == nil {
			return
		}

		s.handler(Result{
			Doc:          doc,
			Version:      version,
			Language:     language,
			Lines:        lines,
			Instructions: instructions,
		})
	}()
}
