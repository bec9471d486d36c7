// Package pipeline implements the reactive recompute core: the latest
// record snapshot and viewport size feed a pure compute function, and every
// change to either re-runs the whole aggregate/rank/domain/render chain and
// publishes the result to subscribers. The package knows nothing about the
// terminal; it is plain publish-subscribe, unit-testable on its own.
package pipeline

import (
	"sync"
	"time"

	"github.com/oakbery/spotscope-tui/internal/models"
)

// Size is the viewport in character cells.
type Size struct {
	Width  int
	Height int
}

// Measured reports whether the viewport has been measured yet. An
// unmeasured viewport means "cannot render yet", not an error.
func (s Size) Measured() bool {
	return s.Width > 0 && s.Height > 0
}

// Compute derives a full result from a record snapshot and viewport size.
// It must be pure: derived values are recomputed wholesale on every call,
// never cached across snapshots.
type Compute[T any] func(tracks []models.Track, size Size) T

// Frame is one published recomputation result.
type Frame[T any] struct {
	Result T
	Size   Size
}

// Pipeline holds the two reactive inputs and fans computed frames out to
// subscribers. Recomputation is synchronous and atomic: a subscriber never
// observes a frame mixing an old snapshot with a new size.
type Pipeline[T any] struct {
	mu       sync.Mutex
	compute  Compute[T]
	debounce time.Duration

	tracks []models.Track
	size   Size

	subscribers map[int]func(Frame[T])
	nextID      int

	pending *time.Timer
	closed  bool
}

// New creates a pipeline around compute. Viewport updates are debounced by
// the given interval; zero disables debouncing. Debouncing only reduces
// intermediate render frequency, it never changes the final frame.
func New[T any](compute Compute[T], debounce time.Duration) *Pipeline[T] {
	return &Pipeline[T]{
		compute:     compute,
		debounce:    debounce,
		subscribers: make(map[int]func(Frame[T])),
	}
}

// Subscribe registers an observer for computed frames and returns a
// function that detaches it. Detaching is required on teardown so no
// dangling callback outlives its view.
func (p *Pipeline[T]) Subscribe(fn func(Frame[T])) (unsubscribe func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.subscribers[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subscribers, id)
	}
}

// SetTracks replaces the record snapshot and recomputes immediately.
func (p *Pipeline[T]) SetTracks(tracks []models.Track) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tracks = tracks
	p.publishLocked()
}

// SetSize replaces the viewport size. The recompute is debounced; a burst
// of resize events produces a single frame for the final size.
func (p *Pipeline[T]) SetSize(size Size) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || size == p.size {
		return
	}
	p.size = size

	if p.debounce <= 0 {
		p.publishLocked()
		return
	}

	if p.pending != nil {
		p.pending.Stop()
	}
	p.pending = time.AfterFunc(p.debounce, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.pending = nil
		p.publishLocked()
	})
}

// Flush forces any pending debounced recompute to run now.
func (p *Pipeline[T]) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending != nil {
		p.pending.Stop()
		p.pending = nil
		p.publishLocked()
	}
}

// Current recomputes and returns a frame for the present inputs without
// publishing it.
func (p *Pipeline[T]) Current() Frame[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Frame[T]{Result: p.compute(p.tracks, p.size), Size: p.size}
}

// Close detaches all subscribers and cancels pending work.
func (p *Pipeline[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	if p.pending != nil {
		p.pending.Stop()
		p.pending = nil
	}
	p.subscribers = make(map[int]func(Frame[T]))
}

// publishLocked recomputes and delivers one frame to every subscriber.
// Callers hold p.mu, so delivery is atomic with respect to input changes.
// An unmeasured viewport defers publication entirely.
func (p *Pipeline[T]) publishLocked() {
	if p.closed || !p.size.Measured() {
		return
	}
	frame := Frame[T]{Result: p.compute(p.tracks, p.size), Size: p.size}
	for _, fn := range p.subscribers {
		fn(frame)
	}
}
