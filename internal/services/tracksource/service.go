// Package tracksource loads the track dataset and watches it for changes.
package tracksource

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/oakbery/spotscope-tui/internal/dataset"
	"github.com/oakbery/spotscope-tui/internal/db"
	"github.com/oakbery/spotscope-tui/internal/logger"
	"github.com/oakbery/spotscope-tui/internal/models"
)

// EventType defines the type of dataset event.
type EventType int

const (
	// EventLoaded is emitted after the initial load completes.
	EventLoaded EventType = iota
	// EventReloaded is emitted when a watched dataset file changes and is
	// re-read successfully.
	EventReloaded
	// EventError is emitted when loading or watching fails.
	EventError
)

// Event represents a dataset service event.
type Event struct {
	Type  EventType
	Error error
}

// Service owns one dataset: it loads the file, keeps the latest record
// snapshot, and re-reads on external changes. A failed load leaves the
// snapshot empty; downstream treats "no data yet" and "load failed" the
// same way and renders a blank state.
type Service struct {
	mu            sync.RWMutex
	tracks        []models.Track
	stats         models.DatasetStats
	filePath      string
	watcher       *fsnotify.Watcher
	eventChan     chan Event
	stopChan      chan struct{}
	debounceTimer *time.Timer
}

// New creates the service and performs the initial load. When watch is
// true, the dataset file is monitored for external edits. A load failure is
// reported as an event, not a construction error; only a broken watcher
// setup fails New.
func New(filePath string, watch bool) (*Service, error) {
	s := &Service{
		filePath:  filePath,
		eventChan: make(chan Event, 100),
		stopChan:  make(chan struct{}),
	}

	if err := s.reload(); err != nil {
		logger.Error("initial dataset load failed", "path", filePath, "error", err)
		s.sendEvent(Event{Type: EventError, Error: err})
	} else {
		s.sendEvent(Event{Type: EventLoaded})
	}

	if watch {
		if err := s.startWatcher(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Events returns the event channel for subscribing to dataset changes.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// Path returns the dataset file path.
func (s *Service) Path() string {
	return s.filePath
}

// GetTracks returns a copy of the current record snapshot.
func (s *Service) GetTracks() []models.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tracks := make([]models.Track, len(s.tracks))
	copy(tracks, s.tracks)
	return tracks
}

// GetStats returns summary statistics for the current snapshot.
func (s *Service) GetStats() models.DatasetStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Reload re-reads the dataset on demand and reports the result as an event,
// exactly as an external file change would.
func (s *Service) Reload() {
	s.handleFileChange()
}

// reload reads the dataset file and replaces the snapshot. The previous
// snapshot is discarded even on failure so a dataset that turned invalid
// renders as empty rather than stale.
func (s *Service) reload() error {
	tracks, err := load(s.filePath)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.tracks = nil
		s.stats = models.DatasetStats{SourcePath: s.filePath}
		return err
	}

	s.tracks = tracks
	s.stats = summarize(tracks, s.filePath)
	return nil
}

// load dispatches on the file extension: SQLite databases go through the
// db package, everything else is parsed as CSV.
func load(path string) ([]models.Track, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return db.LoadSQLite(context.Background(), path)
	default:
		return dataset.LoadCSV(path)
	}
}

// summarize computes the info-tab statistics for a snapshot.
func summarize(tracks []models.Track, path string) models.DatasetStats {
	valid := dataset.Filter(tracks, dataset.DefaultRequirements)

	artists := make(map[string]struct{})
	genres := make(map[string]struct{})
	for i := range valid {
		if valid[i].ArtistName != "" {
			artists[valid[i].ArtistName] = struct{}{}
		}
		for _, g := range valid[i].Genres {
			genres[g] = struct{}{}
		}
	}

	return models.DatasetStats{
		RowsLoaded:      len(tracks),
		RowsValid:       len(valid),
		DistinctArtists: len(artists),
		DistinctGenres:  len(genres),
		SourcePath:      path,
	}
}

// startWatcher starts the file system watcher.
func (s *Service) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	s.watcher = watcher

	// Watch the directory (to catch atomic replace via rename)
	dir := filepath.Dir(s.filePath)
	if err := watcher.Add(dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return err
	}

	go s.watchLoop()
	return nil
}

// watchLoop handles file system events with debouncing.
func (s *Service) watchLoop() {
	const debounceInterval = 100 * time.Millisecond

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			// Only care about our dataset file
			if filepath.Base(event.Name) != filepath.Base(s.filePath) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				// Debounce rapid changes
				if s.debounceTimer != nil {
					s.debounceTimer.Stop()
				}
				s.debounceTimer = time.AfterFunc(debounceInterval, func() {
					s.handleFileChange()
				})
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.sendEvent(Event{Type: EventError, Error: err})

		case <-s.stopChan:
			return
		}
	}
}

// handleFileChange re-reads the dataset after an external change.
func (s *Service) handleFileChange() {
	if err := s.reload(); err != nil {
		logger.Error("dataset reload failed", "path", s.filePath, "error", err)
		s.sendEvent(Event{Type: EventError, Error: err})
		return
	}

	logger.Info("dataset reloaded", "path", s.filePath, "rows", s.GetStats().RowsLoaded)
	s.sendEvent(Event{Type: EventReloaded})
}

// sendEvent sends an event to the event channel non-blocking.
func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
		// Channel full, drop oldest event
		select {
		case <-s.eventChan:
		default:
		}
		select {
		case s.eventChan <- event:
		default:
		}
	}
}

// Close stops the watcher and releases resources.
func (s *Service) Close() error {
	close(s.stopChan)
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
