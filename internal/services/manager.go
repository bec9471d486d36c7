// Package services provides service orchestration for the TUI.
package services

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/oakbery/spotscope-tui/internal/config"
	"github.com/oakbery/spotscope-tui/internal/models"
	"github.com/oakbery/spotscope-tui/internal/services/tracksource"
)

type (
	// DatasetChangedEvent is emitted when the record snapshot changes: on
	// initial load and on every watched-file reload.
	DatasetChangedEvent struct {
		Tracks []models.Track
		Stats  models.DatasetStats
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (DatasetChangedEvent) isServiceEvent() {}
func (ErrorEvent) isServiceEvent()          {}

// Manager orchestrates services and event routing.
type Manager struct {
	mu          sync.RWMutex
	source      *tracksource.Service
	cfg         *config.Config
	eventChan   chan ServiceEvent
	stopChan    chan struct{}
	subscribers []chan ServiceEvent
}

// NewManager creates a new service manager and loads the dataset.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{
		cfg:       cfg,
		eventChan: make(chan ServiceEvent, 100),
		stopChan:  make(chan struct{}),
	}

	var err error
	m.source, err = tracksource.New(cfg.DatasetPath, cfg.WatchDataset)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dataset service: %w", err)
	}

	go m.routeEvents()

	return m, nil
}

// routeEvents routes events from individual services to subscribers.
func (m *Manager) routeEvents() {
	for {
		select {
		case event := <-m.source.Events():
			m.handleSourceEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

// handleSourceEvent converts and broadcasts dataset events.
func (m *Manager) handleSourceEvent(event tracksource.Event) {
	switch event.Type {
	case tracksource.EventLoaded, tracksource.EventReloaded:
		stats := m.source.GetStats()
		m.broadcast(DatasetChangedEvent{
			Tracks: m.source.GetTracks(),
			Stats:  stats,
		})

		if event.Type == tracksource.EventReloaded && m.cfg.NotifyOnReload {
			title := "Dataset reloaded"
			body := fmt.Sprintf("%d rows (%d valid)", stats.RowsLoaded, stats.RowsValid)
			_ = beeep.Notify(title, body, "")
		}

	case tracksource.EventError:
		m.broadcast(ErrorEvent{
			Service: "dataset",
			Error:   event.Error,
		})

		if m.cfg.NotifyOnReload {
			_ = beeep.Notify("Dataset load failed", event.Error.Error(), "")
		}
	}
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	// Send to main event channel
	select {
	case m.eventChan <- event:
	default:
	}

	// Send to subscribers
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, waitForEvent(ch)
}

// waitForEvent returns a tea.Cmd that waits for the next event.
func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return waitForEvent(ch)
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Reload asks the dataset service to re-read its file. The result comes
// back asynchronously as a DatasetChangedEvent or ErrorEvent.
func (m *Manager) Reload() {
	m.source.Reload()
}

// GetTracks returns the current record snapshot.
func (m *Manager) GetTracks() []models.Track {
	return m.source.GetTracks()
}

// GetStats returns summary statistics for the current snapshot.
func (m *Manager) GetStats() models.DatasetStats {
	return m.source.GetStats()
}

// Source returns the dataset service.
func (m *Manager) Source() *tracksource.Service {
	return m.source
}

// Close stops event routing and shuts down services.
func (m *Manager) Close() error {
	close(m.stopChan)

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	return m.source.Close()
}
