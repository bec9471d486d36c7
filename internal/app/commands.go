package app

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oakbery/spotscope-tui/internal/models"
	"github.com/oakbery/spotscope-tui/internal/pipeline"
	"github.com/oakbery/spotscope-tui/internal/services"
)

const (
	// DefaultTickInterval is the default interval between ticks.
	DefaultTickInterval = 2 * time.Second

	// DefaultNotificationDuration is the default duration for notifications.
	DefaultNotificationDuration = 5 * time.Second

	// QuickNotificationDuration is for brief notifications.
	QuickNotificationDuration = 3 * time.Second

	// LongNotificationDuration is for important notifications.
	LongNotificationDuration = 10 * time.Second
)

// tickCmd returns a command that sends a TickMsg after the specified interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// defaultTickCmd returns a command that sends a TickMsg after the default interval.
func defaultTickCmd() tea.Cmd {
	return tickCmd(DefaultTickInterval)
}

// loadDatasetCmd returns a command that pulls the current snapshot from the
// service layer.
func loadDatasetCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		return DatasetLoadedMsg{
			Tracks: mgr.GetTracks(),
			Stats:  mgr.GetStats(),
		}
	}
}

// reloadDatasetCmd asks the service layer to re-read the dataset file. The
// fresh data arrives later as a service event.
func reloadDatasetCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		mgr.Reload()
		return StartLoadingMsg{Resource: "dataset"}
	}
}

// subscribeToServicesCmd returns a command that subscribes to service events.
func subscribeToServicesCmd(mgr *services.Manager) tea.Cmd {
	ch, _ := mgr.Subscribe()
	return func() tea.Msg {
		return SubscriptionEventMsg{Channel: ch}
	}
}

// waitForServiceEventCmd returns a command that waits for the next service event.
func waitForServiceEventCmd(ch <-chan services.ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return ServiceEventMsg{Event: event}
	}
}

// waitForSnapshotCmd returns a command that waits for the next aggregation
// frame from the pipeline.
func waitForSnapshotCmd(ch <-chan pipeline.Frame[Snapshot]) tea.Cmd {
	return func() tea.Msg {
		frame, ok := <-ch
		if !ok {
			return nil
		}
		return SnapshotMsg{Frame: frame}
	}
}

// clearNotificationCmd returns a command that removes a notification after a delay.
func clearNotificationCmd(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

// notifySuccessCmd returns a command that adds a success notification.
func notifySuccessCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationSuccess,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyErrorCmd returns a command that adds an error notification.
func notifyErrorCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationError,
			Message:  message,
			Duration: LongNotificationDuration,
		}
	}
}

// notifyInfoCmd returns a command that adds an info notification.
func notifyInfoCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationInfo,
			Message:  message,
			Duration: QuickNotificationDuration,
		}
	}
}

// exportCmd writes the current rankings to timestamped CSV files in dir.
func exportCmd(dir string, snap Snapshot) tea.Cmd {
	return func() tea.Msg {
		paths, err := exportRankings(dir, snap, time.Now())
		if err != nil {
			return ExportResultMsg{Error: err}
		}
		return ExportResultMsg{Paths: paths, Success: true}
	}
}

// exportRankings writes one CSV per ranking axis and returns the paths.
func exportRankings(dir string, snap Snapshot, now time.Time) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export dir: %w", err)
	}

	stamp := now.Format("20060102-150405")
	sets := []struct {
		name   string
		groups []models.GroupSummary
	}{
		{"artists", snap.TopArtists},
		{"genres", snap.TopGenres},
		{"tracks", snap.TopTracks},
	}

	var paths []string
	for _, set := range sets {
		path := filepath.Join(dir, fmt.Sprintf("spotscope-%s-%s.csv", set.name, stamp))
		if err := writeRankingCSV(path, set.groups); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// writeRankingCSV writes a ranked group list with its per-group means.
func writeRankingCSV(path string, groups []models.GroupSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"rank", "key", "count", "avg_track_popularity", "avg_artist_followers", "avg_duration_ms"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for i := range groups {
		g := &groups[i]
		row := []string{
			strconv.Itoa(i + 1),
			g.Key,
			strconv.Itoa(g.Count),
			formatExportFloat(g.Mean(models.MetricTrackPopularity)),
			formatExportFloat(g.Mean(models.MetricFollowers)),
			formatExportFloat(g.Mean(models.MetricDurationMS)),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush export file: %w", err)
	}
	return nil
}

// formatExportFloat renders a mean for CSV output, with NaN as an empty cell.
func formatExportFloat(v float64) string {
	if v != v {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
