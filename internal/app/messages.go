package app

import (
	"time"

	"github.com/oakbery/spotscope-tui/internal/models"
	"github.com/oakbery/spotscope-tui/internal/pipeline"
	"github.com/oakbery/spotscope-tui/internal/services"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// StartLoadingMsg signals that a resource is starting to load.
type StartLoadingMsg struct {
	Resource string
}

// StopLoadingMsg signals that a resource has finished loading.
type StopLoadingMsg struct {
	Resource string
}

// DatasetLoadedMsg carries a fresh record snapshot from the service layer.
type DatasetLoadedMsg struct {
	Tracks []models.Track
	Stats  models.DatasetStats
}

// SnapshotMsg carries a recomputed aggregation frame from the pipeline.
type SnapshotMsg struct {
	Frame pipeline.Frame[Snapshot]
}

// RefreshMsg requests a re-read of the dataset file.
type RefreshMsg struct{}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}

// ExportMsg requests exporting the current rankings to CSV files.
type ExportMsg struct {
	Dir string
}

// ExportResultMsg contains the result of an export operation.
type ExportResultMsg struct {
	Paths   []string
	Success bool
	Error   error
}
