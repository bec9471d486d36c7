package info

import (
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/oakbery/spotscope-tui/internal/ui/styles"
	"github.com/oakbery/spotscope-tui/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderDatasetCard())
	sections = append(sections, m.renderConfigCard())
	sections = append(sections, m.renderAboutCard())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Dataset, configuration and application information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderDatasetCard renders dataset statistics for the current snapshot.
func (m *Model) renderDatasetCard() string {
	stats := m.state.GetStats()
	snap := m.state.GetSnapshot()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Dataset"))
	rows = append(rows, "")
	rows = append(rows, m.renderRow("Source", stats.SourcePath))
	rows = append(rows, m.renderRow("Rows loaded", fmt.Sprintf("%d", stats.RowsLoaded)))
	rows = append(rows, m.renderRow("Rows valid", fmt.Sprintf("%d", stats.RowsValid)))
	rows = append(rows, m.renderRow("Distinct artists", fmt.Sprintf("%d", stats.DistinctArtists)))
	rows = append(rows, m.renderRow("Distinct genres", fmt.Sprintf("%d", stats.DistinctGenres)))
	rows = append(rows, m.renderRow("Avg track length", formatDuration(snap.AvgDuration)))

	if updated := m.state.GetLastUpdated(); !updated.IsZero() {
		rows = append(rows, m.renderRow("Loaded at", updated.Format("15:04:05")))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderConfigCard renders the active configuration.
func (m *Model) renderConfigCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Configuration"))
	rows = append(rows, "")

	if m.config != nil {
		rows = append(rows, m.renderRow("Dataset file", m.config.DatasetPath))
		rows = append(rows, m.renderRow("Export dir", m.config.ExportDir))
		rows = append(rows, m.renderRow("Resize debounce", m.config.ResizeDebounce.String()))
		rows = append(rows, m.renderRow("Watch dataset", fmt.Sprintf("%t", m.config.WatchDataset)))
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderAboutCard renders the version information card.
func (m *Model) renderAboutCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("About spotscope"))
	rows = append(rows, "")
	rows = append(rows, m.renderRow("Build", version.Info()))
	rows = append(rows, m.renderRow("Go version", runtime.Version()))
	rows = append(rows, m.renderRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

func (m *Model) cardWidth() int {
	cardWidth := m.width - 6
	if cardWidth < 50 {
		cardWidth = 50
	}
	if cardWidth > 80 {
		cardWidth = 80
	}
	return cardWidth
}

// formatDuration renders a mean track duration in minutes and seconds.
func formatDuration(ms float64) string {
	if ms != ms || ms <= 0 {
		return "n/a"
	}
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
