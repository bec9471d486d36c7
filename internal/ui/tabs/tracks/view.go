package tracks

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/oakbery/spotscope-tui/internal/models"
	"github.com/oakbery/spotscope-tui/internal/ui/components"
	"github.com/oakbery/spotscope-tui/internal/ui/styles"
)

var selectedRowStyle = lipgloss.NewStyle().
	Foreground(styles.Primary).
	Bold(true)

// View renders the tracks tab.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderTitle())

	snap := m.state.GetSnapshot()
	if len(snap.TopTracks) == 0 {
		sections = append(sections, styles.HelpStyle.Render(components.NoData))
		return styles.DocStyle.Width(m.width).Height(m.height).Render(
			lipgloss.JoinVertical(lipgloss.Left, sections...),
		)
	}

	if m.mode == modeScatter {
		sections = append(sections, m.renderScatter())
	} else {
		sections = append(sections, m.renderList(snap.TopTracks))
		sections = append(sections, "")
		sections = append(sections, m.renderSparkline(snap.TopTracks))
	}

	return styles.DocStyle.Width(m.width).Height(m.height).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Tracks")
	subtitle := styles.HelpStyle.Render("Top tracks by popularity, 's' for the follower scatter")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderList shows the ranked tracks with a scrolling window that keeps the
// selection visible.
func (m *Model) renderList(groups []models.GroupSummary) string {
	visible := m.height - 10
	if visible < 5 {
		visible = 5
	}
	if visible > len(groups) {
		visible = len(groups)
	}

	start := 0
	if m.selectedIndex >= visible {
		start = m.selectedIndex - visible + 1
	}
	end := start + visible
	if end > len(groups) {
		end = len(groups)
	}

	nameWidth := m.width - 24
	if nameWidth < 20 {
		nameWidth = 20
	}

	var lines []string
	for i := start; i < end; i++ {
		g := &groups[i]

		name := ansi.Truncate(g.Key, nameWidth, "…")

		row := fmt.Sprintf("%3d. %-*s %5.1f", i+1, nameWidth, name, g.Mean(models.MetricTrackPopularity))
		if i == m.selectedIndex {
			row = selectedRowStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}

	if end < len(groups) {
		lines = append(lines, styles.HelpStyle.Render(fmt.Sprintf("  ... %d more", len(groups)-end)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderSparkline draws popularity across the ranked list, highest first.
func (m *Model) renderSparkline(groups []models.GroupSummary) string {
	values := make([]float64, 0, len(groups))
	for i := range groups {
		v := groups[i].Mean(models.MetricTrackPopularity)
		if v == v {
			values = append(values, v)
		}
	}

	sparkWidth := m.width - 6
	if sparkWidth < 20 {
		sparkWidth = 20
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.HelpStyle.Render("popularity across ranking"),
		components.RenderSparkline(values, sparkWidth),
	)
}

func (m *Model) renderScatter() string {
	snap := m.state.GetSnapshot()

	plotWidth := m.width - 6
	if plotWidth < 30 {
		plotWidth = 30
	}
	plotHeight := m.height - 8
	if plotHeight < 6 {
		plotHeight = 6
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.HelpStyle.Render("artist followers (sqrt) vs track popularity"),
		components.RenderScatter(snap.Valid, snap.Domains, plotWidth, plotHeight),
	)
}
