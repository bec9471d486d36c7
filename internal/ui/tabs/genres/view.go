package genres

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/oakbery/spotscope-tui/internal/models"
	"github.com/oakbery/spotscope-tui/internal/ui/components"
	"github.com/oakbery/spotscope-tui/internal/ui/styles"
)

// View renders the genres tab.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderTitle())

	snap := m.state.GetSnapshot()
	if len(snap.TopGenres) == 0 {
		sections = append(sections, styles.HelpStyle.Render(components.NoData))
		return styles.DocStyle.Width(m.width).Height(m.height).Render(
			lipgloss.JoinVertical(lipgloss.Left, sections...),
		)
	}

	mapWidth := m.width - 6
	if mapWidth < 30 {
		mapWidth = 30
	}

	// Reserve vertical room for title, padding and the panels below.
	mapHeight := m.height - 8
	if m.showLegend {
		mapHeight -= 4
	}
	if m.showProfile {
		mapHeight -= 8
	}
	if mapHeight < 4 {
		mapHeight = 4
	}

	sections = append(sections, components.RenderTreemap(snap.TopGenres, mapWidth, mapHeight))

	if m.showLegend {
		sections = append(sections, "")
		sections = append(sections, components.RenderTreemapLegend(snap.TopGenres, mapWidth))
	}

	if m.showProfile {
		means := make([]float64, 0, len(snap.TopGenres))
		for _, g := range snap.TopGenres {
			if v := g.Mean(models.MetricTrackPopularity); v == v {
				means = append(means, v)
			}
		}
		sections = append(sections, "")
		sections = append(sections, components.RenderLineChart(
			means, mapWidth, 5, "Avg track popularity across top genres"))
	}

	sections = append(sections, "")
	sections = append(sections, styles.HelpStyle.Render(
		fmt.Sprintf("%d genres shown, area proportional to track count", len(snap.TopGenres))))

	return styles.DocStyle.Width(m.width).Height(m.height).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Genres")
	subtitle := styles.HelpStyle.Render("Genre share of the dataset")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}
