package artists

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/oakbery/spotscope-tui/internal/domain"
	"github.com/oakbery/spotscope-tui/internal/models"
	"github.com/oakbery/spotscope-tui/internal/ui/components"
	"github.com/oakbery/spotscope-tui/internal/ui/styles"
)

// View renders the artists tab.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderTitle())

	snap := m.state.GetSnapshot()
	if len(snap.TopArtists) == 0 {
		sections = append(sections, styles.HelpStyle.Render(components.NoData))
		return styles.DocStyle.Width(m.width).Height(m.height).Render(
			lipgloss.JoinVertical(lipgloss.Left, sections...),
		)
	}

	chartWidth := m.width - 6
	if chartWidth < 30 {
		chartWidth = 30
	}

	counts := domain.CountExtent(snap.TopArtists)
	sections = append(sections, components.RenderBarChart(snap.TopArtists, counts, models.MetricTrackPopularity, chartWidth))
	sections = append(sections, "")
	sections = append(sections, m.renderSelectedCard(snap.TopArtists))
	sections = append(sections, m.renderCorrelationCard(snap.Correlation))

	return styles.DocStyle.Width(m.width).Height(m.height).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Artists")
	subtitle := styles.HelpStyle.Render("Most represented artists in the dataset")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderSelectedCard(groups []models.GroupSummary) string {
	if m.selectedIndex >= len(groups) {
		return ""
	}
	g := &groups[m.selectedIndex]

	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render(fmt.Sprintf("#%d %s", m.selectedIndex+1, g.Key)))
	rows = append(rows, "")
	rows = append(rows, m.renderRow("Tracks", fmt.Sprintf("%d", g.Count)))
	rows = append(rows, m.renderRow("Avg popularity", formatStat(g.Mean(models.MetricTrackPopularity))))
	rows = append(rows, m.renderRow("Avg followers", formatStat(g.Mean(models.MetricFollowers))))
	rows = append(rows, m.renderRow("Popularity range", fmt.Sprintf("%s .. %s",
		formatStat(g.Min(models.MetricTrackPopularity)),
		formatStat(g.Max(models.MetricTrackPopularity)))))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderCorrelationCard(r float64) string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Correlation"))
	rows = append(rows, "")
	rows = append(rows, components.RenderCorrelation(r, "artist popularity vs track popularity"))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRow(label, value string) string {
	return styles.LabelStyle.Render(label+":") + " " + styles.ValueStyle.Render(value)
}

func (m *Model) cardWidth() int {
	cardWidth := m.width - 6
	if cardWidth < 40 {
		cardWidth = 40
	}
	if cardWidth > 70 {
		cardWidth = 70
	}
	return cardWidth
}

func formatStat(v float64) string {
	if v != v {
		return "n/a"
	}
	if v >= 1_000_000 {
		return fmt.Sprintf("%.1fM", v/1_000_000)
	}
	if v >= 1_000 {
		return fmt.Sprintf("%.1fK", v/1_000)
	}
	return fmt.Sprintf("%.1f", v)
}
