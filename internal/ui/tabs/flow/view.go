package flow

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/oakbery/spotscope-tui/internal/ui/components"
	"github.com/oakbery/spotscope-tui/internal/ui/styles"
)

// View renders the flow tab.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderTitle())

	snap := m.state.GetSnapshot()
	if len(snap.Flows) == 0 {
		sections = append(sections, styles.HelpStyle.Render(components.NoData))
		return styles.DocStyle.Width(m.width).Height(m.height).Render(
			lipgloss.JoinVertical(lipgloss.Left, sections...),
		)
	}

	flowWidth := m.width - 6
	if flowWidth < 40 {
		flowWidth = 40
	}

	sections = append(sections, components.RenderFlow(snap.Flows, flowWidth))

	if m.showTotals {
		sections = append(sections, "")
		sections = append(sections, components.RenderFlowTotals(snap.Flows))
	}

	return styles.DocStyle.Width(m.width).Height(m.height).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Popularity Flow")
	subtitle := styles.HelpStyle.Render("How artist popularity maps onto track popularity")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}
