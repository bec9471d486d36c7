package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oakbery/spotscope-tui/internal/models"
	"github.com/oakbery/spotscope-tui/internal/ui/styles"
)

// treemapPalette cycles across adjacent cells so neighbors stay
// distinguishable without a legend lookup.
var treemapPalette = []lipgloss.Color{
	lipgloss.Color("205"),
	lipgloss.Color("42"),
	lipgloss.Color("39"),
	lipgloss.Color("220"),
	lipgloss.Color("63"),
	lipgloss.Color("208"),
}

// RenderTreemap draws a slice-and-dice treemap of the groups: each group
// becomes a horizontal band whose cell area is proportional to its count.
// Groups are drawn in input order, so a ranked subset keeps its ranking.
func RenderTreemap(groups []models.GroupSummary, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(groups) == 0 {
		return styles.HelpStyle.Render(NoData)
	}

	total := 0
	for _, g := range groups {
		total += g.Count
	}
	if total <= 0 {
		return styles.HelpStyle.Render(NoData)
	}

	cells := width * height
	grid := make([]int, 0, cells) // group index per cell
	for gi, g := range groups {
		share := int(float64(g.Count) / float64(total) * float64(cells))
		if share < 1 {
			share = 1
		}
		for i := 0; i < share && len(grid) < cells; i++ {
			grid = append(grid, gi)
		}
	}
	// Rounding slack goes to the largest (first) group.
	for len(grid) < cells {
		grid = append(grid, 0)
	}

	var lines []string
	for row := 0; row < height; row++ {
		var b strings.Builder
		col := 0
		for col < width {
			idx := row*width + col
			gi := grid[idx]

			// Extend the run of cells owned by this group on this row.
			run := 0
			for col+run < width && grid[row*width+col+run] == gi {
				run++
			}

			style := lipgloss.NewStyle().
				Foreground(styles.BgDark).
				Background(treemapPalette[gi%len(treemapPalette)])

			label := cellLabel(&groups[gi], run, idx, grid)
			b.WriteString(style.Render(label))

			col += run
		}
		lines = append(lines, b.String())
	}

	return strings.Join(lines, "\n")
}

// cellLabel fills a run with the group key when the run starts the group's
// region and the key fits, and with blanks otherwise.
func cellLabel(g *models.GroupSummary, run, idx int, grid []int) string {
	first := idx == 0 || grid[idx-1] != grid[idx]
	if first && run >= len(g.Key)+2 {
		return " " + g.Key + strings.Repeat(" ", run-len(g.Key)-1)
	}
	return strings.Repeat(" ", run)
}

// RenderTreemapLegend lists the groups with their counts in ranking order.
func RenderTreemapLegend(groups []models.GroupSummary, width int) string {
	if width <= 0 || len(groups) == 0 {
		return ""
	}

	var parts []string
	for gi, g := range groups {
		swatch := lipgloss.NewStyle().
			Foreground(treemapPalette[gi%len(treemapPalette)]).
			Render("■")
		parts = append(parts, swatch+" "+g.Key)
	}

	var lines []string
	line := ""
	for _, p := range parts {
		if line != "" && lipgloss.Width(line)+lipgloss.Width(p)+2 > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += "  "
		}
		line += p
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
