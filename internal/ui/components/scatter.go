package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oakbery/spotscope-tui/internal/domain"
	"github.com/oakbery/spotscope-tui/internal/models"
	"github.com/oakbery/spotscope-tui/internal/ui/styles"
)

// Scatter glyphs by point density in a cell.
var scatterGlyphs = []rune{'·', '•', '●'}

// RenderScatter plots tracks with sqrt-scaled follower count on the x axis
// and track popularity on the y axis. Cell glyph weight encodes how many
// points share the cell. Domains come in from the caller so the plot is
// scaled consistently with the rest of the frame.
func RenderScatter(tracks []models.Track, domains domain.Bundle, width, height int) string {
	if width <= 2 || height <= 1 {
		return ""
	}
	if len(tracks) == 0 {
		return styles.HelpStyle.Render(NoData)
	}

	plotWidth := width - 2 // leave room for the y axis edge
	plotHeight := height

	followers := domains.Extent(models.MetricFollowers)
	popularity := domains.Extent(models.MetricTrackPopularity)

	// Sqrt scale on followers keeps mega-star artists from flattening
	// everyone else onto the axis.
	fMin := math.Sqrt(math.Max(followers.Min(), 0))
	fMax := math.Sqrt(math.Max(followers.Max(), 0))
	fSpan := fMax - fMin
	if fSpan == 0 {
		fSpan = 1
	}
	pSpan := popularity.Span()
	if pSpan == 0 {
		pSpan = 1
	}

	density := make([]int, plotWidth*plotHeight)
	for i := range tracks {
		t := &tracks[i]
		if !t.HasMetric(models.MetricFollowers) || !t.HasMetric(models.MetricTrackPopularity) {
			continue
		}

		x := int((math.Sqrt(math.Max(t.ArtistFollowers, 0)) - fMin) / fSpan * float64(plotWidth-1))
		y := int((t.TrackPopularity - popularity.Min()) / pSpan * float64(plotHeight-1))
		if x < 0 || x >= plotWidth || y < 0 || y >= plotHeight {
			continue
		}
		// Row 0 is the top of the plot; high popularity draws high.
		density[(plotHeight-1-y)*plotWidth+x]++
	}

	pointStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	var lines []string
	for row := 0; row < plotHeight; row++ {
		var b strings.Builder
		b.WriteString("│")
		for col := 0; col < plotWidth; col++ {
			d := density[row*plotWidth+col]
			if d == 0 {
				b.WriteRune(' ')
				continue
			}
			idx := d - 1
			if idx >= len(scatterGlyphs) {
				idx = len(scatterGlyphs) - 1
			}
			b.WriteString(pointStyle.Render(string(scatterGlyphs[idx])))
		}
		lines = append(lines, b.String())
	}
	lines = append(lines, "└"+strings.Repeat("─", plotWidth))

	return strings.Join(lines, "\n")
}
