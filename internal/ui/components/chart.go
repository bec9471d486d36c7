// Package components provides reusable chart components for the TUI. Every
// renderer is a pure function of its inputs: given identical data, domains,
// and size it produces identical output, and a zero-size viewport or an
// empty dataset yields a blank placeholder instead of a panic.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/guptarohit/asciigraph"

	"github.com/oakbery/spotscope-tui/internal/domain"
	"github.com/oakbery/spotscope-tui/internal/models"
	"github.com/oakbery/spotscope-tui/internal/ui/styles"
)

// NoData is the placeholder for charts with nothing to draw.
const NoData = "No data available"

// RenderBarChart draws a horizontal bar per group, scaled against the count
// domain. Bars carry the group mean of meanMetric as a readout.
func RenderBarChart(groups []models.GroupSummary, counts domain.Extent, meanMetric models.Metric, width int) string {
	if width <= 0 {
		return ""
	}
	if len(groups) == 0 {
		return styles.HelpStyle.Render(NoData)
	}

	maxVal := counts.Max()
	if maxVal <= 0 {
		maxVal = 1
	}

	maxLabelLen := 0
	for _, g := range groups {
		if w := ansi.StringWidth(g.Key); w > maxLabelLen {
			maxLabelLen = w
		}
	}
	if maxLabelLen > width/3 {
		maxLabelLen = width / 3
	}
	if maxLabelLen < 1 {
		maxLabelLen = 1
	}

	barWidth := width - maxLabelLen - 18 // room for label, count, mean readout
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	for _, g := range groups {
		label := ansi.Truncate(g.Key, maxLabelLen, "…")
		paddedLabel := fmt.Sprintf("%*s", maxLabelLen, label)

		barLen := int(float64(g.Count) / maxVal * float64(barWidth))
		if barLen < 0 {
			barLen = 0
		}
		bar := strings.Repeat("█", barLen)

		readout := fmt.Sprintf(" %d  avg %s", g.Count, formatMean(g.Mean(meanMetric)))
		lines = append(lines, styles.LabelStyle.Render(paddedLabel)+" │"+bar+styles.ValueStyle.Render(readout))
	}

	return strings.Join(lines, "\n")
}

// formatMean renders a mean value, substituting a neutral marker for the
// NaN sentinel of empty or degenerate groups.
func formatMean(v float64) string {
	if v != v { // NaN
		return "n/a"
	}
	return fmt.Sprintf("%.1f", v)
}

// Sparkline characters from low to high.
var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline creates a compact inline sparkline of values scaled to
// their own extent.
func RenderSparkline(values []float64, width int) string {
	if width <= 0 || len(values) == 0 {
		return ""
	}

	// Resample to the requested width
	sampled := values
	if len(values) > width {
		sampled = make([]float64, width)
		for i := range sampled {
			sampled[i] = values[i*len(values)/width]
		}
	}

	ext := domain.FromValues(sampled)
	span := ext.Span()
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for _, v := range sampled {
		idx := int((v - ext.Min()) / span * float64(len(sparkChars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteRune(sparkChars[idx])
	}
	return b.String()
}

// RenderLineChart creates a single-series ASCII line chart.
func RenderLineChart(data []float64, width, height int, caption string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(data) == 0 {
		return styles.HelpStyle.Render(NoData)
	}

	// Ensure minimum dimensions
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// RenderCorrelation renders a Pearson coefficient with a descriptive label,
// falling back to a neutral style for the undefined (NaN) sentinel.
func RenderCorrelation(r float64, label string) string {
	if r != r { // NaN: zero variance or not enough points
		return styles.HelpStyle.Render(fmt.Sprintf("%s: n/a (undefined)", label))
	}

	strength := "weak"
	abs := r
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 0.7:
		strength = "strong"
	case abs >= 0.4:
		strength = "moderate"
	}

	direction := "positive"
	if r < 0 {
		direction = "negative"
	}

	text := fmt.Sprintf("%s: %.3f (%s %s)", label, r, strength, direction)
	return lipgloss.NewStyle().Foreground(styles.Info).Render(text)
}
