package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oakbery/spotscope-tui/internal/aggregate"
	"github.com/oakbery/spotscope-tui/internal/models"
	"github.com/oakbery/spotscope-tui/internal/ui/styles"
)

func bucketStyle(b models.PopularityBucket) lipgloss.Style {
	switch b {
	case models.BucketHigh:
		return lipgloss.NewStyle().Foreground(styles.BucketHighColor)
	case models.BucketMedium:
		return lipgloss.NewStyle().Foreground(styles.BucketMediumColor)
	default:
		return lipgloss.NewStyle().Foreground(styles.BucketLowColor)
	}
}

// RenderFlow draws the popularity flow as one ribbon per link: artist
// bucket on the left, track bucket on the right, ribbon length
// proportional to the co-occurrence count.
func RenderFlow(links []aggregate.FlowLink, width int) string {
	if width <= 0 {
		return ""
	}
	if len(links) == 0 {
		return styles.HelpStyle.Render(NoData)
	}

	maxCount := 0
	for _, l := range links {
		if l.Count > maxCount {
			maxCount = l.Count
		}
	}
	if maxCount == 0 {
		return styles.HelpStyle.Render(NoData)
	}

	// "Medium ▕" + ribbon + "▏High  (123)"
	ribbonWidth := width - 26
	if ribbonWidth < 8 {
		ribbonWidth = 8
	}

	var lines []string
	for _, l := range links {
		length := int(float64(l.Count) / float64(maxCount) * float64(ribbonWidth))
		if length < 1 {
			length = 1
		}

		src := bucketStyle(l.Source).Render(fmt.Sprintf("%6s", l.Source))
		dst := bucketStyle(l.Target).Render(fmt.Sprintf("%-6s", l.Target))
		ribbon := bucketStyle(l.Target).Render(strings.Repeat("━", length) + "▶")

		lines = append(lines, fmt.Sprintf("%s ▕%s %s %s",
			src, ribbon, dst, styles.ValueStyle.Render(fmt.Sprintf("(%d)", l.Count))))
	}

	return strings.Join(lines, "\n")
}

// RenderFlowTotals summarizes per-bucket totals on both sides of the flow.
func RenderFlowTotals(links []aggregate.FlowLink) string {
	if len(links) == 0 {
		return ""
	}

	sources, targets := aggregate.BucketTotals(links)

	var parts []string
	parts = append(parts, styles.SubTitleStyle.Render("Artists"))
	for _, b := range models.AllBuckets {
		if c := sources[b]; c > 0 {
			parts = append(parts, bucketStyle(b).Render(fmt.Sprintf("  %s: %d", b, c)))
		}
	}
	parts = append(parts, styles.SubTitleStyle.Render("Tracks"))
	for _, b := range models.AllBuckets {
		if c := targets[b]; c > 0 {
			parts = append(parts, bucketStyle(b).Render(fmt.Sprintf("  %s: %d", b, c)))
		}
	}

	return strings.Join(parts, "\n")
}
