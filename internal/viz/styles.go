package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	Warning = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffaa00"))

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)
)

// Metric is one labelled value in a Metrics block.
type Metric struct {
	Label string
	Value any
}

// Metrics renders label/value pairs with labels padded to a common width.
func Metrics(items []Metric) string {
	width := 0
	for _, m := range items {
		if w := lipgloss.Width(m.Label); w > width {
			width = w
		}
	}

	lines := make([]string, len(items))
	for i, m := range items {
		label := m.Label + strings.Repeat(" ", width-lipgloss.Width(m.Label))
		lines[i] = MetricLabel.Render(label) + "  " + MetricValue.Render(formatValue(m.Value))
	}
	return strings.Join(lines, "\n")
}

// Section renders a titled panel around content.
func Section(title, content string) string {
	return Title.Render(title) + "\n" + Panel.Render(content)
}

func Separator(width int) string {
	if width < 7 {
		return Subtle.Render(strings.Repeat("─", width))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%.6g", x)
	case []float64:
		parts := make([]string, len(x))
		for i, f := range x {
			parts[i] = fmt.Sprintf("%.6g", f)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(x)
	}
}
