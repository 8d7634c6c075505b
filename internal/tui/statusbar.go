package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fentz26/jobsummary/internal/models"
	"github.com/fentz26/jobsummary/internal/summary"
)

var (
	// Segment colours are keyed by category, so the children diagram reuses
	// the queued/running/complete colours of the allocation diagram.
	categoryColors = map[models.Category]lipgloss.Color{
		models.CategoryQueued:   lipgloss.Color("#6B7280"),
		models.CategoryStarting: lipgloss.Color("#F59E0B"),
		models.CategoryRunning:  lipgloss.Color("#06B6D4"),
		models.CategoryComplete: lipgloss.Color("#10B981"),
		models.CategoryFailed:   lipgloss.Color("#EF4444"),
		models.CategoryLost:     lipgloss.Color("#7C3AED"),
	}

	emptyTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#374151"))
	legendLabel     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	legendValue     = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
)

const (
	segmentGlyph = "█"
	trackGlyph   = "░"
	swatchGlyph  = "■"
)

// Diagram is a status bar widget: proportional segments plus legend rows
// for an ordered list of entries.
type Diagram interface {
	Kind() summary.DiagramKind
	Title() string
	Bar(entries []models.LegendEntry, width int) string
	Legend(entries []models.LegendEntry) string
}

// AllocationStatusBar draws task instance states of a leaf workload.
type AllocationStatusBar struct{}

func (AllocationStatusBar) Kind() summary.DiagramKind { return summary.DiagramAllocation }
func (AllocationStatusBar) Title() string             { return "Allocation Status" }

func (AllocationStatusBar) Bar(entries []models.LegendEntry, width int) string {
	return renderBar(entries, width)
}

func (AllocationStatusBar) Legend(entries []models.LegendEntry) string {
	return renderLegend(entries)
}

// ChildrenStatusBar draws sub-job states of a periodic or parameterized parent.
type ChildrenStatusBar struct{}

func (ChildrenStatusBar) Kind() summary.DiagramKind { return summary.DiagramChildren }
func (ChildrenStatusBar) Title() string             { return "Children Status" }

func (ChildrenStatusBar) Bar(entries []models.LegendEntry, width int) string {
	return renderBar(entries, width)
}

func (ChildrenStatusBar) Legend(entries []models.LegendEntry) string {
	return renderLegend(entries)
}

// DiagramFor returns the widget for kind.
func DiagramFor(kind summary.DiagramKind) Diagram {
	if kind == summary.DiagramChildren {
		return ChildrenStatusBar{}
	}
	return AllocationStatusBar{}
}

func categoryStyle(c models.Category) lipgloss.Style {
	color, ok := categoryColors[c]
	if !ok {
		color = lipgloss.Color("255")
	}
	return lipgloss.NewStyle().Foreground(color)
}

func renderBar(entries []models.LegendEntry, width int) string {
	if width < 1 {
		width = 1
	}
	segs := summary.Segments(entries, width)
	if summary.Total(entries) == 0 {
		return emptyTrackStyle.Render(strings.Repeat(trackGlyph, width))
	}

	var b strings.Builder
	for _, s := range segs {
		if s.Width == 0 {
			continue
		}
		b.WriteString(categoryStyle(s.Category).Render(strings.Repeat(segmentGlyph, s.Width)))
	}
	return b.String()
}

// renderLegend writes one "■ label count" row per entry.
func renderLegend(entries []models.LegendEntry) string {
	labelWidth := 0
	for _, e := range entries {
		if len(e.Label) > labelWidth {
			labelWidth = len(e.Label)
		}
	}

	rows := make([]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, fmt.Sprintf("%s %s %s",
			categoryStyle(e.Category).Render(swatchGlyph),
			legendLabel.Render(fmt.Sprintf("%-*s", labelWidth, e.Label)),
			legendValue.Render(fmt.Sprintf("%d", e.Count)),
		))
	}
	return strings.Join(rows, "\n")
}
