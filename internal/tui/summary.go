package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fentz26/jobsummary/internal/models"
	"github.com/fentz26/jobsummary/internal/summary"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	toggleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	accordionBodyStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)

	inlineChartStyle = lipgloss.NewStyle().
				PaddingLeft(2)

	diagramTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("99"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// WorkloadMsg delivers fresh workload data to a summary panel.
type WorkloadMsg struct {
	Workload *models.Workload
}

// ToggleMsg asks a summary panel to flip its collapse state.
type ToggleMsg struct{}

// SummaryModel is the collapsible job summary panel.
type SummaryModel struct {
	workload    *models.Workload
	collapse    *summary.Collapse
	keys        KeyMap
	barWidth    int
	inlineWidth int
}

// NewSummaryModel creates a panel for w using collapse for its view state.
func NewSummaryModel(w *models.Workload, collapse *summary.Collapse, barWidth, inlineWidth int) *SummaryModel {
	if collapse == nil {
		collapse = summary.NewCollapse(nil)
	}
	return &SummaryModel{
		workload:    w,
		collapse:    collapse,
		keys:        DefaultKeyMap(),
		barWidth:    barWidth,
		inlineWidth: inlineWidth,
	}
}

// Init implements tea.Model
func (m *SummaryModel) Init() tea.Cmd {
	return nil
}

// Workload returns the workload currently shown.
func (m *SummaryModel) Workload() *models.Workload { return m.workload }

// Collapse returns the panel's collapse manager.
func (m *SummaryModel) Collapse() *summary.Collapse { return m.collapse }

// SetBarWidth sets the width of the expanded bar.
func (m *SummaryModel) SetBarWidth(w int) {
	if w > 0 {
		m.barWidth = w
	}
}

// Tree returns the current view description.
func (m *SummaryModel) Tree() summary.ViewTree {
	return summary.Compose(m.workload, m.collapse)
}

// Update implements tea.Model
func (m *SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case WorkloadMsg:
		m.workload = msg.Workload
	case ToggleMsg:
		m.collapse.Toggle()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Toggle) {
			m.collapse.Toggle()
		}
	}
	return m, nil
}

// View implements tea.Model
func (m *SummaryModel) View() string {
	tree := m.Tree()
	diagram := DiagramFor(tree.Diagram)

	name := "no job selected"
	if m.workload != nil {
		name = m.workload.DisplayName()
	}

	marker := "▾"
	if !tree.Toggle.Expanded {
		marker = "▸"
	}
	header := fmt.Sprintf("%s %s  %s",
		toggleStyle.Render(marker),
		summaryTitleStyle.Render("Summary"),
		mutedStyle.Render(name),
	)

	if tree.Inline() {
		inline := inlineChartStyle.Render(diagram.Bar(tree.Bar.Entries, m.inlineWidth))
		return header + inline + "  " + mutedStyle.Render("["+tree.Toggle.Label+"]")
	}

	var body strings.Builder
	body.WriteString(diagramTitleStyle.Render(diagram.Title()))
	body.WriteString(mutedStyle.Render(fmt.Sprintf("  %d total", summary.Total(tree.Bar.Entries))))
	body.WriteString("\n")
	body.WriteString(diagram.Bar(tree.Bar.Entries, m.barWidth))
	body.WriteString("\n\n")
	body.WriteString(diagram.Legend(tree.Legend))

	return header + "  " + mutedStyle.Render("["+tree.Toggle.Label+"]") + "\n" +
		accordionBodyStyle.Render(body.String())
}
