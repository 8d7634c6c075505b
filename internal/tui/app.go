// Package tui provides the interactive terminal UI for jobsummary.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fentz26/jobsummary/internal/models"
	"github.com/fentz26/jobsummary/internal/summary"
)

var (
	primaryColor = lipgloss.Color("#7C3AED")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")
	fgColor      = lipgloss.Color("#F9FAFB")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(fgColor).
			Padding(0, 1)

	jobItemStyle = lipgloss.NewStyle().
			Padding(0, 2)

	selectedStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(fgColor).
			Bold(true).
			Padding(0, 2)
)

// WorkloadSource lists workloads for the job list.
type WorkloadSource interface {
	ListWorkloads(jobType string) ([]models.Workload, error)
}

// Options configures the App.
type Options struct {
	BarWidth        int
	InlineWidth     int
	RefreshInterval time.Duration
	// JobID preselects a workload.
	JobID string
	// JobType filters the job list.
	JobType string
}

// App is the main TUI application model.
type App struct {
	source      WorkloadSource
	summary     *SummaryModel
	unsubscribe func()
	workloads   []models.Workload
	selectedIdx int
	selectedID  string
	opts        Options
	keys        KeyMap
	help        help.Model
	width       int
	height      int
	message     string
	loading     bool
}

type workloadsLoadedMsg struct {
	workloads []models.Workload
}

type errMsg struct{ err error }

type tickMsg time.Time

// New creates a new TUI application. prefs holds the persisted collapse flag.
func New(source WorkloadSource, prefs summary.PrefStore, opts Options) *App {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = 2 * time.Second
	}

	a := &App{
		source:     source,
		summary:    NewSummaryModel(nil, summary.NewCollapse(prefs), opts.BarWidth, opts.InlineWidth),
		selectedID: opts.JobID,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		loading:    true,
	}
	a.unsubscribe = a.summary.Collapse().Subscribe(a.onCollapseChange)
	return a
}

// Run starts the TUI application.
func (a *App) Run() error {
	defer a.unsubscribe()
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Summary returns the summary panel.
func (a *App) Summary() *SummaryModel { return a.summary }

func (a *App) onCollapseChange(s summary.CollapseState) {
	if err := a.summary.Collapse().Err(); err != nil {
		a.message = "Error: saving summary state: " + err.Error()
		return
	}
	a.message = fmt.Sprintf("Summary %s", s)
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.fetchWorkloads(), a.tickCmd())
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if msg.Width > 8 {
			a.summary.SetBarWidth(min(a.opts.BarWidth, msg.Width-8))
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Up):
			if a.selectedIdx > 0 {
				a.selectedIdx--
				a.selectCurrent()
			}
		case key.Matches(msg, a.keys.Down):
			if a.selectedIdx < len(a.workloads)-1 {
				a.selectedIdx++
				a.selectCurrent()
			}
		case key.Matches(msg, a.keys.Refresh):
			return a, a.fetchWorkloads()
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
		case key.Matches(msg, a.keys.Toggle):
			a.summary.Update(ToggleMsg{})
		}
		return a, nil

	case workloadsLoadedMsg:
		a.loading = false
		a.workloads = msg.workloads
		a.selectedIdx = a.indexOf(a.selectedID)
		a.selectCurrent()
		return a, nil

	case tickMsg:
		return a, tea.Batch(a.fetchWorkloads(), a.tickCmd())

	case errMsg:
		a.loading = false
		a.message = "Error: " + msg.err.Error()
		return a, nil
	}

	return a, nil
}

// indexOf returns the position of id in the list, or 0.
func (a *App) indexOf(id string) int {
	for i, w := range a.workloads {
		if w.ID == id {
			return i
		}
	}
	return 0
}

func (a *App) selectCurrent() {
	if len(a.workloads) == 0 {
		a.selectedID = ""
		a.summary.Update(WorkloadMsg{})
		return
	}
	w := a.workloads[a.selectedIdx]
	a.selectedID = w.ID
	a.summary.Update(WorkloadMsg{Workload: &w})
}

// View implements tea.Model
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Job Summary"))
	b.WriteString("\n")
	if a.width > 0 {
		b.WriteString(strings.Repeat("─", a.width) + "\n")
	}

	if a.loading {
		b.WriteString("\n  Loading jobs...\n")
	} else {
		b.WriteString(a.renderJobList())
		b.WriteString("\n")
		b.WriteString(a.summary.View())
		b.WriteString("\n")
	}

	if a.message != "" {
		msgStyle := lipgloss.NewStyle().Foreground(successColor)
		if strings.HasPrefix(a.message, "Error") {
			msgStyle = lipgloss.NewStyle().Foreground(errorColor)
		}
		b.WriteString("\n" + msgStyle.Render(a.message))
	}
	b.WriteString("\n")

	status := fmt.Sprintf(" Jobs: %d | %s", len(a.workloads), a.help.View(a.keys))
	if a.width > 0 {
		b.WriteString(statusBarStyle.Width(a.width).Render(status))
	} else {
		b.WriteString(statusBarStyle.Render(status))
	}

	return b.String()
}

func (a *App) renderJobList() string {
	if len(a.workloads) == 0 {
		return lipgloss.NewStyle().Foreground(mutedColor).Render("  No jobs. Import some with `jobsummary job import` or `job seed`.") + "\n"
	}

	var b strings.Builder
	for i, w := range a.workloads {
		kind := string(summary.Classify(&w))
		line := fmt.Sprintf("%-32s %-8s %s", w.DisplayName(), w.Type, kind)
		if i == a.selectedIdx {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(jobItemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) fetchWorkloads() tea.Cmd {
	return func() tea.Msg {
		workloads, err := a.source.ListWorkloads(a.opts.JobType)
		if err != nil {
			return errMsg{err}
		}
		return workloadsLoadedMsg{workloads}
	}
}

func (a *App) tickCmd() tea.Cmd {
	return tea.Tick(a.opts.RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
