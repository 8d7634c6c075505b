package summary

import "github.com/fentz26/jobsummary/internal/models"

// DiagramKind names the status bar widget a view uses.
type DiagramKind string

const (
	DiagramAllocation DiagramKind = "allocation-status-bar"
	DiagramChildren   DiagramKind = "children-status-bar"
)

// Layout is the rendering variant of the panel.
type Layout string

const (
	// LayoutFull shows the bar, the legend and the accordion body.
	LayoutFull Layout = "full"
	// LayoutInline shows only the compact bar next to the toggle.
	LayoutInline Layout = "inline-chart"
)

// Bar is the data handed to a status bar widget.
type Bar struct {
	Kind    DiagramKind
	Entries []models.LegendEntry
}

// Toggle describes the accordion toggle control.
type Toggle struct {
	Label    string
	Expanded bool
}

// ViewTree is the description of a rendered summary panel.
type ViewTree struct {
	Mode          models.Mode
	Diagram       DiagramKind
	Layout        Layout
	Bar           Bar
	Legend        []models.LegendEntry
	AccordionBody bool
	Toggle        Toggle
}

// Inline reports whether the compact inline chart is shown.
func (v ViewTree) Inline() bool { return v.Layout == LayoutInline }

// DiagramFor returns the widget kind used for mode.
func DiagramFor(mode models.Mode) DiagramKind {
	if mode == models.ModeChildren {
		return DiagramChildren
	}
	return DiagramAllocation
}

// Render builds the view for the given mode, entries and state. It has no
// side effects; persisting state is the Collapse manager's job.
func Render(mode models.Mode, entries []models.LegendEntry, state CollapseState) ViewTree {
	kind := DiagramFor(mode)
	bar := make([]models.LegendEntry, len(entries))
	copy(bar, entries)

	v := ViewTree{
		Mode:    mode,
		Diagram: kind,
		Bar:     Bar{Kind: kind, Entries: bar},
	}

	if state == Collapsed {
		v.Layout = LayoutInline
		v.Toggle = Toggle{Label: "Expand", Expanded: false}
		return v
	}

	legend := make([]models.LegendEntry, len(entries))
	copy(legend, entries)
	v.Layout = LayoutFull
	v.Legend = legend
	v.AccordionBody = true
	v.Toggle = Toggle{Label: "Collapse", Expanded: true}
	return v
}

// Compose classifies w, selects its entries and renders them with the
// current state of c.
func Compose(w *models.Workload, c *Collapse) ViewTree {
	b := Resolve(w)
	state := Expanded
	if c != nil {
		state = c.State()
	}
	return Render(b.Mode(), b.Entries(), state)
}
