// Package summary derives the job summary panel from a workload: which status
// taxonomy applies, the ordered legend entries, the persisted collapse state
// and the resulting view layout.
package summary

import "github.com/fentz26/jobsummary/internal/models"

// Classify reports the taxonomy for w. Parents of periodic or parameterized
// dispatches are summarized by their children, everything else by allocations.
func Classify(w *models.Workload) models.Mode {
	if w != nil && w.HasChildren {
		return models.ModeChildren
	}
	return models.ModeAllocations
}

// Breakdown is the resolved count vector of a workload. It is one of
// AllocationCounts or ChildrenCounts.
type Breakdown interface {
	Mode() models.Mode
	Entries() []models.LegendEntry
	isBreakdown()
}

// AllocationCounts holds task instance counts of a leaf workload.
type AllocationCounts struct {
	Queued   int
	Starting int
	Running  int
	Complete int
	Failed   int
	Lost     int
}

func (AllocationCounts) Mode() models.Mode { return models.ModeAllocations }
func (AllocationCounts) isBreakdown()      {}

// Entries returns the six allocation rows in display order.
func (c AllocationCounts) Entries() []models.LegendEntry {
	return []models.LegendEntry{
		entry(models.CategoryQueued, "queued", c.Queued),
		entry(models.CategoryStarting, "starting", c.Starting),
		entry(models.CategoryRunning, "running", c.Running),
		entry(models.CategoryComplete, "complete", c.Complete),
		entry(models.CategoryFailed, "failed", c.Failed),
		entry(models.CategoryLost, "lost", c.Lost),
	}
}

// ChildrenCounts holds sub-job counts of a parent workload.
type ChildrenCounts struct {
	Pending int
	Running int
	Dead    int
}

func (ChildrenCounts) Mode() models.Mode { return models.ModeChildren }
func (ChildrenCounts) isBreakdown()      {}

// Entries maps the child counts onto the queued/running/complete categories
// with pending/running/dead labels.
func (c ChildrenCounts) Entries() []models.LegendEntry {
	return []models.LegendEntry{
		entry(models.CategoryQueued, "pending", c.Pending),
		entry(models.CategoryRunning, "running", c.Running),
		entry(models.CategoryComplete, "dead", c.Dead),
	}
}

// Resolve picks the count vector for w once, based on Classify.
func Resolve(w *models.Workload) Breakdown {
	if w == nil {
		return AllocationCounts{}
	}
	if Classify(w) == models.ModeChildren {
		return ChildrenCounts{
			Pending: w.PendingChildren,
			Running: w.RunningChildren,
			Dead:    w.DeadChildren,
		}
	}
	return AllocationCounts{
		Queued:   w.QueuedAllocs,
		Starting: w.StartingAllocs,
		Running:  w.RunningAllocs,
		Complete: w.CompleteAllocs,
		Failed:   w.FailedAllocs,
		Lost:     w.LostAllocs,
	}
}

func entry(c models.Category, label string, n int) models.LegendEntry {
	if n < 0 {
		n = 0
	}
	return models.LegendEntry{Category: c, Label: label, Count: n}
}
