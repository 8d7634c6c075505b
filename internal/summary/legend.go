package summary

import (
	"sort"

	"github.com/fentz26/jobsummary/internal/models"
)

// SelectCategories returns the ordered legend entries of w for mode. The mode
// decides the taxonomy even if it disagrees with w.HasChildren.
func SelectCategories(mode models.Mode, w *models.Workload) []models.LegendEntry {
	if w == nil {
		w = &models.Workload{}
	}
	if mode == models.ModeChildren {
		return ChildrenCounts{
			Pending: w.PendingChildren,
			Running: w.RunningChildren,
			Dead:    w.DeadChildren,
		}.Entries()
	}
	return AllocationCounts{
		Queued:   w.QueuedAllocs,
		Starting: w.StartingAllocs,
		Running:  w.RunningAllocs,
		Complete: w.CompleteAllocs,
		Failed:   w.FailedAllocs,
		Lost:     w.LostAllocs,
	}.Entries()
}

// Total sums the entry counts.
func Total(entries []models.LegendEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Count
	}
	return total
}

// Segments spreads width cells over entries in proportion to their counts
// using largest-remainder rounding, so the widths always add up to width.
// When the total is zero every segment is zero wide.
func Segments(entries []models.LegendEntry, width int) []models.Segment {
	segs := make([]models.Segment, len(entries))
	for i, e := range entries {
		segs[i].LegendEntry = e
	}

	total := Total(entries)
	if total == 0 || width <= 0 {
		return segs
	}

	type remainder struct {
		idx  int
		frac int
	}
	rems := make([]remainder, 0, len(entries))
	used := 0
	for i, e := range entries {
		scaled := e.Count * width
		segs[i].Width = scaled / total
		used += segs[i].Width
		rems = append(rems, remainder{idx: i, frac: scaled % total})
	}

	// Stable so ties keep display order.
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; used < width && i < len(rems); i++ {
		if rems[i].frac == 0 {
			break
		}
		segs[rems[i].idx].Width++
		used++
	}
	return segs
}
