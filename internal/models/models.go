// Package models defines the core domain types for jobsummary.
package models

import "time"

// Mode selects which status taxonomy a workload is summarized with.
type Mode string

const (
	ModeAllocations Mode = "allocations"
	ModeChildren    Mode = "children"
)

// Category is a status bucket key. The children taxonomy reuses a subset of
// the allocation keys so both diagrams share segment colours.
type Category string

const (
	CategoryQueued   Category = "queued"
	CategoryStarting Category = "starting"
	CategoryRunning  Category = "running"
	CategoryComplete Category = "complete"
	CategoryFailed   Category = "failed"
	CategoryLost     Category = "lost"
)

// Workload is one scheduled job as reported by the cluster.
type Workload struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	ParentID      string    `json:"parent_id,omitempty"`
	Periodic      bool      `json:"periodic"`
	Parameterized bool      `json:"parameterized"`
	HasChildren   bool      `json:"has_children"`
	UpdatedAt     time.Time `json:"updated_at"`

	QueuedAllocs   int `json:"queued_allocs"`
	StartingAllocs int `json:"starting_allocs"`
	RunningAllocs  int `json:"running_allocs"`
	CompleteAllocs int `json:"complete_allocs"`
	FailedAllocs   int `json:"failed_allocs"`
	LostAllocs     int `json:"lost_allocs"`

	PendingChildren int `json:"pending_children"`
	RunningChildren int `json:"running_children"`
	DeadChildren    int `json:"dead_children"`
}

// DisplayName returns the name, falling back to the ID.
func (w *Workload) DisplayName() string {
	if w.Name != "" {
		return w.Name
	}
	return w.ID
}

// LegendEntry is one derived {category, label, count} row.
type LegendEntry struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Count    int      `json:"count"`
}

// Segment is a legend entry with its proportional bar width in cells.
type Segment struct {
	LegendEntry
	Width int `json:"width"`
}
